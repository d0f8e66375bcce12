package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logger "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Logger"
	rfidmodels "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Models"
	interfaces "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Repository/Interfaces"
)

// ReadingController handles reading storage and retrieval requests
type ReadingController struct {
	readingRepo interfaces.ReadingRepository
	logger      *logger.Logger
}

// NewReadingController creates a new reading controller
func NewReadingController(readingRepo interfaces.ReadingRepository, logger *logger.Logger) *ReadingController {
	return &ReadingController{
		readingRepo: readingRepo,
		logger:      logger,
	}
}

// RegisterRoutes registers the reading routes with Gin
func (c *ReadingController) RegisterRoutes(router *gin.Engine) {
	// The core endpoint dispatches on method itself: readers POST
	// documents, the dashboard GETs the latest one
	router.Any("/readings", c.HandleReading)

	router.GET("/readings/history", c.GetReadingHistory)
	router.GET("/stats/summary", c.GetSummaryStats)
}

// HandleReading dispatches on the HTTP method
func (c *ReadingController) HandleReading(ctx *gin.Context) {
	switch strings.ToUpper(ctx.Request.Method) {
	case http.MethodPost:
		c.storeReading(ctx)
	case http.MethodGet:
		c.getLatestReading(ctx)
	default:
		ctx.String(http.StatusMethodNotAllowed,
			"HTTP method not supported. Use POST to store a reading or GET to fetch the latest reading.")
	}
}

func (c *ReadingController) storeReading(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		c.logger.ErrorWithError(err, "Failed to read request body")
		ctx.String(http.StatusBadRequest, "Invalid body: send a valid JSON object.")
		return
	}

	var doc rfidmodels.Document
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		ctx.String(http.StatusBadRequest, "Invalid body: send a valid JSON object.")
		return
	}

	id, err := doc.AssignID()
	if err != nil {
		c.logger.ErrorWithError(err, "Failed to derive reading id")
		ctx.String(http.StatusInternalServerError, "Internal server error.")
		return
	}
	c.logger.WithField("id", id).Debug("Assigned reading id")

	if err := c.readingRepo.CreateReading(ctx, doc); err != nil {
		c.respondStoreError(ctx, err, "Failed to store reading")
		return
	}

	ctx.String(http.StatusOK, "Reading stored successfully.")
}

func (c *ReadingController) getLatestReading(ctx *gin.Context) {
	doc, err := c.readingRepo.GetLatestReading(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoReadings) {
			ctx.String(http.StatusNotFound, "No readings available.")
			return
		}
		c.respondStoreError(ctx, err, "Failed to fetch latest reading")
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

// respondStoreError maps store failures to 500 responses. A missing
// database or container gets its own message so a misdeployment is
// distinguishable from a transient fault; everything else collapses to
// a generic error after being logged in full.
func (c *ReadingController) respondStoreError(ctx *gin.Context, err error, msg string) {
	if errors.Is(err, interfaces.ErrContainerNotFound) {
		c.logger.ErrorWithError(err, "Document store misconfigured; check database and container names")
		ctx.String(http.StatusInternalServerError, "Document store configuration error.")
		return
	}
	c.logger.ErrorWithError(err, msg)
	ctx.String(http.StatusInternalServerError, "Internal server error.")
}

func (c *ReadingController) GetReadingHistory(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	params := interfaces.ReadingQueryParams{
		Limit: limit,
		Page:  page,
	}

	result, err := c.readingRepo.GetReadings(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *ReadingController) GetSummaryStats(ctx *gin.Context) {
	result, err := c.readingRepo.GetSummaryStats(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
