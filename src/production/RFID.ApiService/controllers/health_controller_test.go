package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	logger "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Logger"
	interfaces "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Repository/Interfaces"
)

func newHealthRouter(repo interfaces.ReadingRepository) *gin.Engine {
	router := gin.New()
	NewHealthController(repo, logger.GetGlobalLogger()).RegisterRoutes(router)
	return router
}

func TestHealthLive(t *testing.T) {
	router := newHealthRouter(&memReadingRepo{})

	rec := doRequest(router, http.MethodGet, "/health/live", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHealthReady(t *testing.T) {
	t.Run("reports ready when the store responds", func(t *testing.T) {
		router := newHealthRouter(&memReadingRepo{})

		rec := doRequest(router, http.MethodGet, "/health/ready", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"store":true`)
	})

	t.Run("reports not ready when the store is unreachable", func(t *testing.T) {
		router := newHealthRouter(&errReadingRepo{err: fmt.Errorf("no route to host")})

		rec := doRequest(router, http.MethodGet, "/health/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"store":false`)
	})
}
