package implementation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNamespaceNotFound(t *testing.T) {
	assert.True(t, isNamespaceNotFound(mongo.CommandError{Code: 26, Name: "NamespaceNotFound"}))
	assert.True(t, isNamespaceNotFound(fmt.Errorf("query failed: %w", mongo.CommandError{Code: 26})))
	assert.False(t, isNamespaceNotFound(mongo.CommandError{Code: 11000, Name: "DuplicateKey"}))
	assert.False(t, isNamespaceNotFound(fmt.Errorf("connection reset")))
	assert.False(t, isNamespaceNotFound(nil))
}
