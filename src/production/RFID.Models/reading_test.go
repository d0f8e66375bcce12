package rfidmodels

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^(.+)-(.+)-([0-9a-f]{8})$`)

func TestSanitizeUID(t *testing.T) {
	assert.Equal(t, "a_b_c_d_", SanitizeUID(`a/b\c#d?`))
	assert.Equal(t, "04A1B2C3", SanitizeUID("04A1B2C3"))
}

func TestSanitizeTimestamp(t *testing.T) {
	assert.Equal(t, "2024-01-02_15-04-05", SanitizeTimestamp("2024-01-02 15:04:05"))
	// Periods become underscores, colons become dashes; the rule is
	// not the same as the UID one.
	assert.Equal(t, "15-04-05_123", SanitizeTimestamp("15:04:05.123"))
}

func TestAssignIDFromUIDAndTimestamp(t *testing.T) {
	doc := Document{
		"uid":       "04/A1#B2",
		"timestamp": "2024-01-02 15:04:05",
		"reader":    "entrance",
	}

	id, err := doc.AssignID()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(id, "04_A1_B2-2024-01-02_15-04-05-"), "id = %q", id)
	m := idPattern.FindStringSubmatch(id)
	require.NotNil(t, m, "id = %q does not match uid-timestamp-suffix", id)
	assert.Len(t, m[3], 8)

	assert.Equal(t, id, doc["id"], "derived id must be written back into the document")
	assert.Equal(t, "entrance", doc["reader"], "unrelated fields must be untouched")
}

func TestAssignIDUniqueAcrossCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		doc := Document{"uid": "04A1B2", "timestamp": "2024-01-02 15:04:05"}
		id, err := doc.AssignID()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestAssignIDKeepsExistingID(t *testing.T) {
	doc := Document{"id": "custom-id-42", "value": 3.5}

	id, err := doc.AssignID()
	require.NoError(t, err)
	assert.Equal(t, "custom-id-42", id)
	assert.Equal(t, "custom-id-42", doc["id"])
}

func TestAssignIDPrefersDerivationOverExistingID(t *testing.T) {
	// uid+timestamp win over an id already present in the payload
	doc := Document{"id": "stale", "uid": "u1", "timestamp": "2024-01-02 15:04:05"}

	id, err := doc.AssignID()
	require.NoError(t, err)
	assert.NotEqual(t, "stale", id)
	assert.Equal(t, id, doc["id"])
}

func TestAssignIDGeneratesUUIDFallback(t *testing.T) {
	doc := Document{"value": 1}

	id, err := doc.AssignID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err, "fallback id %q must be a valid UUID", id)
	assert.Equal(t, parsed.String(), id)

	other := Document{"value": 1}
	otherID, err := other.AssignID()
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)
}

func TestAssignIDRejectsNonStringUIDOrTimestamp(t *testing.T) {
	doc := Document{"uid": 42, "timestamp": "2024-01-02 15:04:05"}
	_, err := doc.AssignID()
	assert.Error(t, err)

	doc = Document{"uid": "u1", "timestamp": 1704207845}
	_, err = doc.AssignID()
	assert.Error(t, err)
}

func TestDocumentDecodesArbitraryPayload(t *testing.T) {
	var doc Document
	err := json.Unmarshal([]byte(`{"uid":"u1","timestamp":"2024-01-02 15:04:05","rssi":-61,"tags":["a","b"]}`), &doc)
	require.NoError(t, err)

	_, err = doc.AssignID()
	require.NoError(t, err)

	assert.Equal(t, float64(-61), doc["rssi"])
	assert.Equal(t, []interface{}{"a", "b"}, doc["tags"])
}
