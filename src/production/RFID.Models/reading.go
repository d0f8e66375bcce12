package rfidmodels

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Field names the service gives special meaning to. Everything else in
// a reading document passes through to the store untouched.
const (
	FieldID        = "id"
	FieldUID       = "uid"
	FieldTimestamp = "timestamp"
)

// Document is one reading as sent by a tag reader: a flat JSON object
// with arbitrary fields. Timestamps are "YYYY-MM-DD HH:MM:SS" strings,
// which sort lexicographically.
type Document map[string]interface{}

var (
	uidSanitizer       = strings.NewReplacer("/", "_", "\\", "_", "#", "_", "?", "_")
	timestampSanitizer = strings.NewReplacer(" ", "_", ":", "-", ".", "_")
)

// SanitizeUID replaces characters the store does not allow in document
// keys (/ \ # ?) with underscores.
func SanitizeUID(uid string) string {
	return uidSanitizer.Replace(uid)
}

// SanitizeTimestamp replaces spaces and periods with underscores and
// colons with dashes. The rule is intentionally different from the UID
// one and must stay that way: existing document ids depend on it.
func SanitizeTimestamp(ts string) string {
	return timestampSanitizer.Replace(ts)
}

// AssignID ensures the document carries a non-empty unique id and
// returns it.
//
// When both uid and timestamp are present the id is composed from the
// sanitized pair plus a short random suffix, so a reader re-sending
// the same tag scan never collides. An id already present in the
// payload is kept as-is. Otherwise a full random UUID is generated.
func (d Document) AssignID() (string, error) {
	uidVal, hasUID := d[FieldUID]
	tsVal, hasTS := d[FieldTimestamp]

	if hasUID && hasTS {
		uid, uidOK := uidVal.(string)
		ts, tsOK := tsVal.(string)
		if !uidOK || !tsOK {
			return "", fmt.Errorf("uid and timestamp must be strings")
		}
		id := fmt.Sprintf("%s-%s-%s", SanitizeUID(uid), SanitizeTimestamp(ts), uuid.NewString()[:8])
		d[FieldID] = id
		return id, nil
	}

	// A payload that already names an id keeps it unchanged, whatever
	// it contains.
	if existing, ok := d[FieldID]; ok {
		id, _ := existing.(string)
		return id, nil
	}

	id := uuid.NewString()
	d[FieldID] = id
	return id, nil
}

// ID returns the document id, or "" when none is set.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// Timestamp returns the document timestamp, or "" when none is set.
func (d Document) Timestamp() string {
	ts, _ := d[FieldTimestamp].(string)
	return ts
}
