package implementation

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const namespaceNotFoundCode = 26

// isNamespaceNotFound reports whether err means the configured
// database or collection does not exist on the server. Some managed
// Mongo-compatible stores fail queries against missing namespaces
// instead of treating them as empty.
func isNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == namespaceNotFoundCode || cmdErr.Name == "NamespaceNotFound"
	}
	return false
}
