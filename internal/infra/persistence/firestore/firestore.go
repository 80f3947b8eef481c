// Package firestore implements the domain repositories on Cloud Firestore.
package firestore

import (
	"fmt"
	"strings"
	"time"

	cfs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection = "users"
	petsCollection  = "pets"
	tasksCollection = "pet_tasks"

	fieldFamilyCode  = "familyCode"
	fieldDisplayName = "displayName"
	fieldFCMTokens   = "fcmTokens"
	fieldUpdatedAt   = "updatedAt"
	fieldName        = "name"
	fieldSpecies     = "species"
	fieldPetID       = "petId"
	fieldTitle       = "title"
	fieldDone        = "done"
	fieldDueDate     = "dueDate"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// docRef returns nil for an empty ID; Firestore panics on Doc("") lookups otherwise.
func docRef(client *cfs.Client, collection, id string) *cfs.DocumentRef {
	if strings.TrimSpace(id) == "" {
		return nil
	}

	return client.Collection(collection).Doc(id)
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func boolField(data map[string]any, key string) bool {
	v, _ := data[key].(bool)

	return v
}

// stringSliceField reads an array of strings. Non-string entries become empty
// placeholders so callers rewriting the array see them as malformed.
func stringSliceField(data map[string]any, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, _ := item.(string)
			out = append(out, s)
		}

		return out
	default:
		return nil
	}
}

// timeField accepts Firestore timestamps as well as RFC3339 strings written by older clients.
func timeField(data map[string]any, key string) *time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return &t
			}
		}

		return nil
	default:
		return nil
	}
}
