package domain

import "github.com/google/uuid"

// KeyDelimiter separates the segments of a storage key. Workflow validation
// rejects user IDs and file names containing it, so keys stay unambiguous.
const KeyDelimiter = "/"

// NewFileID returns a fresh version-4 UUID string. Collisions are treated as
// negligible; no lookup against existing records is performed.
func NewFileID() string {
	return uuid.New().String()
}

// FileKey derives the object-store key for a file. The key is computed exactly
// once at upload time and persisted; it is never recomputed from the record.
func FileKey(userID, fileID, fileName string) string {
	return userID + KeyDelimiter + fileID + KeyDelimiter + fileName
}
