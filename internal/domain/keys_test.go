package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cloudbox/internal/domain"
)

func TestFileKey_Derivation(t *testing.T) {
	key := domain.FileKey("u1", "f1", "cat.png")
	assert.Equal(t, "u1/f1/cat.png", key)
}

func TestFileKey_ChangingAnyInputChangesKey(t *testing.T) {
	base := domain.FileKey("u1", "f1", "cat.png")

	assert.NotEqual(t, base, domain.FileKey("u2", "f1", "cat.png"))
	assert.NotEqual(t, base, domain.FileKey("u1", "f2", "cat.png"))
	assert.NotEqual(t, base, domain.FileKey("u1", "f1", "dog.png"))
}

func TestNewFileID_IsValidUUID(t *testing.T) {
	id := domain.NewFileID()

	parsed, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestNewFileID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := domain.NewFileID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate file id %s", id)
		seen[id] = struct{}{}
	}
}
