package journal

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_entries_user_date"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("create entry: %w", unique)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("plain error")))
	assert.False(t, isUniqueViolation(nil))
}

// The per-day unique index must cover live rows only, so deleting a day's
// entry frees the date for a new one.
func TestEntryDateIndexExcludesDeletedRows(t *testing.T) {
	s, err := schema.Parse(&models.Entry{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var idx *schema.Index
	for _, candidate := range s.ParseIndexes() {
		if candidate.Name == "idx_entries_user_date" {
			idx = candidate
			break
		}
	}
	require.NotNil(t, idx, "idx_entries_user_date not defined")
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "deleted_at IS NULL", idx.Where)
}
