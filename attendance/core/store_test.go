package core

import (
	"testing"
	"time"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidate(accountID int32, kind model.ConflictType) Candidate {
	return Candidate{
		AccountID:    accountID,
		ConflictType: kind,
		ConflictDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateString:   "2024-01-01",
		Description:  "No timekeeping record for 2024-01-01 (scheduled Day Shift 08:00-17:00)",
		Shift: model.ShiftSnapshot{
			ID:    7,
			Name:  "Day Shift",
			Type:  models.ShiftTypeRegular,
			Start: "08:00",
			End:   "17:00",
		},
	}
}

func TestUpsertConflictIdempotent(t *testing.T) {
	db := newTestDB(t)
	cand := testCandidate(100, model.ConflictMissingLog)

	first, err := UpsertConflict(db, cand)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.False(t, first.IsResolved)

	second, err := UpsertConflict(db, cand)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Unchanged content must not touch the row.
	var stored model.Conflict
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, first.UpdatedAt.Unix(), stored.UpdatedAt.Unix())
}

func TestUpsertConflictUpdatesChangedContentInPlace(t *testing.T) {
	db := newTestDB(t)
	cand := testCandidate(100, model.ConflictMissingTimeOut)

	first, err := UpsertConflict(db, cand)
	require.NoError(t, err)

	changed := cand
	changed.Description = "Clock-in at 08:10 on 2024-01-01 has no matching clock-out"

	second, err := UpsertConflict(db, changed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, changed.Description, second.Description)

	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored model.Conflict
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, changed.Description, stored.Description)
	assert.Equal(t, first.CreatedAt.Unix(), stored.CreatedAt.Unix())
}

func TestUpsertConflictPreservesResolution(t *testing.T) {
	db := newTestDB(t)
	cand := testCandidate(100, model.ConflictMissingLog)

	first, err := UpsertConflict(db, cand)
	require.NoError(t, err)

	_, err = ResolveConflict(db, first.ID, 9)
	require.NoError(t, err)

	// Re-detection with refreshed content must not reopen the conflict.
	changed := cand
	changed.Description = "refreshed description"
	again, err := UpsertConflict(db, changed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	var stored model.Conflict
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.True(t, stored.IsResolved)
	require.NotNil(t, stored.ResolvedBy)
	assert.Equal(t, int32(9), *stored.ResolvedBy)
	assert.NotNil(t, stored.ResolvedAt)
	assert.Equal(t, "refreshed description", stored.Description)
}

func TestUpsertConflictSeparateNaturalKeys(t *testing.T) {
	db := newTestDB(t)

	// Same employee-day, different kinds: distinct rows.
	_, err := UpsertConflict(db, testCandidate(100, model.ConflictMissingLog))
	require.NoError(t, err)
	_, err = UpsertConflict(db, testCandidate(100, model.ConflictMissingTimeOut))
	require.NoError(t, err)

	// Different employee, same day and kind: distinct rows.
	_, err = UpsertConflict(db, testCandidate(200, model.ConflictMissingLog))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
