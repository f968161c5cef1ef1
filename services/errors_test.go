package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageFailuresSurfaceAsStorageUnavailable(t *testing.T) {
	db := newTestDB(t)
	achievements := NewAchievementService(db)
	require.NoError(t, achievements.SeedCatalog())

	require.NoError(t, db.Exec("DROP TABLE achievements").Error)

	_, err := achievements.ListCatalog()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestDomainErrorsAreNotStorageErrors(t *testing.T) {
	db, _, _, avatars := seededServices(t)
	user := createTestUser(t, db, "ana")

	style := findStyle(t, avatars, "Pixel Art")
	_, err := avatars.Purchase(user.ID, style.ID)

	var insufficient *InsufficientPointsError
	assert.ErrorAs(t, err, &insufficient)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)

	_, err = avatars.Purchase(user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}
