package services

import (
	"testing"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	achievements := NewAchievementService(db)

	require.NoError(t, achievements.SeedCatalog())
	require.NoError(t, achievements.SeedCatalog())

	var count int64
	require.NoError(t, db.Model(&models.Achievement{}).Count(&count).Error)
	assert.EqualValues(t, len(defaultAchievements), count)

	var firstSteps []models.Achievement
	require.NoError(t, db.Where("name = ?", "First Steps").Find(&firstSteps).Error)
	assert.Len(t, firstSteps, 1)
}

func TestFirstCompletionAwardsAchievements(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	user := createTestUser(t, db, "ana")

	_, earned, err := progress.Record(user.ID, 1, true, intp(5))
	require.NoError(t, err)

	names := make([]string, 0, len(earned))
	for _, a := range earned {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "First Steps")
	assert.Contains(t, names, "Perfect Score")
	assert.Contains(t, names, "Quick Learner")

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	// 10 (First Steps) + 20 (Perfect Score) + 25 (Quick Learner)
	assert.Equal(t, 55, updated.TotalPoints)
}

func TestAchievementsAwardedAtMostOnce(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	user := createTestUser(t, db, "ana")

	for i := 0; i < 5; i++ {
		_, _, err := progress.Record(user.ID, 1, true, intp(5))
		require.NoError(t, err)
	}

	var perfectCount int64
	require.NoError(t, db.Model(&models.UserAchievement{}).
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND achievements.name = ?", user.ID, "Perfect Score").
		Count(&perfectCount).Error)
	assert.EqualValues(t, 1, perfectCount, "Perfect Score must be awarded exactly once")

	var quickCount int64
	require.NoError(t, db.Model(&models.UserAchievement{}).
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND achievements.name = ?", user.ID, "Quick Learner").
		Count(&quickCount).Error)
	assert.EqualValues(t, 1, quickCount, "Quick Learner earned on the attempts==1 update stays earned once")

	// The fifth attempt on a single lesson unlocks Persistent.
	var persistentCount int64
	require.NoError(t, db.Model(&models.UserAchievement{}).
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND achievements.name = ?", user.ID, "Persistent").
		Count(&persistentCount).Error)
	assert.EqualValues(t, 1, persistentCount)
}

func TestQuickLearnerRequiresFirstAttempt(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	user := createTestUser(t, db, "ana")

	// Low score on the first attempt, high score on the second: the
	// lesson never had attempts==1 with best_score >= 4.
	_, _, err := progress.Record(user.ID, 1, false, intp(2))
	require.NoError(t, err)
	_, earned, err := progress.Record(user.ID, 1, true, intp(5))
	require.NoError(t, err)

	for _, a := range earned {
		assert.NotEqual(t, "Quick Learner", a.Name)
	}
}

func TestVocabularyExpertIsNeverAutoAwarded(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	user := createTestUser(t, db, "ana")

	for lesson := uint(1); lesson <= 5; lesson++ {
		_, _, err := progress.Record(user.ID, lesson, true, intp(5))
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.UserAchievement{}).
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND achievements.name = ?", user.ID, "Vocabulary Expert").
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListForUserReturnsEarnedWithTimestamps(t *testing.T) {
	db, progress, achievements, _ := seededServices(t)
	user := createTestUser(t, db, "ana")

	_, _, err := progress.Record(user.ID, 1, true, intp(5))
	require.NoError(t, err)

	earned, err := achievements.ListForUser(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, earned)
	for _, e := range earned {
		assert.False(t, e.EarnedAt.IsZero())
	}
}
