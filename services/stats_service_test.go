package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLessonCatalog(t *testing.T) *LessonCatalog {
	t.Helper()

	content := `[
		{"id": 1, "title": "Greetings", "category": "conversation"},
		{"id": 2, "title": "Numbers", "category": "vocabulary"},
		{"id": 3, "title": "Food", "category": "vocabulary"},
		{"id": 4, "title": "Days", "category": "vocabulary"},
		{"id": 5, "title": "Verbs", "category": "grammar"}
	]`
	path := filepath.Join(t.TempDir(), "lessons.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	catalog := NewLessonCatalog()
	require.NoError(t, catalog.Load(path))
	return catalog
}

func TestLessonCatalogLoad(t *testing.T) {
	catalog := testLessonCatalog(t)

	assert.Equal(t, 5, catalog.Count())

	lesson, ok := catalog.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Food", lesson.Title)

	_, ok = catalog.Get(42)
	assert.False(t, ok)
}

func TestStatsAfterFirstPerfectLesson(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	stats := NewStatsService(db, testLessonCatalog(t))
	user := createTestUser(t, db, "ana")

	_, _, err := progress.Record(user.ID, 1, true, intp(5))
	require.NoError(t, err)

	view, err := stats.ForUser(user.ID)
	require.NoError(t, err)

	assert.Equal(t, "ana", view.Username)
	assert.Equal(t, 1, view.LessonsCompleted)
	assert.Equal(t, 5, view.TotalLessons)
	assert.GreaterOrEqual(t, view.AchievementsCount, 1)
	assert.GreaterOrEqual(t, view.TotalPoints, 30)
	assert.Equal(t, len(defaultAchievements), view.TotalAchievements)

	require.Len(t, view.BestScores, 1)
	assert.EqualValues(t, 1, view.BestScores[0].LessonID)
	assert.Equal(t, 5, view.BestScores[0].Score)

	require.Len(t, view.RecentActivity, 1)
	assert.True(t, view.RecentActivity[0].Completed)
}

func TestStatsBestScoresTop5(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	stats := NewStatsService(db, testLessonCatalog(t))
	user := createTestUser(t, db, "ana")

	scores := []int{2, 4, 1, 5, 3, 4, 2}
	for i, score := range scores {
		_, _, err := progress.Record(user.ID, uint(i+1), false, intp(score))
		require.NoError(t, err)
	}

	view, err := stats.ForUser(user.ID)
	require.NoError(t, err)

	require.Len(t, view.BestScores, 5)
	assert.Equal(t, 5, view.BestScores[0].Score)
	// Ties keep their original lesson order.
	assert.EqualValues(t, 2, view.BestScores[1].LessonID)
	assert.EqualValues(t, 6, view.BestScores[2].LessonID)

	for i := 1; i < len(view.BestScores); i++ {
		assert.GreaterOrEqual(t, view.BestScores[i-1].Score, view.BestScores[i].Score)
	}
}

func TestStatsRecentActivityOrder(t *testing.T) {
	db, progress, _, _ := seededServices(t)
	stats := NewStatsService(db, testLessonCatalog(t))
	user := createTestUser(t, db, "ana")

	for lesson := uint(1); lesson <= 3; lesson++ {
		_, _, err := progress.Record(user.ID, lesson, false, nil)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	view, err := stats.ForUser(user.ID)
	require.NoError(t, err)

	require.Len(t, view.RecentActivity, 3)
	assert.EqualValues(t, 3, view.RecentActivity[0].LessonID)
	assert.EqualValues(t, 2, view.RecentActivity[1].LessonID)
	assert.EqualValues(t, 1, view.RecentActivity[2].LessonID)
}

func TestStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db, testLessonCatalog(t))

	_, err := stats.ForUser(4242)
	assert.ErrorIs(t, err, ErrNotFound)
}
