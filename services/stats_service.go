// services/stats_service.go - Read-only user statistics projection
package services

import (
	"errors"
	"sort"
	"time"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db      *gorm.DB
	lessons *LessonCatalog
}

func NewStatsService(db *gorm.DB, lessons *LessonCatalog) *StatsService {
	return &StatsService{db: db, lessons: lessons}
}

type BestScoreEntry struct {
	LessonID uint `json:"lesson_id"`
	Score    int  `json:"score"`
	Attempts int  `json:"attempts"`
}

type ActivityEntry struct {
	LessonID      uint      `json:"lesson_id"`
	LastPracticed time.Time `json:"last_practiced"`
	Completed     bool      `json:"completed"`
}

type UserStats struct {
	Username          string           `json:"username"`
	TotalPoints       int              `json:"total_points"`
	LessonsCompleted  int              `json:"lessons_completed"`
	TotalLessons      int              `json:"total_lessons"`
	AchievementsCount int              `json:"achievements_count"`
	TotalAchievements int              `json:"total_achievements"`
	BestScores        []BestScoreEntry `json:"best_scores"`
	RecentActivity    []ActivityEntry  `json:"recent_activity"`
}

// ForUser composes the stats view inside one read transaction so every
// number reflects the same snapshot. No mutation.
func (s *StatsService) ForUser(userID uint) (*UserStats, error) {
	var stats UserStats

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var progress []models.Progress
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&progress).Error; err != nil {
			return err
		}

		var earnedCount int64
		if err := tx.Model(&models.UserAchievement{}).Where("user_id = ?", userID).
			Count(&earnedCount).Error; err != nil {
			return err
		}

		var catalogCount int64
		if err := tx.Model(&models.Achievement{}).Count(&catalogCount).Error; err != nil {
			return err
		}

		completed := 0
		bestScores := []BestScoreEntry{}
		recent := []ActivityEntry{}
		for _, p := range progress {
			if p.Completed {
				completed++
			}
			if p.BestScore != nil {
				bestScores = append(bestScores, BestScoreEntry{
					LessonID: p.LessonID,
					Score:    *p.BestScore,
					Attempts: p.Attempts,
				})
			}
			recent = append(recent, ActivityEntry{
				LessonID:      p.LessonID,
				LastPracticed: p.LastPracticed,
				Completed:     p.Completed,
			})
		}

		// Stable sorts keep original order between ties.
		sort.SliceStable(bestScores, func(i, j int) bool {
			return bestScores[i].Score > bestScores[j].Score
		})
		if len(bestScores) > 5 {
			bestScores = bestScores[:5]
		}

		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].LastPracticed.After(recent[j].LastPracticed)
		})
		if len(recent) > 10 {
			recent = recent[:10]
		}

		stats = UserStats{
			Username:          user.Username,
			TotalPoints:       user.TotalPoints,
			LessonsCompleted:  completed,
			TotalLessons:      s.lessons.Count(),
			AchievementsCount: int(earnedCount),
			TotalAchievements: int(catalogCount),
			BestScores:        bestScores,
			RecentActivity:    recent,
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}

	return &stats, nil
}
