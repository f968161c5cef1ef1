// services/progress_service.go - Per-lesson progress tracking
package services

import (
	"errors"
	"time"

	"github.com/thelonewolf39/Language-Learning-web/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db           *gorm.DB
	achievements *AchievementService
	locks        *UserLocks
}

func NewProgressService(db *gorm.DB, achievements *AchievementService, locks *UserLocks) *ProgressService {
	return &ProgressService{db: db, achievements: achievements, locks: locks}
}

// Record applies a lesson attempt and re-evaluates achievements in the
// same transaction, returning the updated progress together with any
// achievements the update earned. A nil score means the attempt carried
// no score; 0 is a real score.
//
// The write is retried once on a non-domain failure before surfacing.
func (s *ProgressService) Record(userID, lessonID uint, completed bool, score *int) (*models.Progress, []models.Achievement, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	progress, earned, err := s.record(userID, lessonID, completed, score)
	if err != nil && !errors.Is(err, ErrNotFound) {
		time.Sleep(100 * time.Millisecond)
		progress, earned, err = s.record(userID, lessonID, completed, score)
	}
	return progress, earned, wrapStorage(err)
}

func (s *ProgressService) record(userID, lessonID uint, completed bool, score *int) (*models.Progress, []models.Achievement, error) {
	var progress models.Progress
	var earned []models.Achievement

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			progress = models.Progress{
				UserID:    userID,
				LessonID:  lessonID,
				Completed: completed,
				Attempts:  1,
			}
			if score != nil {
				progress.Score = intPtr(*score)
				progress.BestScore = intPtr(*score)
			}
		case err != nil:
			return err
		default:
			progress.Completed = completed
			progress.Attempts++
			if score != nil {
				progress.Score = intPtr(*score)
				if progress.BestScore == nil || *score > *progress.BestScore {
					progress.BestScore = intPtr(*score)
				}
			}
		}

		now := time.Now()
		if progress.Completed {
			progress.CompletedAt = &now
		}
		progress.LastPracticed = now

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		earned, err = s.achievements.EvaluateAndAward(tx, &user)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return &progress, earned, nil
}

// ListForUser returns every progress record the user has.
func (s *ProgressService) ListForUser(userID uint) ([]models.Progress, error) {
	var progress []models.Progress
	if err := s.db.Where("user_id = ?", userID).Order("lesson_id").Find(&progress).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return progress, nil
}

// GetLesson returns the record for one lesson, or ErrNotFound when the
// user has never touched it.
func (s *ProgressService) GetLesson(userID, lessonID uint) (*models.Progress, error) {
	var progress models.Progress
	err := s.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &progress, nil
}

func intPtr(v int) *int {
	return &v
}
