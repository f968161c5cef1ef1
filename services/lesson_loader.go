// services/lesson_loader.go - Static lesson catalog
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

const DefaultLessonsFile = "./lessons.json"

type LessonQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type Lesson struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Questions   []LessonQuestion `json:"questions"`
}

// LessonCatalog holds the lesson content loaded from the static JSON
// file. Content is read-only after Load.
type LessonCatalog struct {
	mu      sync.RWMutex
	lessons []Lesson
}

func NewLessonCatalog() *LessonCatalog {
	return &LessonCatalog{}
}

// Load reads the lesson file, replacing any previously loaded content.
func (c *LessonCatalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lessons file: %w", err)
	}

	var lessons []Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return fmt.Errorf("failed to parse lessons file: %w", err)
	}

	c.mu.Lock()
	c.lessons = lessons
	c.mu.Unlock()

	log.Printf("Loaded %d lessons from %s", len(lessons), path)
	return nil
}

// All returns every lesson in file order.
func (c *LessonCatalog) All() []Lesson {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Get returns the lesson with the given ID.
func (c *LessonCatalog) Get(id uint) (Lesson, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, lesson := range c.lessons {
		if lesson.ID == id {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// Count reports the catalog size.
func (c *LessonCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lessons)
}
