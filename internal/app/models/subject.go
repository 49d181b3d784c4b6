package models

import (
	"time"
)

// Subject defines the subject model based on the 'subjects' table.
// TotalTopics and CompletedTopics are denormalized counters over the
// subject's curriculum topics, maintained on topic mutations.
type Subject struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	Name            string    `json:"name" db:"name" example:"Mathematics"`
	Code            string    `json:"code" db:"code" example:"MATH101"`
	Description     string    `json:"description,omitempty" db:"description"`
	TeacherID       int64     `json:"teacherId" db:"teacher_id" example:"5"`
	TotalTopics     int       `json:"totalTopics" db:"total_topics" example:"12"`
	CompletedTopics int       `json:"completedTopics" db:"completed_topics" example:"7"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Topics []*CurriculumTopic `json:"topics,omitempty"`
}
