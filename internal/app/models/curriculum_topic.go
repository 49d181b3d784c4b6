package models

import (
	"time"
)

// CurriculumTopic defines a topic within a subject's curriculum
type CurriculumTopic struct {
	ID            int64      `json:"id" db:"id" example:"1"`
	SubjectID     int64      `json:"subjectId" db:"subject_id" example:"3"`
	TopicName     string     `json:"topicName" db:"topic_name" example:"Quadratic Equations"`
	Description   string     `json:"description,omitempty" db:"description"`
	IsCompleted   bool       `json:"isCompleted" db:"is_completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty" db:"completed_date"` // Set when the topic is completed
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}
