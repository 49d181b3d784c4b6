package services

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/db"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// SubjectStore persists subjects and their topic counters
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllByTeacher(ctx context.Context, teacherID int64) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
	AdjustTopicCountersTx(ctx context.Context, tx pgx.Tx, subjectID int64, totalDelta, completedDelta int) error
}

// TopicStore persists curriculum topics
type TopicStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, topic *models.CurriculumTopic) error
	GetByID(ctx context.Context, id int64) (*models.CurriculumTopic, error)
	GetBySubjectID(ctx context.Context, subjectID int64) ([]*models.CurriculumTopic, error)
	MarkCompletedTx(ctx context.Context, tx pgx.Tx, id int64, completedAt time.Time) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error
}

// SubjectService handles subjects and their curriculum topics. Topic
// mutations run in a transaction so the denormalized counters on the subject
// stay consistent with the topic rows.
type SubjectService struct {
	subjectRepo SubjectStore
	topicRepo   TopicStore
	runTx       func(ctx context.Context, fn db.TransactionFn) error
}

// NewSubjectService creates a new subject service
func NewSubjectService(pool *pgxpool.Pool, subjectRepo SubjectStore, topicRepo TopicStore) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		runTx: func(ctx context.Context, fn db.TransactionFn) error {
			return db.WithTransaction(ctx, pool, fn)
		},
	}
}

// CreateSubject creates a subject with zeroed topic counters
func (s *SubjectService) CreateSubject(ctx context.Context, teacherID int64, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" {
		return nil, apperrors.NewValidationError("Please provide subject name and code")
	}

	subject := &models.Subject{
		Name:        name,
		Code:        code,
		Description: strings.TrimSpace(req.Description),
		TeacherID:   teacherID,
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	logger.Info().Int64("subjectId", subject.ID).Int64("teacherId", teacherID).Msg("Subject created")
	return subject, nil
}

// GetSubjects lists the caller's subjects, newest first
func (s *SubjectService) GetSubjects(ctx context.Context, teacherID int64) ([]*models.Subject, error) {
	return s.subjectRepo.GetAllByTeacher(ctx, teacherID)
}

// GetSubject retrieves one subject with its topics populated
func (s *SubjectService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.GetBySubjectID(ctx, id)
	if err != nil {
		return nil, err
	}
	subject.Topics = topics

	return subject, nil
}

// UpdateSubject applies the whitelisted fields present in the request
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		subject.Code = strings.TrimSpace(*req.Code)
	}
	if req.Description != nil {
		subject.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// DeleteSubject removes a subject; its topics cascade at the database level
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("subjectId", id).Msg("Subject deleted")
	return nil
}

// AddTopic appends a topic to a subject's curriculum and bumps total_topics
// in the same transaction.
func (s *SubjectService) AddTopic(ctx context.Context, subjectID int64, req *dto.AddTopicRequest) (*models.CurriculumTopic, error) {
	topicName := strings.TrimSpace(req.TopicName)
	if topicName == "" {
		return nil, apperrors.NewValidationError("Please provide topic name")
	}

	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	topic := &models.CurriculumTopic{
		SubjectID:   subjectID,
		TopicName:   topicName,
		Description: strings.TrimSpace(req.Description),
	}

	err := s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.topicRepo.CreateTx(ctx, tx, topic); err != nil {
			return err
		}
		return s.subjectRepo.AdjustTopicCountersTx(ctx, tx, subjectID, 1, 0)
	})
	if err != nil {
		return nil, err
	}

	return topic, nil
}

// CompleteTopic marks a topic as completed and bumps completed_topics in the
// same transaction. Completing an already-completed topic changes nothing.
func (s *SubjectService) CompleteTopic(ctx context.Context, subjectID, topicID int64) (*models.CurriculumTopic, error) {
	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic.SubjectID != subjectID {
		return nil, apperrors.ErrTopicNotFound
	}

	if topic.IsCompleted {
		return topic, nil
	}

	completedAt := time.Now()
	err = s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.topicRepo.MarkCompletedTx(ctx, tx, topicID, completedAt); err != nil {
			return err
		}
		return s.subjectRepo.AdjustTopicCountersTx(ctx, tx, subjectID, 0, 1)
	})
	if err != nil {
		return nil, err
	}

	topic.IsCompleted = true
	topic.CompletedDate = &completedAt
	return topic, nil
}

// DeleteTopic removes a topic and decrements total_topics, plus
// completed_topics when the topic was completed, in the same transaction.
func (s *SubjectService) DeleteTopic(ctx context.Context, subjectID, topicID int64) error {
	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return err
	}
	if topic.SubjectID != subjectID {
		return apperrors.ErrTopicNotFound
	}

	completedDelta := 0
	if topic.IsCompleted {
		completedDelta = -1
	}

	return s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.topicRepo.DeleteTx(ctx, tx, topicID); err != nil {
			return err
		}
		return s.subjectRepo.AdjustTopicCountersTx(ctx, tx, subjectID, -1, completedDelta)
	})
}
