package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/db"
	"github.com/edutrack/backend/internal/pkg/apperrors"
)

type counterAdjust struct {
	subjectID      int64
	totalDelta     int
	completedDelta int
}

type fakeSubjectStore struct {
	subjects map[int64]*models.Subject
	adjusts  []counterAdjust
}

func (f *fakeSubjectStore) Create(_ context.Context, subject *models.Subject) error {
	subject.ID = int64(len(f.subjects) + 1)
	f.subjects[subject.ID] = subject
	return nil
}

func (f *fakeSubjectStore) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	subject, ok := f.subjects[id]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

func (f *fakeSubjectStore) GetAllByTeacher(_ context.Context, teacherID int64) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for _, subject := range f.subjects {
		if subject.TeacherID == teacherID {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

func (f *fakeSubjectStore) Update(_ context.Context, subject *models.Subject) error {
	f.subjects[subject.ID] = subject
	return nil
}

func (f *fakeSubjectStore) Delete(_ context.Context, id int64) error {
	delete(f.subjects, id)
	return nil
}

func (f *fakeSubjectStore) AdjustTopicCountersTx(_ context.Context, _ pgx.Tx, subjectID int64, totalDelta, completedDelta int) error {
	f.adjusts = append(f.adjusts, counterAdjust{subjectID, totalDelta, completedDelta})
	if subject, ok := f.subjects[subjectID]; ok {
		subject.TotalTopics += totalDelta
		subject.CompletedTopics += completedDelta
	}
	return nil
}

type fakeTopicStore struct {
	topics map[int64]*models.CurriculumTopic
}

func (f *fakeTopicStore) CreateTx(_ context.Context, _ pgx.Tx, topic *models.CurriculumTopic) error {
	topic.ID = int64(len(f.topics) + 1)
	f.topics[topic.ID] = topic
	return nil
}

func (f *fakeTopicStore) GetByID(_ context.Context, id int64) (*models.CurriculumTopic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return nil, apperrors.ErrTopicNotFound
	}
	return topic, nil
}

func (f *fakeTopicStore) GetBySubjectID(_ context.Context, subjectID int64) ([]*models.CurriculumTopic, error) {
	var topics []*models.CurriculumTopic
	for _, topic := range f.topics {
		if topic.SubjectID == subjectID {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}

func (f *fakeTopicStore) MarkCompletedTx(_ context.Context, _ pgx.Tx, id int64, completedAt time.Time) error {
	if topic, ok := f.topics[id]; ok {
		topic.IsCompleted = true
		topic.CompletedDate = &completedAt
	}
	return nil
}

func (f *fakeTopicStore) DeleteTx(_ context.Context, _ pgx.Tx, id int64) error {
	delete(f.topics, id)
	return nil
}

func newTestSubjectService() (*SubjectService, *fakeSubjectStore, *fakeTopicStore) {
	subjects := &fakeSubjectStore{subjects: map[int64]*models.Subject{}}
	topics := &fakeTopicStore{topics: map[int64]*models.CurriculumTopic{}}
	svc := &SubjectService{
		subjectRepo: subjects,
		topicRepo:   topics,
		runTx: func(ctx context.Context, fn db.TransactionFn) error {
			return fn(ctx, nil)
		},
	}
	return svc, subjects, topics
}

func TestAddTopicIncrementsTotal(t *testing.T) {
	svc, subjects, topics := newTestSubjectService()
	subjects.subjects[3] = &models.Subject{ID: 3, Name: "Mathematics", Code: "MATH101"}

	topic, err := svc.AddTopic(context.Background(), 3, &dto.AddTopicRequest{TopicName: "Quadratic Equations"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), topic.SubjectID)
	assert.False(t, topic.IsCompleted)
	assert.Len(t, topics.topics, 1)
	assert.Equal(t, 1, subjects.subjects[3].TotalTopics)
	assert.Equal(t, 0, subjects.subjects[3].CompletedTopics)
}

func TestAddTopicValidation(t *testing.T) {
	svc, subjects, _ := newTestSubjectService()
	subjects.subjects[3] = &models.Subject{ID: 3}

	_, err := svc.AddTopic(context.Background(), 3, &dto.AddTopicRequest{TopicName: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddTopic(context.Background(), 99, &dto.AddTopicRequest{TopicName: "Quadratic Equations"})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestCompleteTopicIncrementsCompleted(t *testing.T) {
	svc, subjects, topics := newTestSubjectService()
	subjects.subjects[3] = &models.Subject{ID: 3, TotalTopics: 1}
	topics.topics[1] = &models.CurriculumTopic{ID: 1, SubjectID: 3, TopicName: "Quadratic Equations"}

	topic, err := svc.CompleteTopic(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.True(t, topic.IsCompleted)
	require.NotNil(t, topic.CompletedDate)
	assert.Equal(t, 1, subjects.subjects[3].CompletedTopics)
	assert.Equal(t, 1, subjects.subjects[3].TotalTopics)
}

func TestCompleteTopicIdempotent(t *testing.T) {
	svc, subjects, topics := newTestSubjectService()
	completedAt := time.Now().Add(-time.Hour)
	subjects.subjects[3] = &models.Subject{ID: 3, TotalTopics: 1, CompletedTopics: 1}
	topics.topics[1] = &models.CurriculumTopic{ID: 1, SubjectID: 3, IsCompleted: true, CompletedDate: &completedAt}

	topic, err := svc.CompleteTopic(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.True(t, topic.IsCompleted)
	assert.Equal(t, &completedAt, topic.CompletedDate)
	// Completing twice must not touch the counters
	assert.Empty(t, subjects.adjusts)
	assert.Equal(t, 1, subjects.subjects[3].CompletedTopics)
}

func TestCompleteTopicWrongSubject(t *testing.T) {
	svc, subjects, topics := newTestSubjectService()
	subjects.subjects[3] = &models.Subject{ID: 3}
	topics.topics[1] = &models.CurriculumTopic{ID: 1, SubjectID: 4}

	_, err := svc.CompleteTopic(context.Background(), 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
}

func TestDeleteTopicCounterDeltas(t *testing.T) {
	tests := []struct {
		name          string
		completed     bool
		wantTotal     int
		wantCompleted int
	}{
		{"completed topic decrements both counters", true, 1, 0},
		{"incomplete topic decrements only total", false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, subjects, topics := newTestSubjectService()
			subjects.subjects[3] = &models.Subject{ID: 3, TotalTopics: 2, CompletedTopics: 1}
			topics.topics[1] = &models.CurriculumTopic{ID: 1, SubjectID: 3, IsCompleted: tt.completed}

			require.NoError(t, svc.DeleteTopic(context.Background(), 3, 1))

			assert.Empty(t, topics.topics)
			assert.Equal(t, tt.wantTotal, subjects.subjects[3].TotalTopics)
			assert.Equal(t, tt.wantCompleted, subjects.subjects[3].CompletedTopics)
		})
	}
}

func TestDeleteTopicWrongSubject(t *testing.T) {
	svc, subjects, topics := newTestSubjectService()
	subjects.subjects[3] = &models.Subject{ID: 3, TotalTopics: 1}
	topics.topics[1] = &models.CurriculumTopic{ID: 1, SubjectID: 4}

	err := svc.DeleteTopic(context.Background(), 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
	assert.Len(t, topics.topics, 1)
	assert.Empty(t, subjects.adjusts)
}
