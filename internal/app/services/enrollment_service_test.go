package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
)

type fakeEnrollmentStore struct {
	pairs   map[[2]int64]bool
	catalog map[int64]*models.Subject
}

func (f *fakeEnrollmentStore) Add(_ context.Context, studentID, subjectID int64) error {
	key := [2]int64{studentID, subjectID}
	if f.pairs[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	f.pairs[key] = true
	return nil
}

func (f *fakeEnrollmentStore) Remove(_ context.Context, studentID, subjectID int64) error {
	delete(f.pairs, [2]int64{studentID, subjectID})
	return nil
}

func (f *fakeEnrollmentStore) BulkAdd(_ context.Context, studentID int64, subjectIDs []int64) (int, error) {
	added := 0
	for _, subjectID := range subjectIDs {
		key := [2]int64{studentID, subjectID}
		if !f.pairs[key] {
			f.pairs[key] = true
			added++
		}
	}
	return added, nil
}

func (f *fakeEnrollmentStore) GetSubjectsByStudent(_ context.Context, studentID int64) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for key := range f.pairs {
		if key[0] == studentID {
			subjects = append(subjects, f.catalog[key[1]])
		}
	}
	return subjects, nil
}

type fakeSubjectLookup struct {
	known map[int64]bool
}

func (f *fakeSubjectLookup) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	if !f.known[id] {
		return nil, apperrors.ErrSubjectNotFound
	}
	return &models.Subject{ID: id}, nil
}

func newTestEnrollmentService() (*EnrollmentService, *fakeEnrollmentStore) {
	store := &fakeEnrollmentStore{
		pairs: map[[2]int64]bool{},
		catalog: map[int64]*models.Subject{
			3: {ID: 3, Name: "Mathematics"},
			4: {ID: 4, Name: "Physics"},
			5: {ID: 5, Name: "Chemistry"},
		},
	}
	svc := NewEnrollmentService(
		store,
		&fakeStudentLookup{known: map[int64]bool{7: true}},
		&fakeSubjectLookup{known: map[int64]bool{3: true, 4: true, 5: true}},
	)
	return svc, store
}

func TestAddSubjectEnrolls(t *testing.T) {
	svc, _ := newTestEnrollmentService()

	student, err := svc.AddSubject(context.Background(), 7, 3)
	require.NoError(t, err)

	require.Len(t, student.EnrolledSubjects, 1)
	assert.Equal(t, "Mathematics", student.EnrolledSubjects[0].Name)
}

func TestAddSubjectDuplicateConflict(t *testing.T) {
	svc, _ := newTestEnrollmentService()

	_, err := svc.AddSubject(context.Background(), 7, 3)
	require.NoError(t, err)

	_, err = svc.AddSubject(context.Background(), 7, 3)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestAddSubjectMissingSides(t *testing.T) {
	svc, _ := newTestEnrollmentService()

	_, err := svc.AddSubject(context.Background(), 99, 3)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.AddSubject(context.Background(), 7, 99)
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestRemoveSubjectNonMemberNoop(t *testing.T) {
	svc, _ := newTestEnrollmentService()

	student, err := svc.RemoveSubject(context.Background(), 7, 3)
	require.NoError(t, err, "removing a subject the student never had must succeed")
	assert.Empty(t, student.EnrolledSubjects)
}

func TestBulkAddCountsNewOnly(t *testing.T) {
	svc, store := newTestEnrollmentService()
	store.pairs[[2]int64{7, 3}] = true

	student, added, err := svc.BulkAddSubjects(context.Background(), 7, []int64{3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 2, added)
	assert.Len(t, student.EnrolledSubjects, 3)
}
