package services

import (
	"context"
	"strings"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// ActivityService handles co-curricular activity entries
type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	studentRepo  *repositories.StudentRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo *repositories.ActivityRepository, studentRepo *repositories.StudentRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		studentRepo:  studentRepo,
	}
}

// AddActivity records an activity for a student
func (s *ActivityService) AddActivity(ctx context.Context, adderID int64, req *dto.AddActivityRequest) (*models.Activity, error) {
	title := strings.TrimSpace(req.Title)
	if req.StudentID == 0 || title == "" || req.Date == "" {
		return nil, apperrors.NewValidationError("Please provide all required fields")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	date, err := helpers.ParseFlexibleDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date")
	}

	activity := &models.Activity{
		StudentID:   req.StudentID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Date:        date,
		AddedBy:     adderID,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// GetActivities lists activities matching the filter, newest first
func (s *ActivityService) GetActivities(ctx context.Context, filter *dto.ActivityFilter) ([]*models.Activity, error) {
	repoFilter := repositories.ActivityFilter{
		StudentID: filter.StudentID,
		Category:  filter.Category,
	}

	if filter.StartDate != "" {
		start, err := helpers.ParseFlexibleDate(filter.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid start date")
		}
		repoFilter.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := helpers.ParseFlexibleDate(filter.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid end date")
		}
		repoFilter.EndDate = &end
	}

	return s.activityRepo.List(ctx, repoFilter)
}

// DeleteActivity removes an activity entry
func (s *ActivityService) DeleteActivity(ctx context.Context, id int64) error {
	return s.activityRepo.Delete(ctx, id)
}
