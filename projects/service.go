// This file contains the business logic for project CRUD. The owner identity
// always comes from the verified token, never from the request payload.
package projects

import (
	"context"
	"errors"
	"time"

	"github.com/user/projtrack-go/apperror"
)

// ProjectService provides ownership-scoped CRUD over project records.
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates and persists a new project owned by ownerID. Status
// defaults to in_progress when absent.
func (s *ProjectService) Create(ctx context.Context, ownerID string, req *CreateProjectRequest) (*Project, error) {
	if req.Title == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, apperror.NewValidationError("title, startDate and endDate are required", nil)
	}

	status := req.Status
	if status == "" {
		status = StatusInProgress
	}
	if !ValidStatus(status) {
		return nil, apperror.NewValidationError("status must be one of in_progress, completed, cancelled", nil)
	}

	now := time.Now().UTC()
	project := &Project{
		Title:          req.Title,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		HoursPerWeek:   req.HoursPerWeek,
		TotalDays:      req.TotalDays,
		Objective:      req.Objective,
		TargetAudience: req.TargetAudience,
		Description:    req.Description,
		Challenges:     req.Challenges,
		Achievements:   req.Achievements,
		Learnings:      req.Learnings,
		EvidenceLinks:  req.EvidenceLinks,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, ownerID, project)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create project", err)
	}
	return created, nil
}

// List returns all projects owned by ownerID.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]Project, error) {
	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list projects", err)
	}
	return projects, nil
}

// Update applies a patch to the project matching both id and owner. A miss is
// always a 404: whether the project does not exist or belongs to someone else
// is not revealed.
func (s *ProjectService) Update(ctx context.Context, ownerID, projectID string, req *UpdateProjectRequest) (*Project, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, apperror.NewValidationError("status must be one of in_progress, completed, cancelled", nil)
	}

	updated, err := s.repo.Update(ctx, ownerID, projectID, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewNotFoundError("project not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update project", err)
	}
	return updated, nil
}

// Delete removes the project matching both id and owner.
func (s *ProjectService) Delete(ctx context.Context, ownerID, projectID string) error {
	if err := s.repo.Delete(ctx, ownerID, projectID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NewNotFoundError("project not found", nil)
		}
		return apperror.NewDatabaseError("failed to delete project", err)
	}
	return nil
}
