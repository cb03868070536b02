package projects

import (
	"context"
	"errors"
)

// ErrNotFound indicates that no project matched both the id and the owner.
// A project that exists but belongs to someone else is indistinguishable from
// one that does not exist, deliberately: reporting a difference would confirm
// the resource's existence to a non-owner.
var ErrNotFound = errors.New("project not found")

// Repository is the storage contract for project documents. Every lookup is
// scoped by the owner id; there is no unscoped access path.
type Repository interface {
	// Create inserts a new project owned by ownerID.
	Create(ctx context.Context, ownerID string, project *Project) (*Project, error)
	// ListByOwner returns all projects owned by ownerID, in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
	// Update applies the patch to the project matching both id and owner and
	// returns the updated document. Returns ErrNotFound when nothing matches.
	Update(ctx context.Context, ownerID, projectID string, patch *UpdateProjectRequest) (*Project, error)
	// Delete removes the project matching both id and owner.
	// Returns ErrNotFound when nothing matches.
	Delete(ctx context.Context, ownerID, projectID string) error
}
