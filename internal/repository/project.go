package repository

import (
	"context"

	"projecthub/internal/domain"
)

// ProjectRepository exposes persistence operations for Project records.
// Returned projects always carry their Owner.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, project *domain.Project) (int64, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error)
	ListPublicExcludingOwner(ctx context.Context, ownerID int64) ([]domain.Project, error)
}
