package service

import (
	"context"
	"errors"

	"projecthub/internal/apperr"
	"projecthub/internal/auth"
	"projecthub/internal/domain"
	"projecthub/internal/repository"
)

// ProjectInput is the client supplied part of a create or modify request.
// An empty Visibility means PUBLIC.
type ProjectInput struct {
	Name        string
	Description string
	Visibility  string
	Owner       *domain.Credentials
}

// ProjectService applies ownership and visibility rules on top of the
// project store. requester is always the caller bound by the request gate.
type ProjectService interface {
	Create(ctx context.Context, requester domain.User, in ProjectInput) (*domain.Project, error)
	Get(ctx context.Context, requester domain.User, id int64) (*domain.Project, error)
	ListForUser(ctx context.Context, requester domain.User, username string) ([]domain.Project, error)
	ListOthersPublic(ctx context.Context, requester domain.User) ([]domain.Project, error)
	Modify(ctx context.Context, requester domain.User, id int64, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, requester domain.User, id int64) error
	AuthorizeRemoval(ctx context.Context, requester domain.User, id int64) (*domain.Project, error)
}

type projectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	encoder  auth.PasswordEncoder
}

func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, encoder auth.PasswordEncoder) ProjectService {
	return &projectService{
		projects: projects,
		users:    users,
		encoder:  encoder,
	}
}

func (s *projectService) Create(ctx context.Context, requester domain.User, in ProjectInput) (*domain.Project, error) {
	owner, err := s.resolveOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwnership(s.encoder, in.Owner, owner); err != nil {
		return nil, err
	}
	if err := ValidateName(in.Name); err != nil {
		return nil, err
	}
	visibility, err := domain.ParseVisibility(in.Visibility)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidVisibility, err)
	}

	project := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Visibility:  visibility,
		OwnerID:     owner.ID,
	}
	if _, err := s.projects.Create(ctx, project); err != nil {
		return nil, projectWriteErr(err)
	}
	project.Owner = *sanitizeUser(owner)
	return project, nil
}

func (s *projectService) Get(ctx context.Context, requester domain.User, id int64) (*domain.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanView(requester, *project) {
		return nil, apperr.ErrPrivateProject
	}
	return project, nil
}

func (s *projectService) ListForUser(ctx context.Context, requester domain.User, username string) ([]domain.Project, error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrUserNotFound, err)
		}
		return nil, err
	}

	projects, err := s.projects.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return withoutSecrets(FilterVisible(requester, projects, *owner)), nil
}

func (s *projectService) ListOthersPublic(ctx context.Context, requester domain.User) ([]domain.Project, error) {
	projects, err := s.projects.ListPublicExcludingOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	return withoutSecrets(projects), nil
}

// Modify rewrites name, description and visibility. The payload owner must be
// the requester, and the requester must own the stored project.
func (s *projectService) Modify(ctx context.Context, requester domain.User, id int64, in ProjectInput) (*domain.Project, error) {
	if in.Owner == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	owner, err := s.resolveOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwnership(s.encoder, in.Owner, owner); err != nil {
		return nil, apperr.ErrOwnerImmutable
	}
	if err := ValidateName(in.Name); err != nil {
		return nil, err
	}
	visibility, err := domain.ParseVisibility(in.Visibility)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidVisibility, err)
	}

	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.OwnedBy(*owner) {
		return nil, apperr.ErrOwnerImmutable
	}

	project.Name = in.Name
	project.Description = in.Description
	project.Visibility = visibility
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, projectWriteErr(err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, requester domain.User, id int64) error {
	if _, err := s.AuthorizeRemoval(ctx, requester, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return projectWriteErr(err)
	}
	return nil
}

// AuthorizeRemoval resolves the project and fails unless requester owns it.
func (s *projectService) AuthorizeRemoval(ctx context.Context, requester domain.User, id int64) (*domain.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.OwnedBy(requester) {
		return nil, apperr.ErrNotOwner
	}
	return project, nil
}

func (s *projectService) find(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrProjectNotFound, err)
		}
		return nil, err
	}
	project.Owner = *sanitizeUser(&project.Owner)
	return project, nil
}

// resolveOwner loads the full record of the requester, password included.
func (s *projectService) resolveOwner(ctx context.Context, requester domain.User) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	return user, nil
}

func projectWriteErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Wrap(apperr.ErrDuplicateProjectName, err)
	case errors.Is(err, repository.ErrNotFound):
		return apperr.Wrap(apperr.ErrProjectNotFound, err)
	default:
		return err
	}
}

func withoutSecrets(projects []domain.Project) []domain.Project {
	for i := range projects {
		projects[i].Owner.Password = ""
	}
	return projects
}
