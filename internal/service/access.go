package service

import (
	"strings"

	"projecthub/internal/apperr"
	"projecthub/internal/auth"
	"projecthub/internal/domain"
)

// CanView reports whether requester may read project: owners always can,
// everyone else only when it is public.
func CanView(requester domain.User, project domain.Project) bool {
	return project.OwnedBy(requester) || project.IsPublic()
}

// FilterVisible returns the projects of owner that requester may see. The
// input slice is never modified.
func FilterVisible(requester domain.User, projects []domain.Project, owner domain.User) []domain.Project {
	visible := make([]domain.Project, 0, len(projects))
	if requester.ID == owner.ID {
		return append(visible, projects...)
	}
	for _, p := range projects {
		if p.IsPublic() {
			visible = append(visible, p)
		}
	}
	return visible
}

// ValidateName rejects empty or whitespace-only project names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.ErrEmptyProjectName
	}
	return nil
}

// AuthorizeOwnership checks that the owner reference embedded in a payload
// names the resolved user by id, username and password.
func AuthorizeOwnership(encoder auth.PasswordEncoder, creds *domain.Credentials, resolved *domain.User) error {
	if creds == nil || resolved == nil {
		return apperr.ErrInvalidCredentials
	}
	if creds.ID != resolved.ID || creds.Username != resolved.Username {
		return apperr.ErrInvalidCredentials
	}
	if !encoder.Matches(creds.Password, resolved.Password) {
		return apperr.ErrInvalidCredentials
	}
	return nil
}
