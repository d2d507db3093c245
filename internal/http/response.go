package http

import (
	"time"

	"projecthub/internal/domain"
	"projecthub/internal/service"
)

type ownerRequest struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type projectRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Visibility  string        `json:"visibility"`
	User        *ownerRequest `json:"user"`
}

func (r projectRequest) toInput() service.ProjectInput {
	in := service.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Visibility:  r.Visibility,
	}
	if r.User != nil {
		in.Owner = &domain.Credentials{
			ID:       r.User.ID,
			Username: r.User.Username,
			Password: r.User.Password,
		}
	}
	return in
}

type OwnerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type ProjectResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Visibility  domain.Visibility `json:"visibility"`
	Owner       OwnerResponse     `json:"owner"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func projectToResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Visibility:  p.Visibility,
		Owner: OwnerResponse{
			ID:       p.OwnerID,
			Username: p.Owner.Username,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func projectsToResponse(projects []domain.Project) []ProjectResponse {
	resp := make([]ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = projectToResponse(projects[i])
	}
	return resp
}
