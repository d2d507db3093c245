// Package seed loads a fixed set of sample users and projects for local
// development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"projecthub/internal/apperr"
	"projecthub/internal/domain"
	"projecthub/internal/service"
)

type sampleUser struct {
	Username string
	Password string
}

type sampleProject struct {
	Name        string
	Description string
	Visibility  domain.Visibility
	Owner       int
}

var sampleUsers = []sampleUser{
	{"Username 1", "Password 1"},
	{"Username 2", "Password 2"},
	{"Username 3", "Password 3"},
}

var sampleProjects = []sampleProject{
	{"Project 1", "Project Description 1", domain.VisibilityPublic, 0},
	{"Project 2", "Project Description 2", domain.VisibilityPrivate, 0},
	{"Project 3", "Project Description 3", domain.VisibilityPublic, 1},
	{"Project 4", "Project Description 4", domain.VisibilityPrivate, 1},
	{"Project 5", "Project Description 5", domain.VisibilityPrivate, 2},
}

// Result counts what a Run created and what already existed.
type Result struct {
	UsersCreated    int
	ProjectsCreated int
	Skipped         int
}

// Run inserts the sample data through the regular services. Records that
// already exist are skipped, so Run can be repeated.
func Run(ctx context.Context, users service.UserService, projects service.ProjectService, logger logrus.FieldLogger) (Result, error) {
	var res Result

	owners := make([]*domain.Credentials, len(sampleUsers))
	for i, su := range sampleUsers {
		user, err := users.Register(ctx, su.Username, su.Password)
		switch {
		case err == nil:
			res.UsersCreated++
			logger.WithField("username", su.Username).Info("seeded user")
		case errors.Is(err, apperr.ErrDuplicateCredentials):
			res.Skipped++
			if user, err = users.Authenticate(ctx, su.Username, su.Password); err != nil {
				return res, fmt.Errorf("existing seed user %q: %w", su.Username, err)
			}
		default:
			return res, fmt.Errorf("seed user %q: %w", su.Username, err)
		}
		owners[i] = &domain.Credentials{ID: user.ID, Username: user.Username, Password: su.Password}
	}

	for _, sp := range sampleProjects {
		owner := owners[sp.Owner]
		_, err := projects.Create(ctx, domain.User{ID: owner.ID, Username: owner.Username}, service.ProjectInput{
			Name:        sp.Name,
			Description: sp.Description,
			Visibility:  string(sp.Visibility),
			Owner:       owner,
		})
		switch {
		case err == nil:
			res.ProjectsCreated++
			logger.WithFields(logrus.Fields{"project": sp.Name, "owner": owner.Username}).Info("seeded project")
		case errors.Is(err, apperr.ErrDuplicateProjectName):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed project %q: %w", sp.Name, err)
		}
	}

	return res, nil
}
