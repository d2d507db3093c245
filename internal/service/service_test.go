package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"projecthub/internal/auth"
	"projecthub/internal/domain"
	"projecthub/internal/repository/sqlite"
)

type fixture struct {
	users    UserService
	projects ProjectService
	tokens   *auth.TokenIssuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, projectRepo.Init(ctx))

	enc := auth.PlainEncoder{}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return &fixture{
		users:    NewUserService(userRepo, enc, tokens),
		projects: NewProjectService(projectRepo, userRepo, enc),
		tokens:   tokens,
	}
}

// register creates a user and returns it with credentials for payloads.
func (f *fixture) register(t *testing.T, username, password string) (domain.User, *domain.Credentials) {
	t.Helper()
	user, err := f.users.Register(context.Background(), username, password)
	require.NoError(t, err)
	return *user, &domain.Credentials{ID: user.ID, Username: user.Username, Password: password}
}

func (f *fixture) create(t *testing.T, owner domain.User, creds *domain.Credentials, name string, visibility domain.Visibility) *domain.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), owner, ProjectInput{
		Name:       name,
		Visibility: string(visibility),
		Owner:      creds,
	})
	require.NoError(t, err)
	return p
}
