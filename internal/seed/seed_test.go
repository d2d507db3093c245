package seed

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecthub/internal/auth"
	"projecthub/internal/domain"
	"projecthub/internal/repository/sqlite"
	"projecthub/internal/service"
)

func TestRun_IsRepeatable(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, projectRepo.Init(ctx))

	enc := auth.PlainEncoder{}
	users := service.NewUserService(userRepo, enc, auth.NewTokenIssuer("k", time.Hour))
	projects := service.NewProjectService(projectRepo, userRepo, enc)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	res, err := Run(ctx, users, projects, logger)
	require.NoError(t, err)
	assert.Equal(t, Result{UsersCreated: 3, ProjectsCreated: 5}, res)

	res, err = Run(ctx, users, projects, logger)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 8}, res)

	user1, err := users.Authenticate(ctx, "Username 1", "Password 1")
	require.NoError(t, err)
	user2, err := users.Authenticate(ctx, "Username 2", "Password 2")
	require.NoError(t, err)

	own, err := projects.ListForUser(ctx, *user1, "Username 1")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	public, err := projects.ListOthersPublic(ctx, *user2)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Project 1", public[0].Name)
	assert.Equal(t, domain.VisibilityPublic, public[0].Visibility)
}
