package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"projecthub/internal/domain"
	"projecthub/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	visibility TEXT NOT NULL DEFAULT 'PUBLIC',
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects(user_id);
`

const selectProjectWithOwner = `
SELECT p.id, p.name, p.description, p.visibility, p.user_id, p.created_at, p.updated_at,
	u.id AS "owner.id",
	u.username AS "owner.username",
	u.password AS "owner.password",
	u.created_at AS "owner.created_at",
	u.updated_at AS "owner.updated_at"
FROM projects p
JOIN users u ON u.id = p.user_id`

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (int64, error) {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO projects (name, description, visibility, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		project.Name,
		project.Description,
		string(project.Visibility),
		project.OwnerID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert project %q: %w", project.Name, repository.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project last insert id: %w", err)
	}
	project.ID = id
	return id, nil
}

// Update writes the mutable fields of project. Ownership is never rewritten.
func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE projects
SET name=?, description=?, visibility=?, updated_at=?
WHERE id=?`,
		project.Name,
		project.Description,
		string(project.Visibility),
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update project %q: %w", project.Name, repository.ErrDuplicate)
		}
		return fmt.Errorf("update project: %w", err)
	}
	return expectOneRow(res, "update project")
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return expectOneRow(res, "delete project")
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.GetContext(ctx, &project, selectProjectWithOwner+`
WHERE p.id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %d: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	projects := []domain.Project{}
	if err := r.db.SelectContext(ctx, &projects, selectProjectWithOwner+`
WHERE p.user_id = ?
ORDER BY p.id ASC`, ownerID); err != nil {
		return nil, fmt.Errorf("query projects by owner: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) ListPublicExcludingOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	projects := []domain.Project{}
	if err := r.db.SelectContext(ctx, &projects, selectProjectWithOwner+`
WHERE p.user_id <> ? AND p.visibility = ?
ORDER BY p.id ASC`, ownerID, string(domain.VisibilityPublic)); err != nil {
		return nil, fmt.Errorf("query public projects: %w", err)
	}
	return projects, nil
}

func expectOneRow(res sql.Result, op string) error {
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if aff == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}
