package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"planboard/internal/models"
)

type ProjectRepository interface {
	Store(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindAll(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, to models.ProjectStatus) error
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, total_budget, manager_id, status, created_at, updated_at`

func (r *projectRepository) Store(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.Description, project.StartDate, project.EndDate,
		project.TotalBudget, project.ManagerID, project.Status, project.CreatedAt, project.UpdatedAt,
	)
	return err
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
		&p.TotalBudget, &p.ManagerID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) FindAll(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	baseQuery := `SELECT ` + projectColumns + ` FROM projects`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.ManagerID != nil {
		conditions = append(conditions, fmt.Sprintf("manager_id = $%d", argID))
		args = append(args, *filter.ManagerID)
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
			&p.TotalBudget, &p.ManagerID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			name=$1, description=$2, start_date=$3, end_date=$4,
			total_budget=$5, manager_id=$6, status=$7, updated_at=$8
		WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		project.Name, project.Description, project.StartDate, project.EndDate,
		project.TotalBudget, project.ManagerID, project.Status, project.UpdatedAt, project.ID,
	)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id string, to models.ProjectStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}
