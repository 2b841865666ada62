package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"planboard/internal/models"
)

type AssignmentRepository interface {
	Store(ctx context.Context, assignment *models.ResourceAssignment) error
	FindByID(ctx context.Context, id string) (*models.ResourceAssignment, error)
	FindAll(ctx context.Context, filter models.AssignmentFilter) ([]models.ResourceAssignment, error)
	Update(ctx context.Context, assignment *models.ResourceAssignment) error
	Delete(ctx context.Context, id string) error
	DeleteByTask(ctx context.Context, taskID string) error
}

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `id, task_id, resource_id, hours_assigned, start_date, end_date, created_at, updated_at`

func (r *assignmentRepository) Store(ctx context.Context, assignment *models.ResourceAssignment) error {
	query := `
		INSERT INTO resource_assignments (` + assignmentColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.db.ExecContext(ctx, query,
		assignment.ID, assignment.TaskID, assignment.ResourceID, assignment.HoursAssigned,
		assignment.StartDate, assignment.EndDate, assignment.CreatedAt, assignment.UpdatedAt,
	)
	return err
}

func (r *assignmentRepository) FindByID(ctx context.Context, id string) (*models.ResourceAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM resource_assignments WHERE id = $1`
	a := &models.ResourceAssignment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.TaskID, &a.ResourceID, &a.HoursAssigned,
		&a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *assignmentRepository) FindAll(ctx context.Context, filter models.AssignmentFilter) ([]models.ResourceAssignment, error) {
	baseQuery := `SELECT ` + assignmentColumns + ` FROM resource_assignments`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.TaskID != nil {
		conditions = append(conditions, fmt.Sprintf("task_id = $%d", argID))
		args = append(args, *filter.TaskID)
		argID++
	}
	if filter.ResourceID != nil {
		conditions = append(conditions, fmt.Sprintf("resource_id = $%d", argID))
		args = append(args, *filter.ResourceID)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY start_date ASC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.ResourceAssignment
	for rows.Next() {
		var a models.ResourceAssignment
		if err := rows.Scan(
			&a.ID, &a.TaskID, &a.ResourceID, &a.HoursAssigned,
			&a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.ResourceAssignment) error {
	query := `
		UPDATE resource_assignments SET
			task_id=$1, resource_id=$2, hours_assigned=$3, start_date=$4, end_date=$5, updated_at=$6
		WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query,
		assignment.TaskID, assignment.ResourceID, assignment.HoursAssigned,
		assignment.StartDate, assignment.EndDate, assignment.UpdatedAt, assignment.ID,
	)
	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resource_assignments WHERE id = $1`, id)
	return err
}

func (r *assignmentRepository) DeleteByTask(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resource_assignments WHERE task_id = $1`, taskID)
	return err
}
