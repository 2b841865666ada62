package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"planboard/internal/models"
)

type ResourceRepository interface {
	Store(ctx context.Context, resource *models.Resource) error
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	FindAll(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
	UpdateAssignedHours(ctx context.Context, id string, hours float64) error
}

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Store(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (id, name, type, hourly_rate, total_hours, assigned_hours)
		VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, query,
		resource.ID, resource.Name, resource.Type, resource.HourlyRate,
		resource.TotalHours, resource.AssignedHours,
	)
	return err
}

func (r *resourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	query := `SELECT id, name, type, hourly_rate, total_hours, assigned_hours
		FROM resources WHERE id = $1`
	res := &models.Resource{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.Name, &res.Type, &res.HourlyRate, &res.TotalHours, &res.AssignedHours,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	res.AvailableHours = res.TotalHours - res.AssignedHours
	return res, nil
}

func (r *resourceRepository) FindAll(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	baseQuery := `SELECT id, name, type, hourly_rate, total_hours, assigned_hours FROM resources`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argID))
		args = append(args, *filter.Type)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Type, &res.HourlyRate, &res.TotalHours, &res.AssignedHours,
		); err != nil {
			return nil, err
		}
		res.AvailableHours = res.TotalHours - res.AssignedHours
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources SET
			name=$1, type=$2, hourly_rate=$3, total_hours=$4, assigned_hours=$5
		WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query,
		resource.Name, resource.Type, resource.HourlyRate,
		resource.TotalHours, resource.AssignedHours, resource.ID,
	)
	return err
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return err
}

func (r *resourceRepository) UpdateAssignedHours(ctx context.Context, id string, hours float64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE resources SET assigned_hours=$1 WHERE id=$2`, hours, id)
	return err
}
