package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// GroupRepository defines the interface for training group database operations.
type GroupRepository interface {
	CreateGroup(ctx context.Context, executor SQLExecutor, group *models.Group) (int64, error)
	GetGroupByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Group, error)
	GetGroups(ctx context.Context, executor SQLExecutor) ([]models.Group, error)
	UpdateGroup(ctx context.Context, executor SQLExecutor, group *models.Group) error
	DeleteGroup(ctx context.Context, executor SQLExecutor, id int64) error
}

type groupRepository struct{}

// NewGroupRepository creates a new instance of GroupRepository.
func NewGroupRepository() GroupRepository {
	return &groupRepository{}
}

const groupColumns = `id, name, days, time_start, time_end, comment, created_at, updated_at`

func scanGroup(row scanner, g *models.Group) error {
	return row.Scan(&g.ID, &g.Name, &g.Days, &g.TimeStart, &g.TimeEnd, &g.Comment, &g.CreatedAt, &g.UpdatedAt)
}

func (r *groupRepository) CreateGroup(ctx context.Context, executor SQLExecutor, group *models.Group) (int64, error) {
	query := `INSERT INTO groups (name, days, time_start, time_end, comment, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	now := time.Now()
	group.CreatedAt, group.UpdatedAt = now, now

	err := executor.QueryRowContext(ctx, query,
		group.Name, group.Days, group.TimeStart, group.TimeEnd, group.Comment, group.CreatedAt, group.UpdatedAt,
	).Scan(&group.ID)
	if err != nil {
		return 0, writeError(err, "creating group")
	}
	return group.ID, nil
}

func (r *groupRepository) GetGroupByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Group, error) {
	group := &models.Group{}
	err := scanGroup(executor.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id), group)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting group by ID %d: %v", ErrDatabaseError, id, err)
	}
	return group, nil
}

func (r *groupRepository) GetGroups(ctx context.Context, executor SQLExecutor) ([]models.Group, error) {
	groups := []models.Group{}
	rows, err := executor.QueryContext(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying groups: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Group
		if err := scanGroup(rows, &g); err != nil {
			return nil, fmt.Errorf("%w: scanning group: %v", ErrDatabaseError, err)
		}
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating group rows: %v", ErrDatabaseError, err)
	}
	return groups, nil
}

func (r *groupRepository) UpdateGroup(ctx context.Context, executor SQLExecutor, group *models.Group) error {
	query := `UPDATE groups SET name = $1, days = $2, time_start = $3, time_end = $4, comment = $5, updated_at = $6
	          WHERE id = $7`

	group.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating group ID %d", group.ID)

	result, err := executor.ExecContext(ctx, query,
		group.Name, group.Days, group.TimeStart, group.TimeEnd, group.Comment, group.UpdatedAt, group.ID,
	)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

func (r *groupRepository) DeleteGroup(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "groups", id)
}
