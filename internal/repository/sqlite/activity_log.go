package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
)

type activityLogRepositoryImpl struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activity.Repository {
	return &activityLogRepositoryImpl{db: db}
}

// Create implements activity.Repository.
func (r *activityLogRepositoryImpl) Create(ctx context.Context, l activity.Log) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details, ip_address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.UserID, l.Action, l.EntityType, l.EntityID, l.Details, l.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to write activity log: %w", err)
	}
	return nil
}

// List implements activity.Repository.
func (r *activityLogRepositoryImpl) List(ctx context.Context, filter activity.LogFilter) ([]activity.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}
	if filter.UserID != nil {
		conditions = append(conditions, "l.user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.EntityType != nil && *filter.EntityType != "" {
		conditions = append(conditions, "l.entity_type = ?")
		args = append(args, *filter.EntityType)
	}
	if filter.Action != nil && *filter.Action != "" {
		conditions = append(conditions, "l.action = ?")
		args = append(args, *filter.Action)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM activity_logs l"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	query := `
		SELECT l.id, l.user_id, l.action, l.entity_type, l.entity_id, l.details, l.ip_address, l.created_at, u.email
		FROM activity_logs l
		LEFT JOIN users u ON l.user_id = u.id` + where + `
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	logs := []activity.Log{}
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.IPAddress, &l.CreatedAt, &l.UserEmail); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
