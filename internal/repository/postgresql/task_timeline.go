package postgresql

import (
	"context"

	"github.com/foratask/foratask-backend-go/internal/domain/task"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
)

type taskTimelineRepositoryImpl struct {
	db *database.DB
}

func NewTaskTimelineRepository(db *database.DB) task.TimelineRecorder {
	return &taskTimelineRepositoryImpl{db: db}
}

// Record implements task.TimelineRecorder.
func (r *taskTimelineRepositoryImpl) Record(ctx context.Context, entry *task.TimelineEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_timeline_entries (
			id, task_id, user_id, company_id, action, detail, created_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	return q.QueryRow(ctx, query,
		entry.TaskID, entry.UserID, entry.CompanyID, entry.Action, entry.Detail,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// IsCollaborator implements task.TimelineRecorder.
func (r *taskTimelineRepositoryImpl) IsCollaborator(ctx context.Context, taskID, userID, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM task_collaborators tc
			JOIN tasks t ON tc.task_id = t.id
			WHERE tc.task_id = $1 AND tc.user_id = $2 AND t.company_id = $3
		)
	`, taskID, userID, companyID).Scan(&exists)

	return exists, err
}
