package task

import "context"

// TimelineRecorder appends entries to a task timeline. Recording is best
// effort; callers ignore failures.
type TimelineRecorder interface {
	Record(ctx context.Context, entry *TimelineEntry) error
	// IsCollaborator reports whether the user is assigned to the task.
	IsCollaborator(ctx context.Context, taskID, userID, companyID string) (bool, error)
}
