package task

import "time"

// TimelineEntry is an attendance marker appended to a task's activity
// stream when a member checks in against the task.
type TimelineEntry struct {
	ID        string
	TaskID    string
	UserID    string
	CompanyID string
	Action    string
	Detail    string
	CreatedAt time.Time
}

const ActionAttendanceMarked = "attendance_marked"
