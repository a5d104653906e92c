package model

import "time"

// Environment names used by the HTTP server setup.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Role is a user's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status of a task.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// User is a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Tag is a label shared across tasks (many-to-many).
type Tag struct {
	ID   int64
	Name string
}

// Project groups tasks for per-project time aggregation.
type Project struct {
	ID   int64
	Name string
}

// Task is owned by exactly one user. Order drives manual sorting.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
	Progress    int
	Order       int
	ProjectID   *int64
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimeEntry is one calendar-day-bounded slice of recorded work on a task.
// Its effective owner is the owning task's user.
type TimeEntry struct {
	ID              int64
	TaskID          int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	BreakMinutes    int
}

// Scope identifies the authenticated caller for a request.
type Scope struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the scope belongs to an admin account.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
