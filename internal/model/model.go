// Package model defines the rows of the generated dataset. Optional
// columns are pointers; a nil pointer is stored as NULL.
package model

import "time"

type Organization struct {
	ID        string
	Name      string
	Domain    string
	CreatedAt time.Time
}

type Team struct {
	ID             string
	OrganizationID string
	Name           string
	TeamType       string
	CreatedAt      time.Time
}

type User struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          string
	Role           string
	CreatedAt      time.Time
}

type TeamMembership struct {
	ID       string
	UserID   string
	TeamID   string
	JoinedAt time.Time
}

type Project struct {
	ID          string
	TeamID      string
	Name        string
	ProjectType string
	Status      string
	CreatedAt   time.Time
}

type Section struct {
	ID        string
	ProjectID string
	Name      string
	Position  int
}

type Task struct {
	ID          string
	ProjectID   string
	SectionID   string
	AssigneeID  *string
	Name        string
	Description *string
	Priority    string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type Subtask struct {
	ID           string
	ParentTaskID string
	AssigneeID   *string
	Name         string
	Completed    bool
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

type Comment struct {
	ID        string
	TaskID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
}

type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type TaskTagAssociation struct {
	TaskID     string
	TagID      string
	AssignedAt time.Time
}

type CustomFieldDefinition struct {
	ID        string
	ProjectID string
	Name      string
	FieldType string
	CreatedAt time.Time
}

type CustomFieldValue struct {
	ID        string
	FieldID   string
	TaskID    string
	Value     string
	UpdatedAt time.Time
}
