package model

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	user := int64(3)
	tests := []struct {
		name        string
		taskName    string
		projectID   int64
		expectError bool
		description string
	}{
		{
			name:        "Valid task",
			taskName:    " Design ",
			projectID:   1,
			description: "name is trimmed and project kept",
		},
		{
			name:        "Empty name",
			taskName:    "",
			projectID:   1,
			expectError: true,
			description: "an empty name is rejected",
		},
		{
			name:        "Missing project",
			taskName:    "Design",
			projectID:   0,
			expectError: true,
			description: "a task must belong to a project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.taskName, "", tt.projectID, nil, &user, testTime())
			if tt.expectError {
				if !IsValidation(err) {
					t.Errorf("%s: expected ValidationError, got %v", tt.description, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.description, err)
			}
			if task.Name != "Design" || task.ProjectID != tt.projectID {
				t.Errorf("%s: got %+v", tt.description, task)
			}
			if task.StatusID != nil {
				t.Errorf("%s: expected no status, got %d", tt.description, *task.StatusID)
			}
			if task.CreatedByUserID == nil || *task.CreatedByUserID != user {
				t.Errorf("%s: expected creator %d", tt.description, user)
			}
		})
	}
}

func TestTaskRename(t *testing.T) {
	task, err := NewTask("Design", "", 1, nil, nil, testTime())
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if err := task.Rename("  "); !IsValidation(err) {
		t.Errorf("Expected ValidationError for blank name, got %v", err)
	}
	if task.Name != "Design" {
		t.Errorf("Name changed on failed rename: %q", task.Name)
	}
	if err := task.Rename("Redesign"); err != nil || task.Name != "Redesign" {
		t.Errorf("Expected rename to Redesign, got %q (%v)", task.Name, err)
	}
}

func TestNewTaskStatus(t *testing.T) {
	if _, err := NewTaskStatus(""); !IsValidation(err) {
		t.Errorf("Expected ValidationError for empty status name, got %v", err)
	}
	s, err := NewTaskStatus(" Done ")
	if err != nil || s.Name != "Done" {
		t.Errorf("Expected status Done, got %+v (%v)", s, err)
	}
}

func TestNewComment(t *testing.T) {
	if _, err := NewComment(" ", 1, testTime()); !IsValidation(err) {
		t.Errorf("Expected ValidationError for blank message, got %v", err)
	}
	if _, err := NewComment("hi", 0, testTime()); !IsValidation(err) {
		t.Errorf("Expected ValidationError for missing assignment, got %v", err)
	}

	c, err := NewComment("Looks good", 5, testTime())
	if err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	if !c.DateCreated.Equal(testTime()) || c.TaskAssignmentID != 5 {
		t.Errorf("Unexpected comment: %+v", c)
	}
	if err := c.Edit(""); !IsValidation(err) {
		t.Errorf("Expected ValidationError for empty edit, got %v", err)
	}
	if err := c.Edit("Ship it"); err != nil || c.Message != "Ship it" {
		t.Errorf("Expected edited message, got %q (%v)", c.Message, err)
	}
}

func TestNewTaskAssignment(t *testing.T) {
	if _, err := NewTaskAssignment(0, 1, testTime()); !IsValidation(err) {
		t.Errorf("Expected ValidationError for missing user, got %v", err)
	}
	if _, err := NewTaskAssignment(1, 0, testTime()); !IsValidation(err) {
		t.Errorf("Expected ValidationError for missing task, got %v", err)
	}
	a, err := NewTaskAssignment(2, 3, testTime())
	if err != nil || a.UserID != 2 || a.TaskID != 3 || !a.Date.Equal(testTime()) {
		t.Errorf("Unexpected assignment: %+v (%v)", a, err)
	}
}
