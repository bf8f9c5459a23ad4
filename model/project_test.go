package model

import (
	"errors"
	"testing"
	"time"
)

func testTime() time.Time {
	return time.Date(2025, 5, 1, 10, 4, 1, 0, time.UTC)
}

// TestNewProject は NewProject のテストです。
func TestNewProject(t *testing.T) {
	project, err := NewProject("  Website ", "Company site", testTime())
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if project.ID != 0 {
		t.Errorf("Expected unsaved project to have zero ID, got %d", project.ID)
	}
	if project.Name != "Website" {
		t.Errorf("Expected name %q, got %q", "Website", project.Name)
	}
	if project.Description != "Company site" {
		t.Errorf("Expected description %q, got %q", "Company site", project.Description)
	}
	if !project.CreatedAt.Equal(testTime()) {
		t.Errorf("Expected CreatedAt %v, got %v", testTime(), project.CreatedAt)
	}
}

// TestNewProjectEmptyName は空の名前でプロジェクトを作成できないことを確認します。
func TestNewProjectEmptyName(t *testing.T) {
	_, err := NewProject("   ", "Description", testTime())
	if err == nil {
		t.Fatal("Expected error when creating project with empty name, got nil")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %T", err)
	}
}

func TestProjectRename(t *testing.T) {
	tests := []struct {
		name        string
		newName     string
		expectError bool
		description string
	}{
		{
			name:        "Valid name",
			newName:     "Intranet",
			expectError: false,
			description: "a non-empty name replaces the old one",
		},
		{
			name:        "Empty name",
			newName:     "",
			expectError: true,
			description: "an empty name is rejected",
		},
		{
			name:        "Whitespace name",
			newName:     " \t",
			expectError: true,
			description: "a blank name is rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := NewProject("Website", "", testTime())
			if err != nil {
				t.Fatalf("Failed to create project: %v", err)
			}
			err = project.Rename(tt.newName, "new description")
			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got nil", tt.description)
				}
				if project.Name != "Website" {
					t.Errorf("%s: name changed to %q on failure", tt.description, project.Name)
				}
				return
			}
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.description, err)
			}
			if project.Name != tt.newName || project.Description != "new description" {
				t.Errorf("%s: got %q/%q", tt.description, project.Name, project.Description)
			}
		})
	}
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("task", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected NotFoundError to match ErrNotFound")
	}
	if errors.Is(err, ErrIntegrity) {
		t.Error("NotFoundError must not match ErrIntegrity")
	}
	if err.Error() != "no task found with id 42" {
		t.Errorf("Unexpected message: %q", err.Error())
	}

	integrity := NewIntegrityError("comment", 7, "task assignment")
	if !errors.Is(integrity, ErrIntegrity) {
		t.Error("Expected IntegrityError to match ErrIntegrity")
	}
}
