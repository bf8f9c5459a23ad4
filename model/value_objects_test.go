package model

import (
	"testing"
)

// TestNewPageRequest は NewPageRequest のテストです。
func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name         string
		numberStr    string
		sizeStr      string
		expectError  bool
		maxSize      int
		expectedNum  int
		expectedSize int
		description  string
	}{
		{
			name:         "Defaults",
			expectedNum:  1,
			expectedSize: 10,
			description:  "empty strings fall back to page 1 of 10",
		},
		{
			name:         "Explicit values",
			numberStr:    "3",
			sizeStr:      "25",
			expectedNum:  3,
			expectedSize: 25,
			description:  "explicit values are kept",
		},
		{
			name:        "Zero page",
			numberStr:   "0",
			expectError: true,
			description: "page numbers start at 1",
		},
		{
			name:        "Negative size",
			sizeStr:     "-5",
			expectError: true,
			description: "page size must be positive",
		},
		{
			name:        "Non-numeric",
			numberStr:   "abc",
			expectError: true,
			description: "non-numeric values are rejected",
		},
		{
			name:         "No maximum by default",
			sizeStr:      "5000",
			expectedNum:  1,
			expectedSize: 5000,
			description:  "without a maximum any positive size is kept",
		},
		{
			name:        "Size above configured maximum",
			sizeStr:     "101",
			maxSize:     100,
			expectError: true,
			description: "sizes above a configured maximum are rejected",
		},
		{
			name:         "Size at configured maximum",
			sizeStr:      "100",
			maxSize:      100,
			expectedNum:  1,
			expectedSize: 100,
			description:  "the maximum itself is accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewPageRequest(tt.numberStr, tt.sizeStr, 10, tt.maxSize)
			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got nil", tt.description)
				} else if !IsValidation(err) {
					t.Errorf("%s: expected ValidationError, got %T", tt.description, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.description, err)
			}
			if req.Number != tt.expectedNum || req.Size != tt.expectedSize {
				t.Errorf("%s: got page %d size %d", tt.description, req.Number, req.Size)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("projectId", "12")
	if err != nil || id != 12 {
		t.Fatalf("Expected 12, got %d (%v)", id, err)
	}

	for _, s := range []string{"", "0", "-1", "1.5", "x"} {
		if _, err := ParseID("projectId", s); !IsValidation(err) {
			t.Errorf("ParseID(%q): expected ValidationError, got %v", s, err)
		}
	}

	opt, err := ParseOptionalID("taskId", "")
	if err != nil || opt != nil {
		t.Errorf("Expected nil for empty optional id, got %v (%v)", opt, err)
	}
	opt, err = ParseOptionalID("taskId", "4")
	if err != nil || opt == nil || *opt != 4 {
		t.Errorf("Expected 4, got %v (%v)", opt, err)
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{"ann@example.com", "a.b+c@sub.example.org"}
	invalid := []string{"ann", "ann@", "@example.com", "Ann <ann@example.com>", "ann example@x.com"}

	for _, s := range valid {
		if !IsEmail(s) {
			t.Errorf("Expected %q to be a valid email", s)
		}
	}
	for _, s := range invalid {
		if IsEmail(s) {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ann", "Lee", "", testTime())
	if err != nil {
		t.Fatalf("Failed to create user without email: %v", err)
	}
	if u.FullName() != "Ann Lee" {
		t.Errorf("Expected full name %q, got %q", "Ann Lee", u.FullName())
	}

	if _, err := NewUser("Ann", "Lee", "not-an-email", testTime()); !IsValidation(err) {
		t.Errorf("Expected ValidationError for bad email, got %v", err)
	}
}
