package Models

import (
	"testing"
	"time"
)

func TestValidateRequiredFields(t *testing.T) {
	valid := Assignment{
		TaskTitle:    "Banners",
		AssignedTo:   "Rekha",
		Category:     "Operations & Logistics",
		AssignedDate: "2024-06-01",
		DueDate:      "2024-06-15",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Assignment)
	}{
		{"missing title", func(a *Assignment) { a.TaskTitle = "" }},
		{"missing assignee", func(a *Assignment) { a.AssignedTo = "" }},
		{"missing category", func(a *Assignment) { a.Category = "" }},
		{"missing due date", func(a *Assignment) { a.DueDate = "" }},
		{"bogus status", func(a *Assignment) { a.Status = "Paused" }},
	}
	for _, tc := range cases {
		a := valid
		tc.mutate(&a)
		if err := a.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted, StatusBlocked} {
		if !ValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidStatus("Done") {
		t.Error("unknown status accepted")
	}
}

func TestAuthorFor(t *testing.T) {
	if AuthorFor(RoleAdmin) != AuthorAdmin {
		t.Error("admin role should map to SYSTEM_ADMIN")
	}
	if AuthorFor(RoleUser) != AuthorAgent {
		t.Error("user role should map to the generic agent label")
	}
	if AuthorFor("") != AuthorAgent {
		t.Error("unknown role should map to the generic agent label")
	}
}

func TestIDGeneration(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := NewTaskID(now); got != "TASK-1717243200000" {
		t.Fatalf("unexpected task id: %s", got)
	}
	if got := NewUpdateID(now); got != "LOG-1717243200000" {
		t.Fatalf("unexpected update id: %s", got)
	}
}
