// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PetTask is a care task scheduled for a pet.
type PetTask struct {
	ID         string     `json:"id"`
	FamilyCode string     `json:"family_code"`
	PetID      string     `json:"pet_id"`
	Title      string     `json:"title"`
	Done       bool       `json:"done"`
	DueDate    *time.Time `json:"due_date,omitempty"` // Nil when the task has no due date.
}

// IsOverdue reports whether the task is still open and its due date is strictly before now.
// Tasks without a due date are never overdue.
func (t *PetTask) IsOverdue(now time.Time) bool {
	if t.Done || t.DueDate == nil {
		return false
	}

	return t.DueDate.Before(now)
}
