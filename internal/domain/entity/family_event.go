// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// EventKind tags the family event variants that trigger a fan-out.
type EventKind string

const (
	EventKindNewTask       EventKind = "new_task"
	EventKindOverdueTask   EventKind = "overdue_task"
	EventKindNewVaccine    EventKind = "new_vaccine"
	EventKindNewPet        EventKind = "new_pet"
	EventKindTaskCompleted EventKind = "task_completed"
	EventKindCustomMessage EventKind = "custom_message"
)

// EventKinds lists every supported kind in a stable order.
var EventKinds = []EventKind{
	EventKindNewTask,
	EventKindOverdueTask,
	EventKindNewVaccine,
	EventKindNewPet,
	EventKindTaskCompleted,
	EventKindCustomMessage,
}

// ParseEventKind accepts both the snake_case kind and its kebab-case route slug.
func ParseEventKind(raw string) (EventKind, bool) {
	kind := EventKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	for _, known := range EventKinds {
		if kind == known {
			return kind, true
		}
	}

	return "", false
}

// Slug returns the kebab-case form used in routes.
func (k EventKind) Slug() string {
	return strings.ReplaceAll(string(k), "_", "-")
}

// NeedsPet reports whether the kind refers to an existing pet whose name goes in the title.
func (k EventKind) NeedsPet() bool {
	switch k {
	case EventKindNewTask, EventKindOverdueTask, EventKindNewVaccine, EventKindTaskCompleted:
		return true
	default:
		return false
	}
}

// FamilyEvent is a family activity to be announced to the other members.
// Which fields are meaningful depends on Kind; see MissingFields.
type FamilyEvent struct {
	Kind        EventKind  `json:"kind"`
	PetID       string     `json:"pet_id,omitempty"`
	TaskTitle   string     `json:"task_title,omitempty"`
	VaccineName string     `json:"vaccine_name,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PetName     string     `json:"pet_name,omitempty"`    // new_pet only; pet-scoped kinds look the name up.
	PetSpecies  string     `json:"pet_species,omitempty"` // new_pet only.
	Title       string     `json:"title,omitempty"`       // custom_message only; optional.
	Message     string     `json:"message,omitempty"`     // Required for custom_message, optional for new_task.
}

// MissingFields returns the names of the required fields that are empty for the event's kind.
func (e *FamilyEvent) MissingFields() []string {
	var missing []string
	require := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}

	switch e.Kind {
	case EventKindNewTask, EventKindTaskCompleted:
		require("petId", e.PetID != "")
		require("taskTitle", e.TaskTitle != "")
	case EventKindOverdueTask:
		require("petId", e.PetID != "")
		require("taskTitle", e.TaskTitle != "")
		require("dueDate", e.DueDate != nil)
	case EventKindNewVaccine:
		require("petId", e.PetID != "")
		require("vaccineName", e.VaccineName != "")
		require("dueDate", e.DueDate != nil)
	case EventKindNewPet:
		require("petName", e.PetName != "")
		require("petSpecies", e.PetSpecies != "")
	case EventKindCustomMessage:
		require("message", e.Message != "")
	}

	return missing
}
