// Package entity contains the core business objects of the project.
package entity

// FamilyStats summarises the pets and tasks of one family.
// Invariants: CompletedTasks + PendingTasks == TotalTasks and OverdueTasks <= PendingTasks.
type FamilyStats struct {
	TotalPets      int `json:"totalPets"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	OverdueTasks   int `json:"overdueTasks"`
}
