package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		raw    string
		want   EventKind
		wantOK bool
	}{
		{"new_task", EventKindNewTask, true},
		{"new-task", EventKindNewTask, true},
		{" Overdue-Task ", EventKindOverdueTask, true},
		{"custom_message", EventKindCustomMessage, true},
		{"delete_pet", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseEventKind(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamilyEvent_MissingFields(t *testing.T) {
	due := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event FamilyEvent
		want  []string
	}{
		{"new task complete", FamilyEvent{Kind: EventKindNewTask, PetID: "p1", TaskTitle: "Banho"}, nil},
		{"new task without title", FamilyEvent{Kind: EventKindNewTask, PetID: "p1"}, []string{"taskTitle"}},
		{"overdue without due date", FamilyEvent{Kind: EventKindOverdueTask, PetID: "p1", TaskTitle: "Banho"}, []string{"dueDate"}},
		{"vaccine empty", FamilyEvent{Kind: EventKindNewVaccine}, []string{"petId", "vaccineName", "dueDate"}},
		{"vaccine complete", FamilyEvent{Kind: EventKindNewVaccine, PetID: "p1", VaccineName: "V10", DueDate: &due}, nil},
		{"new pet without species", FamilyEvent{Kind: EventKindNewPet, PetName: "Rex"}, []string{"petSpecies"}},
		{"custom without message", FamilyEvent{Kind: EventKindCustomMessage, Title: "Oi"}, []string{"message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.MissingFields())
		})
	}
}

func TestPetTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&PetTask{DueDate: &past}).IsOverdue(now))
	assert.False(t, (&PetTask{DueDate: &past, Done: true}).IsOverdue(now))
	assert.False(t, (&PetTask{DueDate: &future}).IsOverdue(now))
	assert.False(t, (&PetTask{DueDate: &now}).IsOverdue(now))
	assert.False(t, (&PetTask{}).IsOverdue(now))
}

func TestDeliveryErrorCode_IsDeadToken(t *testing.T) {
	assert.True(t, DeliveryErrorInvalidArgument.IsDeadToken())
	assert.True(t, DeliveryErrorTokenNotRegistered.IsDeadToken())
	assert.True(t, DeliveryErrorUnregistered.IsDeadToken())
	assert.False(t, DeliveryErrorUnavailable.IsDeadToken())
	assert.False(t, DeliveryErrorQuotaExceeded.IsDeadToken())
	assert.False(t, DeliveryErrorCode("").IsDeadToken())

	result := &DispatchResult{Outcomes: []DeliveryOutcome{
		{Token: "A", Success: true},
		{Token: "B", ErrorCode: DeliveryErrorUnregistered},
		{Token: "C", ErrorCode: DeliveryErrorUnavailable},
	}}
	assert.Equal(t, []string{"B"}, result.DeadTokens())
}
