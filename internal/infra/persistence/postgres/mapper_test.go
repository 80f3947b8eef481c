package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"petkeeper/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestToUserProfileDomain(t *testing.T) {
	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	profile := toUserProfileDomain(&model.UserModel{
		ID:          "u1",
		FamilyCode:  "FAM1",
		DisplayName: "Ana",
		FCMTokens:   pq.StringArray{"A", "B"},
		UpdatedAt:   updated,
	})

	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "FAM1", profile.FamilyCode)
	assert.Equal(t, []string{"A", "B"}, profile.FCMTokens)
	assert.Equal(t, updated, profile.UpdatedAt)
	assert.Nil(t, toUserProfileDomain(nil))
}

func TestFromTokenList_NeverNil(t *testing.T) {
	empty := fromTokenList(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	value, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", value)

	assert.Equal(t, pq.StringArray{"A"}, fromTokenList([]string{"A"}))
}

func TestToPetTaskDomain(t *testing.T) {
	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	task := toPetTaskDomain(&model.PetTaskModel{
		ID:         "t1",
		FamilyCode: "FAM1",
		PetID:      "p1",
		Title:      "Vacina",
		DueDate:    &due,
	})

	assert.Equal(t, "Vacina", task.Title)
	assert.False(t, task.Done)
	assert.Equal(t, &due, task.DueDate)
	assert.Nil(t, toPetTaskDomain(nil))
}

func TestToPetDomain(t *testing.T) {
	pet := toPetDomain(&model.PetModel{ID: "p1", FamilyCode: "FAM1", Name: "Rex", Species: "Cachorro"})

	assert.Equal(t, "Rex", pet.Name)
	assert.Nil(t, toPetDomain(nil))
}

func TestPoolWaitAttrs(t *testing.T) {
	_, _, ok := poolWaitAttrs(sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.False(t, ok)

	attrs, level, ok := poolWaitAttrs(
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 201 * time.Millisecond},
	)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())

	_, level, _ = poolWaitAttrs(
		sql.DBStats{WaitCount: 1},
		sql.DBStats{WaitCount: 2, WaitDuration: time.Millisecond},
	)
	assert.Equal(t, slog.LevelDebug, level)
}
