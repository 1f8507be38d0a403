package memory

import (
	"context"
	"testing"
	"time"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/intakes"
	"foster-intake/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewIntakeRepo()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	first := intakes.Intake{ID: "b", Label: "litter B", CreatedAt: base}
	second := intakes.Intake{ID: "a", Label: "litter A", CreatedAt: base.Add(time.Hour)}

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	assert.Error(t, repo.Create(ctx, first), "duplicate id")
	assert.Error(t, repo.Create(ctx, intakes.Intake{}), "blank id")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)

	first.Label = "renamed"
	require.NoError(t, repo.Update(ctx, first))
	got, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Label)

	require.NoError(t, repo.Delete(ctx, "b"))
	_, err = repo.GetByID(ctx, "b")
	assert.ErrorIs(t, err, intakes.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "b"), intakes.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, first), intakes.ErrNotFound)
}

func TestIntakeRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewIntakeRepo()

	in := intakes.Intake{
		ID: "it-1",
		Animals: []intakes.Animal{
			{ID: "k1", Name: "Mochi", Status: map[dosing.Medication]schedule.Status{dosing.MedicationDrontal: schedule.StatusTodo}},
			{ID: "k2", Name: "Tofu"},
		},
	}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByID(ctx, "it-1")
	require.NoError(t, err)
	got.Animals[0].Status[dosing.MedicationDrontal] = schedule.StatusDone
	got.Animals = append(got.Animals[:0], got.Animals[1:]...)

	again, err := repo.GetByID(ctx, "it-1")
	require.NoError(t, err)
	require.Len(t, again.Animals, 2)
	assert.Equal(t, "Mochi", again.Animals[0].Name)
	assert.Equal(t, schedule.StatusTodo, again.Animals[0].Status[dosing.MedicationDrontal])
}
