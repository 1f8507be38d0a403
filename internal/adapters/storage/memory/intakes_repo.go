package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/intakes"
	"foster-intake/internal/domain/schedule"
)

type intakeRepo struct {
	mu   sync.RWMutex
	byID map[string]intakes.Intake
}

func NewIntakeRepo() intakes.Repository {
	return &intakeRepo{
		byID: make(map[string]intakes.Intake),
	}
}

func (r *intakeRepo) Create(ctx context.Context, in intakes.Intake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(in.ID) == "" {
		return errors.New("intake id required")
	}
	if _, exists := r.byID[in.ID]; exists {
		return errors.New("intake already exists")
	}
	r.byID[in.ID] = clone(in)
	return nil
}

func (r *intakeRepo) Update(ctx context.Context, in intakes.Intake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(in.ID) == "" {
		return errors.New("intake id required")
	}
	if _, exists := r.byID[in.ID]; !exists {
		return intakes.ErrNotFound
	}
	r.byID[in.ID] = clone(in)
	return nil
}

func (r *intakeRepo) GetByID(ctx context.Context, id string) (intakes.Intake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	in, ok := r.byID[id]
	if !ok {
		return intakes.Intake{}, intakes.ErrNotFound
	}
	return clone(in), nil
}

func (r *intakeRepo) List(ctx context.Context) ([]intakes.Intake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]intakes.Intake, 0, len(r.byID))
	for _, in := range r.byID {
		out = append(out, clone(in))
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *intakeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return intakes.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// clone evita que el service mute lo guardado a través de slices/maps
// compartidos.
func clone(in intakes.Intake) intakes.Intake {
	out := in
	out.Animals = make([]intakes.Animal, len(in.Animals))
	for i, a := range in.Animals {
		status := make(map[dosing.Medication]schedule.Status, len(a.Status))
		for k, v := range a.Status {
			status[k] = v
		}
		a.Status = status
		out.Animals[i] = a
	}
	return out
}
