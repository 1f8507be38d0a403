package intakes

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/schedule"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Intake
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Intake{}}
}

func (r *testRepo) Create(ctx context.Context, in Intake) error {
	if in.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[in.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[in.ID] = in
	return nil
}

func (r *testRepo) Update(ctx context.Context, in Intake) error {
	if _, ok := r.byID[in.ID]; !ok {
		return ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Intake, error) {
	in, ok := r.byID[id]
	if !ok {
		return Intake{}, ErrNotFound
	}
	return in, nil
}

func (r *testRepo) List(ctx context.Context) ([]Intake, error) {
	out := make([]Intake, 0, len(r.byID))
	for _, in := range r.byID {
		out = append(out, in)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	planner := schedule.NewManager(schedule.WithClock(func() time.Time { return testNow }))
	svc := NewService(repo, planner)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestService_Create_DefaultsStatusToTodo(t *testing.T) {
	svc, repo := newTestService()

	it, err := svc.Create(context.Background(), "  Ana  ", CreateInput{
		Label: "Litter A",
		Animals: []AnimalInput{
			{Name: "Milo", WeightGrams: 2000, Topical: "revolution", PanacurDays: 3},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if it.CreatedBy != "Ana" {
		t.Fatalf("expected trimmed created_by, got %q", it.CreatedBy)
	}
	if it.CreatedAt != testNow || it.UpdatedAt != testNow {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if _, ok := repo.byID[it.ID]; !ok {
		t.Fatalf("intake not stored")
	}

	a := it.Animals[0]
	for _, m := range dosing.Medications() {
		if a.Status[m] != schedule.StatusTodo {
			t.Fatalf("expected %s todo by default, got %q", m, a.Status[m])
		}
	}
	if a.Ringworm != schedule.RingwormNotScanned {
		t.Fatalf("expected ringworm not_scanned, got %q", a.Ringworm)
	}
}

func TestService_Create_RejectsInvalidAnimals(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		in   AnimalInput
	}{
		{"missing name", AnimalInput{WeightGrams: 2000}},
		{"zero weight", AnimalInput{Name: "x"}},
		{"negative weight", AnimalInput{Name: "x", WeightGrams: -5}},
		{"nan weight", AnimalInput{Name: "x", WeightGrams: math.NaN()}},
		{"unknown topical", AnimalInput{Name: "x", WeightGrams: 2000, Topical: "frontline"}},
		{"panacur days", AnimalInput{Name: "x", WeightGrams: 2000, PanacurDays: 4}},
		{"ponazuril days", AnimalInput{Name: "x", WeightGrams: 2000, PonazurilDays: 5}},
		{"unknown medication", AnimalInput{Name: "x", WeightGrams: 2000, Status: map[string]string{"ivermectin": "todo"}}},
		{"unknown status", AnimalInput{Name: "x", WeightGrams: 2000, Status: map[string]string{"flea": "bathed"}}},
		{"unknown ringworm", AnimalInput{Name: "x", WeightGrams: 2000, Ringworm: "maybe"}},
	}

	for _, tt := range tests {
		_, err := svc.Create(context.Background(), "", CreateInput{Animals: []AnimalInput{tt.in}})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestService_AnimalLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	it, err := svc.Create(ctx, "", CreateInput{Label: "Litter B"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := testNow.Add(10 * time.Minute)
	svc.now = func() time.Time { return later }

	a, err := svc.AddAnimal(ctx, it.ID, AnimalInput{Name: "Luna", WeightGrams: 900, Topical: "advantage"})
	if err != nil {
		t.Fatalf("AddAnimal error: %v", err)
	}

	updated, err := svc.UpdateAnimal(ctx, it.ID, a.ID, AnimalInput{
		Name:        "Luna",
		WeightGrams: 1100,
		Topical:     "advantage",
		Status:      map[string]string{"flea": "delay"},
	})
	if err != nil {
		t.Fatalf("UpdateAnimal error: %v", err)
	}
	if updated.ID != a.ID || updated.WeightGrams != 1100 {
		t.Fatalf("expected same animal with new weight, got %+v", updated)
	}

	got, err := svc.GetByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(got.Animals) != 1 || got.UpdatedAt != later {
		t.Fatalf("unexpected intake after update: %+v", got)
	}

	if _, err := svc.UpdateAnimal(ctx, it.ID, "missing", AnimalInput{Name: "x", WeightGrams: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown animal, got %v", err)
	}

	if err := svc.RemoveAnimal(ctx, it.ID, a.ID); err != nil {
		t.Fatalf("RemoveAnimal error: %v", err)
	}
	got, _ = svc.GetByID(ctx, it.ID)
	if len(got.Animals) != 0 {
		t.Fatalf("expected no animals after remove, got %d", len(got.Animals))
	}
}

func TestService_Plan_UsesStoredAnimals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	it, err := svc.Create(ctx, "", CreateInput{
		Animals: []AnimalInput{
			{Name: "Milo", WeightGrams: 2000, Topical: "revolution", PanacurDays: 3,
				Status: map[string]string{"drontal": "done", "flea": "delay"}},
			{Name: "Tiny", WeightGrams: 480, Topical: "revolution"},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	plan, err := svc.Plan(ctx, it.ID)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}

	if plan.GeneratedOn != "03/10/2026" {
		t.Fatalf("expected plan for 03/10/2026, got %s", plan.GeneratedOn)
	}
	if len(plan.Schedules) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(plan.Schedules))
	}

	milo := plan.Schedules[0]
	if _, ok := milo.Entry(dosing.MedicationDrontal); ok {
		t.Fatalf("drontal done must not be scheduled")
	}
	flea, ok := milo.Entry(dosing.MedicationFlea)
	if !ok || len(flea.Days) != 1 || flea.Days[0] != "03/12/2026" {
		t.Fatalf("expected delayed flea on 03/12/2026, got %+v", flea)
	}

	// Tiny: revolution y drontal fuera de rango
	if len(plan.Exclusions) != 2 {
		t.Fatalf("expected 2 exclusions, got %#v", plan.Exclusions)
	}
	if got := plan.Total(dosing.MedicationDrontal); got != 0 {
		t.Fatalf("expected drontal total 0, got %v", got)
	}

	if _, err := svc.Plan(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Doses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	it, _ := svc.Create(ctx, "", CreateInput{
		Animals: []AnimalInput{{Name: "Milo", WeightGrams: 2000, Topical: "advantage"}},
	})

	d, err := svc.Doses(ctx, it.ID, it.Animals[0].ID)
	if err != nil {
		t.Fatalf("Doses error: %v", err)
	}
	if d.Topical != dosing.TopicalAdvantage || d.AdvantageII.Amount != 0.1 {
		t.Fatalf("unexpected doses %+v", d)
	}
}

func TestService_Preview_DoesNotPersist(t *testing.T) {
	svc, repo := newTestService()

	plan, err := svc.Preview([]AnimalInput{{Name: "Milo", WeightGrams: 2000}})
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if len(plan.Schedules) != 1 || plan.Schedules[0].AnimalID != "animal-1" {
		t.Fatalf("unexpected preview %+v", plan.Schedules)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("preview must not store intakes")
	}
}
