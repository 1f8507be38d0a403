package intakes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo    Repository
	planner *schedule.Manager
	now     func() time.Time
}

func NewService(repo Repository, planner *schedule.Manager) *Service {
	if planner == nil {
		planner = schedule.NewManager()
	}
	return &Service{
		repo:    repo,
		planner: planner,
		now:     time.Now,
	}
}

// AnimalInput llega del formulario sin validar.
type AnimalInput struct {
	Name          string
	WeightGrams   float64
	Topical       string
	PanacurDays   int
	PonazurilDays int
	Status        map[string]string
	Ringworm      string
	Notes         string
}

type CreateInput struct {
	Label   string
	Animals []AnimalInput
}

func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (Intake, error) {
	animals := make([]Animal, 0, len(in.Animals))
	for _, ai := range in.Animals {
		a, err := buildAnimal(uuid.NewString(), ai)
		if err != nil {
			return Intake{}, err
		}
		animals = append(animals, a)
	}

	now := s.now()
	it := Intake{
		ID:        uuid.NewString(),
		Label:     strings.TrimSpace(in.Label),
		CreatedBy: strings.TrimSpace(createdBy),
		Animals:   animals,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Intake{}, err
	}
	return it, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Intake, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Intake{}, ErrInvalidInput
	}
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Intake{}, err
	}
	return it, nil
}

func (s *Service) List(ctx context.Context) ([]Intake, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddAnimal(ctx context.Context, intakeID string, in AnimalInput) (Animal, error) {
	it, err := s.GetByID(ctx, intakeID)
	if err != nil {
		return Animal{}, err
	}

	a, err := buildAnimal(uuid.NewString(), in)
	if err != nil {
		return Animal{}, err
	}

	it.Animals = append(it.Animals, a)
	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateAnimal reemplaza el registro completo del animal (el formulario
// reenvía todos los campos en cada cambio).
func (s *Service) UpdateAnimal(ctx context.Context, intakeID, animalID string, in AnimalInput) (Animal, error) {
	it, err := s.GetByID(ctx, intakeID)
	if err != nil {
		return Animal{}, err
	}

	idx := it.animalIndex(animalID)
	if idx < 0 {
		return Animal{}, ErrNotFound
	}

	a, err := buildAnimal(animalID, in)
	if err != nil {
		return Animal{}, err
	}

	it.Animals[idx] = a
	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) RemoveAnimal(ctx context.Context, intakeID, animalID string) error {
	it, err := s.GetByID(ctx, intakeID)
	if err != nil {
		return err
	}

	idx := it.animalIndex(animalID)
	if idx < 0 {
		return ErrNotFound
	}

	it.Animals = append(it.Animals[:idx], it.Animals[idx+1:]...)
	it.UpdatedAt = s.now()

	return s.repo.Update(ctx, it)
}

// Doses calcula las dosis de un animal del intake.
func (s *Service) Doses(ctx context.Context, intakeID, animalID string) (dosing.Doses, error) {
	it, err := s.GetByID(ctx, intakeID)
	if err != nil {
		return dosing.Doses{}, err
	}
	idx := it.animalIndex(animalID)
	if idx < 0 {
		return dosing.Doses{}, ErrNotFound
	}
	a := it.Animals[idx]
	return dosing.Compute(a.WeightLb(), a.Topical), nil
}

// Plan recalcula schedules y totales del intake desde cero.
func (s *Service) Plan(ctx context.Context, intakeID string) (schedule.Plan, error) {
	it, err := s.GetByID(ctx, intakeID)
	if err != nil {
		return schedule.Plan{}, err
	}
	return s.planAnimals(it.Animals), nil
}

// Preview calcula el plan sin guardar nada (el formulario antes de crear
// el intake).
func (s *Service) Preview(in []AnimalInput) (schedule.Plan, error) {
	animals := make([]Animal, 0, len(in))
	for i, ai := range in {
		a, err := buildAnimal(fmt.Sprintf("animal-%d", i+1), ai)
		if err != nil {
			return schedule.Plan{}, err
		}
		animals = append(animals, a)
	}
	return s.planAnimals(animals), nil
}

func (s *Service) planAnimals(animals []Animal) schedule.Plan {
	in := make([]schedule.AnimalDoses, 0, len(animals))
	for _, a := range animals {
		in = append(in, schedule.WithDoses(a.toSchedule()))
	}
	return s.planner.Compute(in)
}

// ValidWeight es la precondición del motor de dosis.
func ValidWeight(grams float64) bool {
	return grams > 0 && !math.IsNaN(grams) && !math.IsInf(grams, 0)
}

var (
	allowedPanacurDays   = map[int]struct{}{0: {}, 1: {}, 3: {}, 5: {}}
	allowedPonazurilDays = map[int]struct{}{0: {}, 1: {}, 3: {}}
)

func buildAnimal(id string, in AnimalInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Animal{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if !ValidWeight(in.WeightGrams) {
		return Animal{}, fmt.Errorf("%w: weight_grams must be positive", ErrInvalidInput)
	}

	topical, ok := dosing.ParseTopical(in.Topical)
	if !ok {
		return Animal{}, fmt.Errorf("%w: unknown topical %q", ErrInvalidInput, in.Topical)
	}
	if _, ok := allowedPanacurDays[in.PanacurDays]; !ok {
		return Animal{}, fmt.Errorf("%w: panacur_days must be 1, 3 or 5", ErrInvalidInput)
	}
	if _, ok := allowedPonazurilDays[in.PonazurilDays]; !ok {
		return Animal{}, fmt.Errorf("%w: ponazuril_days must be 1 or 3", ErrInvalidInput)
	}

	ringworm, ok := schedule.ParseRingworm(in.Ringworm)
	if !ok {
		return Animal{}, fmt.Errorf("%w: unknown ringworm status %q", ErrInvalidInput, in.Ringworm)
	}

	status := make(map[dosing.Medication]schedule.Status, len(dosing.Medications()))
	for _, m := range dosing.Medications() {
		status[m] = schedule.StatusTodo
	}
	for k, v := range in.Status {
		med, ok := dosing.ParseMedication(k)
		if !ok {
			return Animal{}, fmt.Errorf("%w: unknown medication %q", ErrInvalidInput, k)
		}
		st, ok := schedule.ParseStatus(v)
		if !ok {
			return Animal{}, fmt.Errorf("%w: unknown status %q for %s", ErrInvalidInput, v, med)
		}
		status[med] = st
	}

	return Animal{
		ID:            id,
		Name:          name,
		WeightGrams:   in.WeightGrams,
		Topical:       topical,
		PanacurDays:   in.PanacurDays,
		PonazurilDays: in.PonazurilDays,
		Status:        status,
		Ringworm:      ringworm,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}
