package schedule

import (
	"sort"
	"time"

	"foster-intake/internal/domain/dosing"
)

// Manager convierte animales con dosis en schedules y totales para el foster.
// No guarda estado entre llamadas: todo se recalcula desde cero.
type Manager struct {
	now func() time.Time
	loc *time.Location
}

type Option func(*Manager)

// WithClock inyecta el reloj (tests deterministas).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLocation fija la zona usada para decidir "hoy".
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		m.loc = loc
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) today() time.Time {
	t := m.now()
	if m.loc != nil {
		t = t.In(m.loc)
	}
	return startOfDay(t)
}

// Compute arma el plan completo para la lista de animales.
func (m *Manager) Compute(animals []AnimalDoses) Plan {
	today := m.today()

	plan := Plan{
		GeneratedOn: FormatDate(today),
		Schedules:   make([]AnimalSchedule, 0, len(animals)),
		Totals:      make([]Total, 0),
		Exclusions:  make([]Exclusion, 0),
	}

	totals := map[totalKey]*Total{}

	for _, ad := range animals {
		a := ad.Animal
		sched := AnimalSchedule{
			AnimalID:   a.ID,
			Name:       a.Name,
			WeightLb:   a.WeightLb(),
			Ringworm:   a.Ringworm,
			Entries:    make([]Entry, 0),
			OutOfRange: make([]dosing.Medication, 0),
		}

		for _, med := range dosing.Medications() {
			mp, outcome := planMedication(today, a, ad.Doses, med)
			switch outcome {
			case outcomeExcluded:
				continue
			case outcomeOutOfRange:
				sched.OutOfRange = append(sched.OutOfRange, med)
				plan.Exclusions = append(plan.Exclusions, Exclusion{
					AnimalID:   a.ID,
					Name:       a.Name,
					Medication: med,
					Product:    mp.product,
					WeightLb:   sched.WeightLb,
					Reason:     "no safe dose for weight",
				})
				continue
			}

			key := totalKey{med: med, product: mp.product}
			t, ok := totals[key]
			if !ok {
				t = &Total{Medication: med, Product: mp.product, Unit: mp.dose.Unit}
				totals[key] = t
			}
			t.Amount += mp.dose.Amount * float64(mp.remaining)
			t.Doses += mp.remaining

			if mp.remaining > 0 {
				sched.Entries = append(sched.Entries, Entry{
					Medication: med,
					Product:    mp.product,
					Dose:       mp.dose,
					Days:       dateRun(today, mp.offset, mp.remaining),
				})
			}
		}

		plan.Schedules = append(plan.Schedules, sched)
	}

	for _, t := range totals {
		plan.Totals = append(plan.Totals, *t)
	}
	sort.Slice(plan.Totals, func(i, j int) bool {
		a, b := plan.Totals[i], plan.Totals[j]
		if a.Medication != b.Medication {
			return medicationIndex(a.Medication) < medicationIndex(b.Medication)
		}
		return a.Product < b.Product
	})

	plan.AllDates = AllScheduleDays(plan.Schedules)
	return plan
}

// ComputeAnimals calcula dosis y plan en un paso.
func (m *Manager) ComputeAnimals(animals []Animal) Plan {
	in := make([]AnimalDoses, 0, len(animals))
	for _, a := range animals {
		in = append(in, WithDoses(a))
	}
	return m.Compute(in)
}

type totalKey struct {
	med     dosing.Medication
	product dosing.Product
}

type outcome int

const (
	outcomeOwed outcome = iota
	outcomeExcluded
	outcomeOutOfRange
)

type medPlan struct {
	product   dosing.Product
	dose      dosing.Dose
	remaining int
	offset    int
}

// planMedication decide cuántas dosis se deben y desde qué día.
func planMedication(today time.Time, a Animal, doses dosing.Doses, med dosing.Medication) (medPlan, outcome) {
	status := a.StatusOf(med)
	if status == StatusSkip {
		return medPlan{}, outcomeExcluded
	}

	dose, product, ok := doses.For(med)
	if !ok {
		// flea sin tópico seleccionado
		return medPlan{}, outcomeExcluded
	}
	if dose.IsOutOfRange() {
		return medPlan{product: product}, outcomeOutOfRange
	}

	mp := medPlan{product: product, dose: dose}

	if med.MultiDay() {
		days := a.RegimenDays(med)
		if status == StatusDone {
			// primera dosis dada en el intake: el resto desde mañana
			mp.remaining = days - 1
			mp.offset = 1
		} else {
			mp.remaining = days
		}
		if mp.remaining < 0 {
			mp.remaining = 0
		}
		return mp, outcomeOwed
	}

	if status == StatusDone {
		return mp, outcomeOwed
	}
	mp.remaining = 1
	if med == dosing.MedicationFlea && status == StatusDelay {
		mp.offset = fleaDelayDays
	}
	return mp, outcomeOwed
}

func medicationIndex(m dosing.Medication) int {
	for i, x := range dosing.Medications() {
		if x == m {
			return i
		}
	}
	return len(dosing.Medications())
}
