package intakes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/schedule"
	"foster-intake/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Motor sin estado: lo usa el formulario mientras se edita.
	r.Post("/doses", computeDosesHandler())
	r.Post("/schedules", computeScheduleHandler(svc))

	r.Route("/intakes", func(ir chi.Router) {
		ir.Post("/", createIntakeHandler(svc))
		ir.Get("/", listIntakesHandler(svc))

		ir.Route("/{intakeID}", func(one chi.Router) {
			one.Get("/", getIntakeHandler(svc))
			one.Delete("/", deleteIntakeHandler(svc))

			one.Post("/animals", addAnimalHandler(svc))
			one.Put("/animals/{animalID}", updateAnimalHandler(svc))
			one.Delete("/animals/{animalID}", removeAnimalHandler(svc))
			one.Get("/animals/{animalID}/doses", animalDosesHandler(svc))

			one.Get("/plan", planHandler(svc))
			one.Get("/checklist", checklistHandler(svc))
		})
	})
}

// computeDosesRequest es el peso del formulario (gramos) y el tópico elegido.
type computeDosesRequest struct {
	WeightGrams float64 `json:"weight_grams"`
	Topical     string  `json:"topical" enums:"revolution,advantage,none"`
}

// animalRequest es un gatito tal como lo envía el formulario.
type animalRequest struct {
	Name          string            `json:"name"`
	WeightGrams   float64           `json:"weight_grams"`
	Topical       string            `json:"topical" enums:"revolution,advantage,none"`
	PanacurDays   int               `json:"panacur_days"`
	PonazurilDays int               `json:"ponazuril_days"`
	Status        map[string]string `json:"status"` // medication -> todo|delay|done|skip
	Ringworm      string            `json:"ringworm" enums:"not_scanned,positive,negative"`
	Notes         string            `json:"notes"`
}

type computeScheduleRequest struct {
	Animals []animalRequest `json:"animals"`
}

type createIntakeRequest struct {
	Label   string          `json:"label"`
	Animals []animalRequest `json:"animals"`
}

type animalResponse struct {
	ID            string                                `json:"id"`
	Name          string                                `json:"name"`
	WeightGrams   float64                               `json:"weight_grams"`
	WeightLb      float64                               `json:"weight_lb"`
	Topical       dosing.Topical                        `json:"topical"`
	PanacurDays   int                                   `json:"panacur_days"`
	PonazurilDays int                                   `json:"ponazuril_days"`
	Status        map[dosing.Medication]schedule.Status `json:"status"`
	Ringworm      schedule.Ringworm                     `json:"ringworm"`
	Notes         string                                `json:"notes"`
	Doses         dosing.Doses                          `json:"doses"`
}

type intakeResponse struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	CreatedBy string           `json:"created_by"`
	Animals   []animalResponse `json:"animals"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// computeDosesHandler godoc
// @Summary Calcular dosis por peso
// @Description Devuelve la dosis de cada producto para el peso indicado. Las dosis fuera de rango vienen como `{"out_of_range": true}`.
// @Tags engine
// @Accept json
// @Produce json
// @Param payload body computeDosesRequest true "Peso en gramos y tópico"
// @Success 200 {object} dosing.Doses
// @Failure 400 {string} string "invalid json / peso inválido"
// @Router /doses [post]
func computeDosesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req computeDosesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if !ValidWeight(req.WeightGrams) {
			http.Error(w, "weight_grams must be positive", http.StatusBadRequest)
			return
		}
		topical, ok := dosing.ParseTopical(req.Topical)
		if !ok {
			http.Error(w, "unknown topical", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, dosing.ComputeGrams(req.WeightGrams, topical))
	}
}

// computeScheduleHandler godoc
// @Summary Calcular schedule sin guardar
// @Description Calcula schedules, fechas y totales para el foster a partir de la lista de gatitos. No persiste nada.
// @Tags engine
// @Accept json
// @Produce json
// @Param payload body computeScheduleRequest true "Gatitos del formulario"
// @Success 200 {object} schedule.Plan
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Router /schedules [post]
func computeScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req computeScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		plan, err := svc.Preview(toAnimalInputs(req.Animals))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// createIntakeHandler godoc
// @Summary Crear intake
// @Description Crea un intake con sus gatitos. El header `X-Staff-Name` queda como created_by.
// @Tags intakes
// @Accept json
// @Produce json
// @Param X-Staff-Name header string false "Nombre del staff que carga el intake"
// @Param payload body createIntakeRequest true "Intake"
// @Success 201 {object} intakeResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Router /intakes [post]
func createIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createIntakeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		staff, _ := middleware.GetStaff(r.Context())

		it, err := svc.Create(r.Context(), staff.Name, CreateInput{
			Label:   req.Label,
			Animals: toAnimalInputs(req.Animals),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toIntakeResponse(it))
	}
}

func listIntakesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]intakeResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toIntakeResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.GetByID(r.Context(), chi.URLParam(r, "intakeID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toIntakeResponse(it))
	}
}

func deleteIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "intakeID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func addAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.AddAnimal(r.Context(), chi.URLParam(r, "intakeID"), toAnimalInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateAnimal(r.Context(),
			chi.URLParam(r, "intakeID"),
			chi.URLParam(r, "animalID"),
			toAnimalInput(req),
		)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func removeAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.RemoveAnimal(r.Context(), chi.URLParam(r, "intakeID"), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func animalDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Doses(r.Context(), chi.URLParam(r, "intakeID"), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// planHandler godoc
// @Summary Plan del foster
// @Description Recalcula schedules por gatito, fechas, totales a entregar y exclusiones fuera de rango.
// @Tags intakes
// @Produce json
// @Param intakeID path string true "ID del intake"
// @Success 200 {object} schedule.Plan
// @Failure 404 {string} string "intake not found"
// @Router /intakes/{intakeID}/plan [get]
func planHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.Plan(r.Context(), chi.URLParam(r, "intakeID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// checklistHandler godoc
// @Summary Checklist imprimible
// @Description Plan agrupado por día para imprimir y entregar al foster.
// @Tags intakes
// @Produce json
// @Param intakeID path string true "ID del intake"
// @Success 200 {array} schedule.ChecklistDay
// @Failure 404 {string} string "intake not found"
// @Router /intakes/{intakeID}/checklist [get]
func checklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.Plan(r.Context(), chi.URLParam(r, "intakeID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, schedule.Checklist(plan))
	}
}

func toAnimalInputs(in []animalRequest) []AnimalInput {
	out := make([]AnimalInput, 0, len(in))
	for _, a := range in {
		out = append(out, toAnimalInput(a))
	}
	return out
}

func toAnimalInput(a animalRequest) AnimalInput {
	return AnimalInput{
		Name:          a.Name,
		WeightGrams:   a.WeightGrams,
		Topical:       a.Topical,
		PanacurDays:   a.PanacurDays,
		PonazurilDays: a.PonazurilDays,
		Status:        a.Status,
		Ringworm:      a.Ringworm,
		Notes:         a.Notes,
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:            a.ID,
		Name:          a.Name,
		WeightGrams:   a.WeightGrams,
		WeightLb:      a.WeightLb(),
		Topical:       a.Topical,
		PanacurDays:   a.PanacurDays,
		PonazurilDays: a.PonazurilDays,
		Status:        a.Status,
		Ringworm:      a.Ringworm,
		Notes:         a.Notes,
		Doses:         dosing.Compute(a.WeightLb(), a.Topical),
	}
}

func toIntakeResponse(it Intake) intakeResponse {
	animals := make([]animalResponse, 0, len(it.Animals))
	for _, a := range it.Animals {
		animals = append(animals, toAnimalResponse(a))
	}
	return intakeResponse{
		ID:        it.ID,
		Label:     it.Label,
		CreatedBy: it.CreatedBy,
		Animals:   animals,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		// no filtramos detalles del storage
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
