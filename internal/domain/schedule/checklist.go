package schedule

import "foster-intake/internal/domain/dosing"

// ChecklistItem es una línea del checklist impreso para el foster.
type ChecklistItem struct {
	AnimalID    string            `json:"animal_id"`
	Name        string            `json:"name"`
	Medication  dosing.Medication `json:"medication"`
	Product     dosing.Product    `json:"product"`
	ProductName string            `json:"product_name"`
	Dose        string            `json:"dose"`
}

type ChecklistDay struct {
	Date  string          `json:"date"`
	Items []ChecklistItem `json:"items"`
}

// Checklist agrupa el plan por día, en el orden de AllDates.
// Dentro de cada día se respeta el orden de animales y medicamentos.
func Checklist(p Plan) []ChecklistDay {
	out := make([]ChecklistDay, 0, len(p.AllDates))
	for _, date := range p.AllDates {
		day := ChecklistDay{Date: date, Items: make([]ChecklistItem, 0)}
		for _, s := range p.Schedules {
			for _, e := range s.Entries {
				if !containsDate(e.Days, date) {
					continue
				}
				day.Items = append(day.Items, ChecklistItem{
					AnimalID:    s.AnimalID,
					Name:        s.Name,
					Medication:  e.Medication,
					Product:     e.Product,
					ProductName: e.Product.DisplayName(),
					Dose:        e.Dose.String(),
				})
			}
		}
		out = append(out, day)
	}
	return out
}

func containsDate(days []string, date string) bool {
	for _, d := range days {
		if d == date {
			return true
		}
	}
	return false
}
