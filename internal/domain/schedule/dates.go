package schedule

import (
	"sort"
	"time"
)

// DateLayout es MM/DD/YYYY, el formato del checklist impreso.
const DateLayout = "01/02/2006"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate interpreta una fecha MM/DD/YYYY en la zona de loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// startOfDay trunca a la medianoche local de t (sin normalizar zona).
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dateRun genera n fechas consecutivas desde today+offset.
// AddDate evita saltos raros en cambios de horario.
func dateRun(today time.Time, offset, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, FormatDate(today.AddDate(0, 0, offset+i)))
	}
	return out
}

// AllScheduleDays une las fechas de todos los schedules, sin duplicados y en
// orden cronológico. MM/DD/YYYY no ordena bien como texto, así que se parsea.
func AllScheduleDays(schedules []AnimalSchedule) []string {
	seen := map[string]time.Time{}
	for _, s := range schedules {
		for _, e := range s.Entries {
			for _, d := range e.Days {
				if _, ok := seen[d]; ok {
					continue
				}
				t, err := ParseDate(d, time.UTC)
				if err != nil {
					// fechas inválidas van al final
					t = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
				}
				seen[d] = t
			}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := seen[out[i]], seen[out[j]]
		if ti.Equal(tj) {
			return out[i] < out[j]
		}
		return ti.Before(tj)
	})
	return out
}
