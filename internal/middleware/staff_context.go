package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const staffKey ctxKey = "staff"

// StaffHeader identifica a quien carga el intake. No es autenticación:
// el formulario corre en la red interna del refugio.
const StaffHeader = "X-Staff-Name"

type Staff struct {
	Name string
}

// StaffContext:
// - Si viene X-Staff-Name => lo guarda en el contexto.
// - Si no viene, el request sigue igual; los handlers usan "" como created_by.
func StaffContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(StaffHeader))
		if name == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), staffKey, Staff{Name: name})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetStaff(ctx context.Context) (Staff, bool) {
	v := ctx.Value(staffKey)
	if v == nil {
		return Staff{}, false
	}
	s, ok := v.(Staff)
	return s, ok
}
