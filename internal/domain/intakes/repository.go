package intakes

import "context"

// Repository devuelve ErrNotFound cuando el intake no existe.
type Repository interface {
	Create(ctx context.Context, in Intake) error
	Update(ctx context.Context, in Intake) error
	GetByID(ctx context.Context, id string) (Intake, error)
	List(ctx context.Context) ([]Intake, error)
	Delete(ctx context.Context, id string) error
}
