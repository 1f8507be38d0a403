package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"foster-intake/internal/domain/intakes"
)

type IntakesRepo struct {
	db *sql.DB
}

func NewIntakesRepo(db *sql.DB) *IntakesRepo {
	return &IntakesRepo{db: db}
}

func (r *IntakesRepo) Create(ctx context.Context, in intakes.Intake) error {
	animals, err := encodeAnimals(in.Animals)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO intakes (
			id, label, created_by, animals,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		in.ID,
		in.Label,
		in.CreatedBy,
		animals,
		in.CreatedAt,
		in.UpdatedAt,
	)
	return err
}

func (r *IntakesRepo) Update(ctx context.Context, in intakes.Intake) error {
	animals, err := encodeAnimals(in.Animals)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE intakes
		SET
			label = $2,
			animals = $3,
			updated_at = $4
		WHERE id = $1
	`,
		in.ID,
		in.Label,
		animals,
		in.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return intakes.ErrNotFound
	}
	return nil
}

func (r *IntakesRepo) GetByID(ctx context.Context, id string) (intakes.Intake, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return intakes.Intake{}, intakes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, label, created_by, animals,
			created_at, updated_at
		FROM intakes
		WHERE id = $1
	`, id)

	in, err := scanIntake(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return intakes.Intake{}, intakes.ErrNotFound
		}
		return intakes.Intake{}, err
	}
	return in, nil
}

func (r *IntakesRepo) List(ctx context.Context) ([]intakes.Intake, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, label, created_by, animals,
			created_at, updated_at
		FROM intakes
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intakes.Intake, 0)
	for rows.Next() {
		in, err := scanIntake(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}

	return out, rows.Err()
}

func (r *IntakesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM intakes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return intakes.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIntake(s scanner) (intakes.Intake, error) {
	var in intakes.Intake
	var animals []byte
	if err := s.Scan(
		&in.ID,
		&in.Label,
		&in.CreatedBy,
		&animals,
		&in.CreatedAt,
		&in.UpdatedAt,
	); err != nil {
		return intakes.Intake{}, err
	}

	list, err := decodeAnimals(animals)
	if err != nil {
		return intakes.Intake{}, fmt.Errorf("intake %s: %w", in.ID, err)
	}
	in.Animals = list
	return in, nil
}

// animals vive como JSONB: siempre se lee y escribe la lista completa.
func encodeAnimals(animals []intakes.Animal) ([]byte, error) {
	if animals == nil {
		animals = []intakes.Animal{}
	}
	b, err := json.Marshal(animals)
	if err != nil {
		return nil, fmt.Errorf("encode animals: %w", err)
	}
	return b, nil
}

func decodeAnimals(b []byte) ([]intakes.Animal, error) {
	out := make([]intakes.Animal, 0)
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode animals: %w", err)
	}
	return out, nil
}
