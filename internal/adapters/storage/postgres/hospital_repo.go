package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/hospital"
)

type HospitalRepo struct {
	db *sql.DB
}

func NewHospitalRepo(db *sql.DB) *HospitalRepo {
	return &HospitalRepo{db: db}
}

func (r *HospitalRepo) Create(ctx context.Context, a hospital.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hospital_visits (
			id, pet_id, title, at, place, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.PetID,
		a.Title,
		a.At,
		a.Place,
		a.Notes,
		a.CreatedAt,
	)
	return err
}

func (r *HospitalRepo) GetByID(ctx context.Context, id string) (hospital.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, title, at, place, notes, created_at
		FROM hospital_visits
		WHERE id = $1
	`, id)

	var a hospital.Appointment
	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.Title,
		&a.At,
		&a.Place,
		&a.Notes,
		&a.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return hospital.Appointment{}, ErrNotFound
		}
		return hospital.Appointment{}, err
	}
	return a, nil
}

func (r *HospitalRepo) ListByPet(ctx context.Context, petID string) ([]hospital.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, title, at, place, notes, created_at
		FROM hospital_visits
		WHERE pet_id = $1
		ORDER BY at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospital.Appointment, 0)
	for rows.Next() {
		var a hospital.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.PetID,
			&a.Title,
			&a.At,
			&a.Place,
			&a.Notes,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *HospitalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hospital_visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
