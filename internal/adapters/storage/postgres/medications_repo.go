package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petmate/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, s medications.Schedule) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_schedules (
			id, pet_id, drug, dose, unit,
			times, start_date, end_date, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		s.ID,
		s.PetID,
		s.Drug,
		s.Dose,
		s.Unit,
		joinTimes(s.Times),
		s.Start,
		toNullString(s.End),
		s.Notes,
		s.CreatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, drug, dose, unit,
		       times, start_date, end_date, notes, created_at
		FROM medication_schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return medications.Schedule{}, ErrNotFound
		}
		return medications.Schedule{}, err
	}
	return s, nil
}

func (r *MedicationsRepo) ListByPet(ctx context.Context, petID string) ([]medications.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, drug, dose, unit,
		       times, start_date, end_date, notes, created_at
		FROM medication_schedules
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medication_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSchedule(scan func(dest ...any) error) (medications.Schedule, error) {
	var s medications.Schedule
	var times string
	var end sql.NullString
	if err := scan(
		&s.ID,
		&s.PetID,
		&s.Drug,
		&s.Dose,
		&s.Unit,
		&times,
		&s.Start,
		&end,
		&s.Notes,
		&s.CreatedAt,
	); err != nil {
		return medications.Schedule{}, err
	}

	s.Times = splitTimes(times)
	if end.Valid {
		e := end.String
		s.End = &e
	}

	return s, nil
}

// Los horarios van como TEXT "08:00,20:00": HH:MM nunca contiene coma
// y así evitamos el mapeo de arrays de pgx sobre database/sql.
func joinTimes(times []string) string {
	return strings.Join(times, ",")
}

func splitTimes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
