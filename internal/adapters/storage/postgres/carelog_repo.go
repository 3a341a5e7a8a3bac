package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/carelog"
)

type CarelogRepo struct {
	db *sql.DB
}

func NewCarelogRepo(db *sql.DB) *CarelogRepo {
	return &CarelogRepo{db: db}
}

func (r *CarelogRepo) AppendEvent(ctx context.Context, e carelog.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_events (
			id, pet_id, kind, date, amount, memo, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.PetID,
		string(e.Kind),
		e.Date,
		e.Amount,
		e.Memo,
		e.RecordedAt,
	)
	return err
}

func (r *CarelogRepo) ListEvents(ctx context.Context, petID string, kind carelog.Kind) ([]carelog.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, kind, date, amount, memo, recorded_at
		FROM care_events
		WHERE pet_id = $1 AND kind = $2
		ORDER BY recorded_at ASC
	`, petID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]carelog.Event, 0)
	for rows.Next() {
		var e carelog.Event
		var k string
		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&k,
			&e.Date,
			&e.Amount,
			&e.Memo,
			&e.RecordedAt,
		); err != nil {
			return nil, err
		}
		e.Kind = carelog.Kind(k)
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *CarelogRepo) AppendWeight(ctx context.Context, w carelog.WeightRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weight_records (
			id, pet_id, date, weight_kg, memo, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		w.ID,
		w.PetID,
		w.Date,
		w.WeightKg,
		w.Memo,
		w.RecordedAt,
	)
	return err
}

func (r *CarelogRepo) ListWeights(ctx context.Context, petID string) ([]carelog.WeightRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, date, weight_kg, memo, recorded_at
		FROM weight_records
		WHERE pet_id = $1
		ORDER BY recorded_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]carelog.WeightRecord, 0)
	for rows.Next() {
		var w carelog.WeightRecord
		if err := rows.Scan(
			&w.ID,
			&w.PetID,
			&w.Date,
			&w.WeightKg,
			&w.Memo,
			&w.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, rows.Err()
}

func (r *CarelogRepo) ClearEvents(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM care_events`)
	return err
}
