package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/unsafeitems"
)

type UnsafeItemsRepo struct {
	db *sql.DB
}

func NewUnsafeItemsRepo(db *sql.DB) *UnsafeItemsRepo {
	return &UnsafeItemsRepo{db: db}
}

func (r *UnsafeItemsRepo) Create(ctx context.Context, i unsafeitems.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO unsafe_items (id, category, name, risk, why)
		VALUES ($1,$2,$3,$4,$5)
	`,
		i.ID,
		string(i.Category),
		i.Name,
		string(i.Risk),
		i.Why,
	)
	return err
}

func (r *UnsafeItemsRepo) List(ctx context.Context) ([]unsafeitems.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, name, risk, why
		FROM unsafe_items
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]unsafeitems.Item, 0)
	for rows.Next() {
		var i unsafeitems.Item
		var category, risk string
		if err := rows.Scan(&i.ID, &category, &i.Name, &risk, &i.Why); err != nil {
			return nil, err
		}
		i.Category = unsafeitems.Category(category)
		i.Risk = unsafeitems.Risk(risk)
		out = append(out, i)
	}

	return out, rows.Err()
}

func (r *UnsafeItemsRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM unsafe_items`)
	return err
}
