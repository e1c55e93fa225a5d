package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

// TheaterRepo manages persistence for theaters. Theaters are reference data:
// inserted by admins, read by the scheduling and booking paths.
type TheaterRepo struct {
	db *sql.DB
}

func NewTheaterRepo(db *sql.DB) *TheaterRepo {
	return &TheaterRepo{db: db}
}

// Create inserts a theater and assigns the generated ID.
func (r *TheaterRepo) Create(ctx context.Context, t *model.Theater) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO theaters (name, capacity) VALUES (?, ?)", t.Name, t.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a theater, returning ErrTheaterNotFound when absent.
func (r *TheaterRepo) GetByID(ctx context.Context, id uint64) (*model.Theater, error) {
	var t model.Theater
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, capacity FROM theaters WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTheaterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all theaters ordered by name.
func (r *TheaterRepo) List(ctx context.Context) ([]model.Theater, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, capacity FROM theaters ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Theater, 0)
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
