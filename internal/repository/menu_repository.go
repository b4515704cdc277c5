// This file defines the MenuItem model and repository methods for the menu
// catalog.  Prices are stored in øre (minor units) to avoid floating point
// money arithmetic.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// MenuItem mirrors the 'menu_items' table.  Description is nullable; a nil
// pointer means the column is NULL.
type MenuItem struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuRepo encapsulates all database queries for menu items.
type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

const menuColumns = "id, name, description, price_cents, is_available, created_at, updated_at"

func scanMenuItem(row interface{ Scan(...any) error }, m *MenuItem) error {
	var desc sql.NullString
	if err := row.Scan(&m.ID, &m.Name, &desc, &m.PriceCents, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return err
	}
	if desc.Valid {
		d := desc.String
		m.Description = &d
	} else {
		m.Description = nil
	}
	return nil
}

// List returns all menu items ordered by name ascending.
func (r *MenuRepo) List(ctx context.Context) ([]*MenuItem, error) {
	const q = "SELECT " + menuColumns + " FROM menu_items ORDER BY name ASC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*MenuItem, 0)
	for rows.Next() {
		m := new(MenuItem)
		if err := scanMenuItem(rows, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAvailable returns only items currently marked available, ordered by
// name ascending.  This feeds the public menu endpoint.
func (r *MenuRepo) ListAvailable(ctx context.Context) ([]*MenuItem, error) {
	const q = "SELECT " + menuColumns + " FROM menu_items WHERE is_available = TRUE ORDER BY name ASC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*MenuItem, 0)
	for rows.Next() {
		m := new(MenuItem)
		if err := scanMenuItem(rows, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one menu item, returning ErrMenuItemNotFound when the id
// matches no row.
func (r *MenuRepo) GetByID(ctx context.Context, id uint64) (*MenuItem, error) {
	const q = "SELECT " + menuColumns + " FROM menu_items WHERE id = ?"
	m := new(MenuItem)
	if err := scanMenuItem(r.db.QueryRowContext(ctx, q, id), m); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a new menu item.  is_available defaults to TRUE in the
// schema.  After the insert the row is read back so the caller receives the
// store's view of the record rather than an echo of its own input.
func (r *MenuRepo) Create(ctx context.Context, m *MenuItem) error {
	const q = "INSERT INTO menu_items (name, description, price_cents) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Description, m.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const sel = "SELECT " + menuColumns + " FROM menu_items WHERE id = ?"
	return scanMenuItem(r.db.QueryRowContext(ctx, sel, m.ID), m)
}

// Update rewrites name, description and price for one item.  Availability is
// deliberately not part of this statement; it changes only through
// ToggleAvailability.  Returns ErrMenuItemNotFound when no row matched.
func (r *MenuRepo) Update(ctx context.Context, id uint64, name string, description *string, priceCents int64) error {
	const q = `UPDATE menu_items
	           SET name = ?, description = ?, price_cents = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, description, priceCents, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 for a no-op update; confirm existence so a
		// same-values save is not reported as missing.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// ToggleAvailability flips is_available for one item in a single statement.
func (r *MenuRepo) ToggleAvailability(ctx context.Context, id uint64) error {
	const q = `UPDATE menu_items
	           SET is_available = NOT is_available, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// Delete removes one item permanently.  There is no soft delete.
func (r *MenuRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
