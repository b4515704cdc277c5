package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tangentorv/restaurant-booking/internal/utils"
)

// Staff roles.  Only RoleAdmin unlocks the admin console; RoleStaff accounts
// can authenticate but are rejected by the admin gate.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Staff mirrors the 'staff' table.  It replaces the original deployment's
// role-mapping table: an account row with role ADMIN is what grants access
// to the management endpoints.
type Staff struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type StaffRepo struct{ DB *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{DB: db} }

// Create inserts a staff account and returns its ID.
func (r *StaffRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO staff (email, password_hash, role) VALUES (?,?,?)",
		email, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a staff account by normalized email.
func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var s Staff
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM staff WHERE email=? LIMIT 1",
		email).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.Role, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetByID fetches a staff account by id.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (Staff, error) {
	var s Staff
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM staff WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.Role, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// IsAdmin reports whether the account exists, is active and carries the
// ADMIN role.  Any error (including sql.ErrNoRows) is returned so callers
// can fail closed: a lookup failure must never grant access.
func (r *StaffRepo) IsAdmin(ctx context.Context, id uint64) (bool, error) {
	var role string
	var active bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT role,is_active FROM staff WHERE id=? LIMIT 1",
		id).Scan(&role, &active)
	if err != nil {
		return false, err
	}
	return active && role == RoleAdmin, nil
}
