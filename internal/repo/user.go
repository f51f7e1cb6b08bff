package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

// UserRepo defines the persistence operations for tenant accounts.
type UserRepo interface {
	// Create inserts a user and returns the persisted record.
	Create(ctx context.Context, u domain.Tenant) (domain.Tenant, error)

	// GetByID returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tenant, error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) Create(ctx context.Context, u domain.Tenant) (domain.Tenant, error) {
	const q = `
		INSERT INTO users (first_name, last_name, email)
		VALUES (@first_name, @last_name, @email)
		RETURNING id, first_name, last_name, email, created_at`

	args := pgx.NamedArgs{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}

	got, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Tenant{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return got, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tenant, error) {
	const q = `
		SELECT id, first_name, last_name, email, created_at
		FROM users
		WHERE id = @id`

	got, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Tenant{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return got, nil
}

func scanUser(s scanner) (domain.Tenant, error) {
	var (
		u  domain.Tenant
		id pgtype.UUID
	)
	if err := s.Scan(&id, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tenant{}, domain.ErrNotFound
		}
		return domain.Tenant{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}

// TenantLookup resolves tenant identifiers against the users table for the
// listing export. Identifiers that are not UUIDs are treated as unknown.
type TenantLookup struct {
	users UserRepo
}

// NewTenantLookup wraps users as a listing.TenantLookup.
func NewTenantLookup(users UserRepo) *TenantLookup {
	return &TenantLookup{users: users}
}

// Find returns domain.ErrNotFound for unknown or malformed identifiers.
func (l *TenantLookup) Find(ctx context.Context, id string) (domain.Tenant, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.Tenant{}, domain.ErrNotFound
	}
	return l.users.GetByID(ctx, uid)
}
