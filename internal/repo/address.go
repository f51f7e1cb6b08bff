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

// AddressRepo defines the persistence operations for addresses and their flats.
type AddressRepo interface {
	// Create inserts an address with its flats and tenant assignments and
	// returns the stored snapshot. Holes in Flats are kept as gaps in the
	// flat positions. Pass a pgx.Tx to make the insert atomic.
	Create(ctx context.Context, a domain.Address) (domain.Address, error)

	// GetByID returns the address with its flats in register order and the
	// tenant assignments of every flat. A gap in the flat positions comes back
	// as a nil entry in Flats. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error)

	// List returns all addresses ordered by street and number, without flats.
	List(ctx context.Context) ([]domain.Address, error)
}

type pgAddressRepo struct {
	db db
}

// NewAddressRepo constructs an AddressRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAddressRepo(db db) AddressRepo {
	return &pgAddressRepo{db: db}
}

const addressColumns = `id, street, number, zip_code, town, country, created_at, updated_at`

func (r *pgAddressRepo) Create(ctx context.Context, a domain.Address) (domain.Address, error) {
	const q = `
		INSERT INTO addresses (street, number, zip_code, town, country)
		VALUES (@street, @number, @zip_code, @town, @country)
		RETURNING ` + addressColumns

	args := pgx.NamedArgs{
		"street":   a.Street,
		"number":   a.Number,
		"zip_code": a.ZipCode,
		"town":     a.Town,
		"country":  a.Country,
	}
	created, err := scanAddress(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.Create: %w", err)
	}

	for pos, f := range a.Flats {
		if f == nil {
			continue
		}
		if err := r.insertFlat(ctx, created.ID, pos, f); err != nil {
			return domain.Address{}, fmt.Errorf("repo.AddressRepo.Create: flat %d: %w", pos, err)
		}
	}

	return r.GetByID(ctx, created.ID)
}

func (r *pgAddressRepo) insertFlat(ctx context.Context, addressID uuid.UUID, pos int, f *domain.Flat) error {
	const q = `
		INSERT INTO flats (address_id, floor, number, entry_door_code, position)
		VALUES (@address_id, @floor, @number, @entry_door_code, @position)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"address_id":      addressID,
		"floor":           f.Floor,
		"number":          f.Number,
		"entry_door_code": f.EntryDoorCode,
		"position":        pos,
	}).Scan(&id)
	if err != nil {
		return err
	}

	const qp = `
		INSERT INTO parameters (flat_id, user_id, show_email, show_phone, position)
		VALUES (@flat_id, @user_id, @show_email, @show_phone, @position)`

	for ppos, p := range f.Parameters {
		if p == nil {
			continue
		}
		var userID *uuid.UUID
		if uid, err := uuid.Parse(p.UserID); err == nil {
			userID = &uid
		}
		_, err := r.db.Exec(ctx, qp, pgx.NamedArgs{
			"flat_id":    uuid.UUID(id.Bytes),
			"user_id":    userID, // nil becomes NULL
			"show_email": p.ShowEmail,
			"show_phone": p.ShowPhone,
			"position":   ppos,
		})
		if err != nil {
			return fmt.Errorf("parameter %d: %w", ppos, err)
		}
	}
	return nil
}

func (r *pgAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE id = @id`

	a, err := scanAddress(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.GetByID: %w", err)
	}

	byID, err := r.loadFlats(ctx, &a)
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.GetByID: flats: %w", err)
	}
	if err := r.loadParameters(ctx, a.ID, byID); err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.GetByID: parameters: %w", err)
	}
	return a, nil
}

// loadFlats fills a.Flats, indexed by position, and returns the flats by ID.
func (r *pgAddressRepo) loadFlats(ctx context.Context, a *domain.Address) (map[uuid.UUID]*domain.Flat, error) {
	const q = `
		SELECT id, floor, number, entry_door_code, position
		FROM flats
		WHERE address_id = @address_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"address_id": a.ID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	a.Flats = []*domain.Flat{}
	byID := make(map[uuid.UUID]*domain.Flat)
	for rows.Next() {
		var (
			f   domain.Flat
			id  pgtype.UUID
			pos int
		)
		if err := rows.Scan(&id, &f.Floor, &f.Number, &f.EntryDoorCode, &pos); err != nil {
			return nil, err
		}
		f.ID = uuid.UUID(id.Bytes)
		for len(a.Flats) < pos {
			a.Flats = append(a.Flats, nil)
		}
		a.Flats = append(a.Flats, &f)
		byID[f.ID] = &f
	}
	return byID, rows.Err()
}

func (r *pgAddressRepo) loadParameters(ctx context.Context, addressID uuid.UUID, flats map[uuid.UUID]*domain.Flat) error {
	const q = `
		SELECT p.id, p.flat_id, p.user_id, p.show_email, p.show_phone
		FROM parameters p
		JOIN flats f ON f.id = p.flat_id
		WHERE f.address_id = @address_id
		ORDER BY p.flat_id, p.position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"address_id": addressID})
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p          domain.Parameter
			id, flatID pgtype.UUID
			userID     pgtype.UUID
		)
		if err := rows.Scan(&id, &flatID, &userID, &p.ShowEmail, &p.ShowPhone); err != nil {
			return err
		}
		p.ID = uuid.UUID(id.Bytes)
		if userID.Valid {
			p.UserID = uuid.UUID(userID.Bytes).String()
		}
		if f, ok := flats[uuid.UUID(flatID.Bytes)]; ok {
			f.Parameters = append(f.Parameters, &p)
		}
	}
	return rows.Err()
}

func (r *pgAddressRepo) List(ctx context.Context) ([]domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses ORDER BY street, number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.AddressRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AddressRepo.List: scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AddressRepo.List: rows: %w", err)
	}
	return out, nil
}

func scanAddress(s scanner) (domain.Address, error) {
	var (
		a  domain.Address
		id pgtype.UUID
	)
	err := s.Scan(&id, &a.Street, &a.Number, &a.ZipCode, &a.Town, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Address{}, domain.ErrNotFound
		}
		return domain.Address{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	return a, nil
}
