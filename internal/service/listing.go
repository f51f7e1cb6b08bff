// Package service contains the business logic for the Dios property register.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/listing"
	"github.com/Liam44/Dios-sub002/internal/repo"
	"github.com/Liam44/Dios-sub002/internal/sheet"
)

// ListingService serves addresses and their tenant listings to the HTTP layer.
type ListingService struct {
	addresses repo.AddressRepo
	lookup    listing.TenantLookup
	archiver  Archiver
	exportDir string
	log       *slog.Logger
}

// NewListingService constructs a ListingService. Exports run in a fresh
// directory under exportDir that is removed once the archive is in memory.
func NewListingService(
	addresses repo.AddressRepo,
	lookup listing.TenantLookup,
	archiver Archiver,
	exportDir string,
	log *slog.Logger,
) *ListingService {
	if log == nil {
		log = slog.Default()
	}
	return &ListingService{
		addresses: addresses,
		lookup:    lookup,
		archiver:  archiver,
		exportDir: exportDir,
		log:       log,
	}
}

// List returns all addresses, without flats.
func (s *ListingService) List(ctx context.Context) ([]domain.Address, error) {
	addrs, err := s.addresses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.List: %w", err)
	}
	if addrs == nil {
		addrs = []domain.Address{}
	}
	return addrs, nil
}

// Get returns one address with its flats.
func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	a, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return domain.Address{}, fmt.Errorf("service.ListingService.Get: %w", err)
	}
	return a, nil
}

// Export builds the listing archive of an address. The result may be the
// neutral ZipResult, or nil when the archiver gave up; callers should fall
// back to a non-download response in both cases.
func (s *ListingService) Export(ctx context.Context, id uuid.UUID) (*domain.ZipResult, error) {
	a, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.Export: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("service.ListingService.Export: %w", err)
	}
	// Each export gets its own directory: document names only depend on the
	// address, so two exports of one building would otherwise share files.
	dir, err := os.MkdirTemp(s.exportDir, "listing-*")
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.Export: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			s.log.WarnContext(ctx, "listing export cleanup failed", "dir", dir, "error", err)
		}
	}()

	result, err := ExportListing(ctx, s.archiver, s.lookup, &a, dir)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.Export: %w", err)
	}

	switch {
	case result == nil:
		s.log.WarnContext(ctx, "listing archive not created", "address_id", id)
	case result.IsNeutral():
		s.log.InfoContext(ctx, "nothing to export", "address_id", id)
	default:
		s.log.InfoContext(ctx, "listing exported",
			"address_id", id,
			"file", result.FileName,
			"bytes", result.Size(),
		)
	}
	return result, nil
}

// Spreadsheet renders the main listing of an address as an .xlsx workbook
// and returns it with its filename "{Street} {Number}.xlsx".
func (s *ListingService) Spreadsheet(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	a, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("service.ListingService.Spreadsheet: %w", err)
	}

	t, err := listing.Build(ctx, s.lookup, &a, listing.Main)
	if err != nil {
		return "", nil, fmt.Errorf("service.ListingService.Spreadsheet: %w", err)
	}

	data, err := sheet.Render(sheet.MainHeader, t.DataCells())
	if err != nil {
		return "", nil, fmt.Errorf("service.ListingService.Spreadsheet: %w", err)
	}
	return a.Key() + ".xlsx", data, nil
}
