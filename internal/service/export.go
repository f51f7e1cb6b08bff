package service

import (
	"context"
	"fmt"

	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/listing"
)

// Archiver packs written files into a downloadable archive.
// A nil result with a nil error means the archiver could not build the archive.
type Archiver interface {
	CreateArchive(zipFileName, directoryPath string, filePaths []string) (*domain.ZipResult, error)
}

// ExportListing writes the three tenant listings of address into outputDir
// and bundles them into "{Street} {Number}.zip" through archiver.
//
// Missing collaborators, a missing address, an empty street or number and
// an empty outputDir all return the neutral result without calling anything.
// An address whose flats were never loaded (nil Flats) fails with
// domain.ErrExportFailure before any file is written. Otherwise the archiver's
// result is returned as is, nil included. The documents stay in outputDir.
func ExportListing(
	ctx context.Context,
	archiver Archiver,
	lookup listing.TenantLookup,
	address *domain.Address,
	outputDir string,
) (*domain.ZipResult, error) {
	if archiver == nil ||
		lookup == nil ||
		address == nil ||
		address.Street == "" ||
		address.Number == "" ||
		outputDir == "" {
		return domain.NewNeutralZipResult(), nil
	}

	if address.Flats == nil {
		return nil, fmt.Errorf("service.ExportListing: %q has no flat list: %w", address.Key(), domain.ErrExportFailure)
	}

	paths := make([]string, 0, len(listing.Variants))
	for _, v := range listing.Variants {
		path, err := listing.WriteDocument(ctx, lookup, address, v, outputDir)
		if err != nil {
			return nil, fmt.Errorf("service.ExportListing: %w", err)
		}
		paths = append(paths, path)
	}

	return archiver.CreateArchive(address.Key()+".zip", outputDir, paths)
}
