package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Liam44/Dios-sub002/internal/archive"
	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/repo"
	"github.com/Liam44/Dios-sub002/internal/service"
	"github.com/Liam44/Dios-sub002/internal/sheet"
)

// mockAddressRepo is a hand-written test double for repo.AddressRepo.
// Each field is a function so individual tests can inject exactly the
// behaviour they need without a mocking framework.
type mockAddressRepo struct {
	create  func(ctx context.Context, a domain.Address) (domain.Address, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Address, error)
	list    func(ctx context.Context) ([]domain.Address, error)
}

func (m *mockAddressRepo) Create(ctx context.Context, a domain.Address) (domain.Address, error) {
	return m.create(ctx, a)
}

func (m *mockAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	return m.getByID(ctx, id)
}

func (m *mockAddressRepo) List(ctx context.Context) ([]domain.Address, error) {
	return m.list(ctx)
}

// compile-time check: mockAddressRepo must satisfy repo.AddressRepo.
var _ repo.AddressRepo = (*mockAddressRepo)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func repoReturning(a domain.Address) *mockAddressRepo {
	return &mockAddressRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Address, error) {
			a.ID = id
			return a, nil
		},
	}
}

// ---- List / Get -------------------------------------------------------------

func TestListingService_List(t *testing.T) {
	want := []domain.Address{{Street: "SomeStreet", Number: "1"}}
	addrs := &mockAddressRepo{
		list: func(context.Context) ([]domain.Address, error) { return want, nil },
	}
	svc := service.NewListingService(addrs, newMockLookup(nil), &mockArchiver{}, t.TempDir(), discardLogger())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListingService_List_NeverNil(t *testing.T) {
	addrs := &mockAddressRepo{
		list: func(context.Context) ([]domain.Address, error) { return nil, nil },
	}
	svc := service.NewListingService(addrs, newMockLookup(nil), &mockArchiver{}, t.TempDir(), discardLogger())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListingService_Get_NotFound(t *testing.T) {
	addrs := &mockAddressRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Address, error) {
			return domain.Address{}, domain.ErrNotFound
		},
	}
	svc := service.NewListingService(addrs, newMockLookup(nil), &mockArchiver{}, t.TempDir(), discardLogger())

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Export -----------------------------------------------------------------

func TestListingService_Export(t *testing.T) {
	exportDir := t.TempDir()
	svc := service.NewListingService(repoReturning(*validAddress()), newMockLookup(tenants()),
		archive.NewFileArchiver(), exportDir, discardLogger())

	result, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "SomeStreet 1.zip", result.FileName)
	assert.Positive(t, result.Content.Size())

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "working directory is removed")
}

func TestListingService_Export_CreatesExportDir(t *testing.T) {
	exportDir := t.TempDir() + "/nested/listings"
	svc := service.NewListingService(repoReturning(*validAddress()), newMockLookup(tenants()),
		&mockArchiver{}, exportDir, discardLogger())

	_, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.DirExists(t, exportDir)
}

func TestListingService_Export_ArchiveWithoutContent(t *testing.T) {
	arch := &mockArchiver{
		createArchive: func(name, _ string, _ []string) (*domain.ZipResult, error) {
			return &domain.ZipResult{FileName: name, ContentType: domain.ZipContentType}, nil
		},
	}
	svc := service.NewListingService(repoReturning(*validAddress()), newMockLookup(tenants()), arch, t.TempDir(), discardLogger())

	var result *domain.ZipResult
	var err error
	require.NotPanics(t, func() {
		result, err = svc.Export(context.Background(), uuid.New())
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Content)
	assert.Zero(t, result.Size())
}

func TestListingService_Export_Neutral(t *testing.T) {
	a := *validAddress()
	a.Number = ""
	arch := &mockArchiver{}
	svc := service.NewListingService(repoReturning(a), newMockLookup(tenants()), arch, t.TempDir(), discardLogger())

	result, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNeutral())
	assert.Empty(t, arch.calls)
}

func TestListingService_Export_NilArchive(t *testing.T) {
	arch := &mockArchiver{
		createArchive: func(string, string, []string) (*domain.ZipResult, error) { return nil, nil },
	}
	svc := service.NewListingService(repoReturning(*validAddress()), newMockLookup(tenants()), arch, t.TempDir(), discardLogger())

	result, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestListingService_Export_NotFound(t *testing.T) {
	addrs := &mockAddressRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Address, error) {
			return domain.Address{}, domain.ErrNotFound
		},
	}
	arch := &mockArchiver{}
	svc := service.NewListingService(addrs, newMockLookup(nil), arch, t.TempDir(), discardLogger())

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, arch.calls)
}

func TestListingService_Export_FlatsNotLoaded(t *testing.T) {
	a := *validAddress()
	a.Flats = nil
	exportDir := t.TempDir()
	svc := service.NewListingService(repoReturning(a), newMockLookup(tenants()), &mockArchiver{}, exportDir, discardLogger())

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrExportFailure)
	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListingService_Export_LookupError(t *testing.T) {
	lookupErr := errors.New("connection reset")
	svc := service.NewListingService(repoReturning(*validAddress()), failingLookup{lookupErr},
		&mockArchiver{}, t.TempDir(), discardLogger())

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, lookupErr)
}

type failingLookup struct{ err error }

func (l failingLookup) Find(context.Context, string) (domain.Tenant, error) {
	return domain.Tenant{}, l.err
}

// ---- Spreadsheet ------------------------------------------------------------

func TestListingService_Spreadsheet(t *testing.T) {
	svc := service.NewListingService(repoReturning(*validAddress()), newMockLookup(tenants()),
		&mockArchiver{}, t.TempDir(), discardLogger())

	name, data, err := svc.Spreadsheet(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "SomeStreet 1.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet.Name)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Våning", "Lägenhet", "Boende"},
		{"Vån 1", "L. 1101", "A & S SomeLastName"},
		{"Vån 2", "L. 1201", "K Ek"},
	}, rows)
}

func TestListingService_Spreadsheet_NotFound(t *testing.T) {
	addrs := &mockAddressRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Address, error) {
			return domain.Address{}, domain.ErrNotFound
		},
	}
	svc := service.NewListingService(addrs, newMockLookup(nil), &mockArchiver{}, t.TempDir(), discardLogger())

	_, _, err := svc.Spreadsheet(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
