package listing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/listing"
)

// mockLookup is a hand-written test double for listing.TenantLookup that
// counts calls per identifier.
type mockLookup struct {
	tenants map[string]domain.Tenant
	err     error
	calls   map[string]int
}

func newMockLookup(tenants map[string]domain.Tenant) *mockLookup {
	return &mockLookup{tenants: tenants, calls: map[string]int{}}
}

func (m *mockLookup) Find(_ context.Context, id string) (domain.Tenant, error) {
	m.calls[id]++
	if m.err != nil {
		return domain.Tenant{}, m.err
	}
	t, ok := m.tenants[id]
	if !ok {
		return domain.Tenant{}, domain.ErrNotFound
	}
	return t, nil
}

// compile-time check: mockLookup must satisfy listing.TenantLookup.
var _ listing.TenantLookup = (*mockLookup)(nil)

func params(ids ...string) []*domain.Parameter {
	out := make([]*domain.Parameter, 0, len(ids))
	for _, id := range ids {
		out = append(out, &domain.Parameter{UserID: id})
	}
	return out
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Anna":         "A",
		"Anna-Maria":   "A-M",
		"Per-Olof-Jan": "P-O-J",
		"Åsa":          "Å",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, listing.Initials(in), "Initials(%q)", in)
	}
}

func TestFormatLabel_NoTenants(t *testing.T) {
	assert.Empty(t, listing.FormatLabel(nil))
}

func TestFormatLabel_OneTenant(t *testing.T) {
	got := listing.FormatLabel([]domain.Tenant{{FirstName: "Anna-Maria", LastName: "Svensson"}})
	assert.Equal(t, "A-M Svensson", got)
}

func TestFormatLabel_NoLastName_Trimmed(t *testing.T) {
	assert.Equal(t, "A", listing.FormatLabel([]domain.Tenant{{FirstName: "Anna"}}))
	assert.Equal(t, "B & A", listing.FormatLabel([]domain.Tenant{{FirstName: "Anna"}, {FirstName: "Bo"}}))
}

func TestFormatLabel_SharedLastName_ReverseOrder(t *testing.T) {
	got := listing.FormatLabel([]domain.Tenant{
		{FirstName: "SomeFirstName1", LastName: "SomeLastName"},
		{FirstName: "AnotherFirstName", LastName: "SomeLastName"},
	})
	assert.Equal(t, "A & S SomeLastName", got)
}

func TestFormatLabel_DifferentLastNames_ForwardOrder(t *testing.T) {
	got := listing.FormatLabel([]domain.Tenant{
		{FirstName: "SomeFirstName1", LastName: "SomeLastName"},
		{FirstName: "AnotherFirstName", LastName: "AnotherLastName"},
	})
	assert.Equal(t, "S SomeLastName/A AnotherLastName", got)
}

func TestFormatLabel_MixedGroups(t *testing.T) {
	got := listing.FormatLabel([]domain.Tenant{
		{FirstName: "Anna", LastName: "Berg"},
		{FirstName: "Karl", LastName: "Ek"},
		{FirstName: "Bo", LastName: "Berg"},
	})
	assert.Equal(t, "B & A Berg/K Ek", got)
}

func TestFormatLabel_SurnameMatchIsExact(t *testing.T) {
	got := listing.FormatLabel([]domain.Tenant{
		{FirstName: "Anna", LastName: "Berg"},
		{FirstName: "Bo", LastName: "berg"},
	})
	assert.Equal(t, "A Berg/B berg", got)
}

func TestTenantLabel_SkipsBlankSlots(t *testing.T) {
	lookup := newMockLookup(map[string]domain.Tenant{
		"anna": {FirstName: "Anna", LastName: "Berg"},
	})
	ps := []*domain.Parameter{nil, {UserID: ""}, {UserID: "ghost"}, {UserID: "anna"}}

	got, err := listing.TenantLabel(context.Background(), lookup, ps)

	require.NoError(t, err)
	assert.Equal(t, "A Berg", got)
	assert.Equal(t, map[string]int{"ghost": 1, "anna": 1}, lookup.calls, "blank identifiers are never looked up")
}

func TestTenantLabel_NoParameters(t *testing.T) {
	lookup := newMockLookup(nil)

	got, err := listing.TenantLabel(context.Background(), lookup, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, lookup.calls)
}

func TestTenantLabel_LookupError(t *testing.T) {
	lookup := newMockLookup(nil)
	lookup.err = errors.New("connection reset")

	_, err := listing.TenantLabel(context.Background(), lookup, params("anna"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestStaticLookup(t *testing.T) {
	l := listing.StaticLookup{"anna": {FirstName: "Anna", LastName: "Berg"}}

	got, err := l.Find(context.Background(), "anna")
	require.NoError(t, err)
	assert.Equal(t, "Berg", got.LastName)

	_, err = l.Find(context.Background(), "bo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
