package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

// TenantLookup resolves a tenant identifier.
// Find returns domain.ErrNotFound when no tenant matches id; any other error
// aborts the listing.
type TenantLookup interface {
	Find(ctx context.Context, id string) (domain.Tenant, error)
}

// StaticLookup is an in-memory TenantLookup keyed by tenant identifier.
type StaticLookup map[string]domain.Tenant

// Find implements TenantLookup.
func (l StaticLookup) Find(_ context.Context, id string) (domain.Tenant, error) {
	t, ok := l[id]
	if !ok {
		return domain.Tenant{}, domain.ErrNotFound
	}
	return t, nil
}

// TenantLabel resolves every assigned tenant of a flat and formats the label
// shown in the listing. Nil parameters, empty identifiers and unknown
// tenants leave their slot empty.
func TenantLabel(ctx context.Context, lookup TenantLookup, params []*domain.Parameter) (string, error) {
	var tenants []domain.Tenant
	for _, p := range params {
		if p == nil || p.UserID == "" {
			continue
		}
		t, err := lookup.Find(ctx, p.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("listing.TenantLabel: %w", err)
		}
		tenants = append(tenants, t)
	}
	return FormatLabel(tenants), nil
}

// FormatLabel builds the label for tenants sharing one flat, in resolution order.
//
//	one tenant:            "A-M Svensson"
//	shared last name:      "B & A Svensson"   (initials in reverse order)
//	different last names:  "A Svensson/B Berg"
//
// Each name is trimmed, so a tenant without a last name prints as "A", not "A ".
func FormatLabel(tenants []domain.Tenant) string {
	switch len(tenants) {
	case 0:
		return ""
	case 1:
		return joinName(Initials(tenants[0].FirstName), tenants[0].LastName)
	}

	var surnames []string
	bySurname := make(map[string][]domain.Tenant)
	for _, t := range tenants {
		if _, seen := bySurname[t.LastName]; !seen {
			surnames = append(surnames, t.LastName)
		}
		bySurname[t.LastName] = append(bySurname[t.LastName], t)
	}

	parts := make([]string, 0, len(surnames))
	for _, surname := range surnames {
		group := bySurname[surname]
		initials := make([]string, 0, len(group))
		for i := len(group) - 1; i >= 0; i-- {
			initials = append(initials, Initials(group[i].FirstName))
		}
		parts = append(parts, joinName(strings.Join(initials, " & "), surname))
	}
	return strings.Join(parts, "/")
}

// Initials keeps the first letter of every hyphen-separated part of a first
// name: "Anna-Maria" becomes "A-M".
func Initials(firstName string) string {
	if firstName == "" {
		return ""
	}
	segments := strings.Split(firstName, "-")
	for i, s := range segments {
		for _, r := range s {
			segments[i] = string(r)
			break
		}
	}
	return strings.Join(segments, "-")
}

func joinName(initials, lastName string) string {
	return strings.TrimSpace(initials + " " + lastName)
}
