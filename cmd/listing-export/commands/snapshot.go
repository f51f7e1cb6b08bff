package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/listing"
)

// snapshot is the YAML input of the CLI:
//
//	address:
//	  street: Storgatan
//	  number: "12"
//	  flats:
//	    - floor: 1
//	      number: "1101"
//	      entry_door_code: "1234"
//	      parameters:
//	        - user_id: anna
//	    - null            # hole
//	tenants:
//	  anna: {first_name: Anna-Maria, last_name: Svensson}
type snapshot struct {
	Address *domain.Address          `yaml:"address"`
	Tenants map[string]domain.Tenant `yaml:"tenants"`
}

func loadSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &s, nil
}

func (s *snapshot) lookup() listing.StaticLookup {
	l := make(listing.StaticLookup, len(s.Tenants))
	for id, t := range s.Tenants {
		l[id] = t
	}
	return l
}
