// Command listing-export writes the tenant listings of one building from a
// YAML snapshot, without a database.
package main

import (
	"os"

	"github.com/Liam44/Dios-sub002/cmd/listing-export/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
