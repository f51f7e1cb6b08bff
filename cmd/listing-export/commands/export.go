package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Liam44/Dios-sub002/internal/archive"
	"github.com/Liam44/Dios-sub002/internal/domain"
	"github.com/Liam44/Dios-sub002/internal/listing"
	"github.com/Liam44/Dios-sub002/internal/service"
	"github.com/Liam44/Dios-sub002/internal/sheet"
)

func exportCmd() *cobra.Command {
	var (
		input     string
		outputDir string
		withSheet bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the three listings and their zip archive into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(input)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return err
			}

			lookup := snap.lookup()
			result, err := service.ExportListing(cmd.Context(), archive.NewFileArchiver(), lookup, snap.Address, outputDir)
			if err != nil {
				return err
			}
			switch {
			case result == nil:
				return errors.New("archive could not be created")
			case result.IsNeutral():
				logger.Warn("nothing to export: street, number and output directory are required")
				return nil
			}
			logger.Info("listing exported", "archive", filepath.Join(outputDir, result.FileName), "bytes", result.Size())

			if withSheet {
				path, err := writeSheet(cmd, lookup, snap.Address, outputDir)
				if err != nil {
					return err
				}
				logger.Info("spreadsheet written", "file", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML snapshot of the building")
	cmd.Flags().StringVarP(&outputDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&withSheet, "xlsx", false, "also write the main listing as a spreadsheet")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func writeSheet(cmd *cobra.Command, lookup listing.TenantLookup, a *domain.Address, dir string) (string, error) {
	t, err := listing.Build(cmd.Context(), lookup, a, listing.Main)
	if err != nil {
		return "", err
	}
	data, err := sheet.Render(sheet.MainHeader, t.DataCells())
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, a.Key()+".xlsx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write spreadsheet: %w", err)
	}
	return path, nil
}

// checkCmd prints the main listing to stdout without writing any file.
func checkCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the main listing of a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(input)
			if err != nil {
				return err
			}
			if snap.Address == nil {
				return errors.New("snapshot has no address")
			}
			if snap.Address.Flats == nil {
				return fmt.Errorf("%s: %w", input, domain.ErrExportFailure)
			}

			t, err := listing.Build(cmd.Context(), snap.lookup(), snap.Address, listing.Main)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, row := range t.DataCells() {
				fmt.Fprintf(out, "%-8s %-10s %s\n", row[0], row[1], row[2])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML snapshot of the building")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
