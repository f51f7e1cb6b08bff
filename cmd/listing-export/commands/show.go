package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Liam44/Dios-sub002/internal/docx"
)

// showCmd prints the legend and table of a written listing document.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE.docx",
		Short: "Print the table of a listing document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := docx.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if doc.Legend != "" {
				fmt.Fprintln(out, doc.Legend)
			}
			for _, row := range doc.Rows {
				fmt.Fprintln(out, strings.Join(row, " | "))
			}
			return nil
		},
	}
}
