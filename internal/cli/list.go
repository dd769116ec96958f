package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/algorithms"
)

// listCommand creates the list command that shows the algorithm registry.
func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available maze algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if namesOnly {
				for _, name := range algorithms.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			writeAlgorithmTable(out, c.Config.Algorithm)
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print only the algorithm keys, one per line")

	return cmd
}

// writeAlgorithmTable renders the registry as a table, marking current as
// the configured default.
func writeAlgorithmTable(w io.Writer, current string) {
	infos := algorithms.All()
	rows := make([][]string, len(infos))
	for i, info := range infos {
		marker := " "
		if info.Name == current {
			marker = iconSuccess
		}
		rows[i] = []string{marker, info.Name, info.Title, info.Unit, info.Link}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Algorithm", "One step", "Reference").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return styleIconSuccess
			case 1:
				if infos[row].Name == current {
					return StyleHighlight.Bold(true)
				}
				return StyleHighlight
			case 4:
				return StyleLink
			}
			return StyleValue
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d algorithms · %s marks the configured default", len(infos), iconSuccess)))
}
