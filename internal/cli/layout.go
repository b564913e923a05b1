package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/chtl/nametags/layout"
	"github.com/chtl/nametags/sheet"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell   = lipgloss.NewStyle().Foreground(colorCyan)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

func newLayoutCmd(g *globals) *cobra.Command {
	var (
		input  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show where each element of a form lands on the page",
		Long:  `Layout prints page coordinates in points, origin at the bottom-left corner. Text Y is the baseline; image Y is the bottom edge.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, gen, err := g.setup()
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			form, err := sheet.Parse(data)
			if err != nil {
				return err
			}
			placements, err := sheet.Layout(gen, form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(placements)
			}
			_, err = fmt.Fprintln(out, placementTable(placements))
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "form JSON file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print placements as JSON")
	return cmd
}

func placementTable(placements []layout.TagPlacement) string {
	var rows [][]string
	for _, p := range placements {
		for _, in := range p.Instructions() {
			rows = append(rows, instructionRow(p.Cell, in))
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Cell", "Element", "X", "Y", "Size", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return styleCell
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func instructionRow(c layout.Coordinate, in layout.DrawInstruction) []string {
	size := fmt.Sprintf("%sx%s", num(in.Width), num(in.Height))
	element := "logo"
	if in.Kind == layout.KindText {
		size = num(in.FontSize) + "pt " + in.Font.String()
		element = "text"
	}
	return []string{c.String(), element, num(in.X), num(in.Y), size, in.Text}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
