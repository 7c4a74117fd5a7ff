package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/colorcode"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect HEX",
	Short:   "show the color spaces, name and harmonies of a hex color",
	Example: "colorcollect inspect '#3366CC'",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		hex, ok := colorcode.NormalizeHex(args[0])
		if !ok {
			return fmt.Errorf("%q is not a 6 digit hex color", args[0])
		}
		printDescription(os.Stdout, colorcode.Describe(hex))
		return nil
	},
}

func descriptionToTableData(d colorcode.Description) [][]string {
	rows := [][]string{
		{"Hex", d.Hex},
		{"RGB", d.RGBString},
		{"HSL", fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", d.HSL.H, d.HSL.S, d.HSL.L)},
		{"CMYK", fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", d.CMYK.C, d.CMYK.M, d.CMYK.Y, d.CMYK.K)},
		{"Name", d.Name},
		{"Temperature", d.Temperature},
		{"Text Color", d.TextColor},
	}
	for _, h := range colorcode.Harmonies {
		rows = append(rows, []string{string(h), strings.Join(d.Harmonies[h], " ")})
	}
	return rows
}

func printDescription(w io.Writer, d colorcode.Description) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(descriptionToTableData(d))
	table.Render()
}
