package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/colorcode"
)

var outputFormat string

var convertCmd = &cobra.Command{
	Use:     "convert CODE...",
	Short:   "convert hex, paint and auto paint codes to canonical hex",
	Example: "colorcollect convert ff8800 8002-45C NH731P",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		engine, err := loadEngine(os.Getenv("VENDOR_CODES_FILE"))
		if err != nil {
			return err
		}
		return printConversions(os.Stdout, engine, args, outputFormat)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format. One of [table, json]")
}

// convertAll converts every code, collecting the ones that failed
func convertAll(engine *colorcode.Engine, codes []string) ([]colorcode.Conversion, []string) {
	var (
		out    []colorcode.Conversion
		failed []string
	)
	for _, code := range codes {
		conv, err := engine.Convert(code)
		if err != nil {
			log.Warn(err)
			failed = append(failed, code)
			continue
		}
		out = append(out, conv)
	}
	return out, failed
}

func conversionsToTableData(convs []colorcode.Conversion) [][]string {
	rows := make([][]string, 0, len(convs))
	for _, c := range convs {
		rows = append(rows, []string{
			c.OriginalCode,
			c.Format,
			c.Hex,
			c.Name,
			strconv.FormatBool(c.Approximated),
		})
	}
	return rows
}

func printConversions(w io.Writer, engine *colorcode.Engine, codes []string, format string) error {
	convs, failed := convertAll(engine, codes)

	switch format {
	case "json":
		b, err := json.MarshalIndent(convs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Code", "Format", "Hex", "Name", "Approximated"})
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.AppendBulk(conversionsToTableData(convs))
		table.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d codes could not be converted: %v", len(failed), len(codes), failed)
	}
	return nil
}
