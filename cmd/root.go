package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/colorcode"
)

var (
	debugCount int
	logLevel   string
	codesFile  string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "colorcollect",
	Short:             "normalize color codes and serve personal color collections",
	PersistentPreRunE: preRunFn,
}

func addSubcommands() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(migrateCmd)
	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(listCmd)
}

func init() {
	RootCmd.SilenceUsage = true
	RootCmd.PersistentFlags().CountVarP(&debugCount, "debug", "d", "enable debug mode")
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info",
		"logging level; one of [trace, debug, info, warning, error, fatal]")
	RootCmd.PersistentFlags().StringVarP(&codesFile, "codes", "c", "",
		"path to a YAML vendor code table, overrides VENDOR_CODES_FILE")
	_ = RootCmd.MarkPersistentFlagFilename("codes", "*.yaml", "*.yml")

	addSubcommands()
}

func preRunFn(_ *cobra.Command, _ []string) error {
	switch {
	case debugCount > 0:
		log.SetLevel(log.DebugLevel)
	default:
		l, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(l)
	}

	// keep stdout clean for tables and json
	log.SetOutput(os.Stderr)
	return nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// loadEngine builds the conversion engine from the --codes file, then path,
// then the embedded table
func loadEngine(path string) (*colorcode.Engine, error) {
	if codesFile != "" {
		path = codesFile
	}
	if path == "" {
		return colorcode.NewEngine(colorcode.DefaultTable()), nil
	}

	table, err := colorcode.LoadTable(path)
	if err != nil {
		return nil, err
	}
	log.WithField("file", path).Debugf("loaded %d vendor codes", table.Len())
	return colorcode.NewEngine(table), nil
}
