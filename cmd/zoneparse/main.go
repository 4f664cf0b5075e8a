// Zoneparse runs the same parsing pipeline as the zonewise server against
// local files, without a database. Useful for inspecting what an import
// would produce before uploading anything.
//
// Usage:
//
//	zoneparse detect <file>...       Classify files by content kind
//	zoneparse parse <file>...        Parse files into alias and zone records
//	zoneparse aliases <file>...      Print only the alias records
//	zoneparse zones <file>...        Print only the zone records
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkoelman/zonewise/internal/importer"
)

var (
	fabricID int
	jsonOut  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "zoneparse",
	Short:         "Offline parser for Fibre Channel switch zoning configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Zoneparse parses Cisco device-alias, fcalias and zone configuration,
including full tech-support dumps, into reviewed alias and zone records.
It runs entirely offline: nothing is read from or written to a database.`,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&fabricID, "fabric", "f", 1, "fabric ID stamped on parsed records")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of a summary")

	rootCmd.AddCommand(
		newDetectCmd(),
		newParseCmd(),
		newAliasesCmd(),
		newZonesCmd(),
	)
}

// readFiles loads each path into an import file, named by its path.
func readFiles(paths []string) ([]importer.File, error) {
	files := make([]importer.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		files = append(files, importer.File{Name: p, Content: string(data)})
	}
	return files, nil
}

// memoryDirectory is the offline stand-in for the server database: it serves
// the configured prefix rules and reports nothing as already existing.
type memoryDirectory struct {
	rules []importer.PrefixRule
}

func (d *memoryDirectory) WwpnPrefixRules(ctx context.Context) ([]importer.PrefixRule, error) {
	return d.rules, nil
}

func (d *memoryDirectory) ExistingAliases(ctx context.Context, fabricID int) ([]importer.StoredAlias, error) {
	return nil, nil
}

func (d *memoryDirectory) CheckExistence(ctx context.Context, aliasWWPNs, zoneNames []string, fabricID int) (importer.Existence, error) {
	return importer.Existence{}, nil
}
