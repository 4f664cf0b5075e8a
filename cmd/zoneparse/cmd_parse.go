package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jkoelman/zonewise/internal/importer"
)

// pipelineFlags are shared by the parse, aliases and zones subcommands.
type pipelineFlags struct {
	rulesPath   string
	allowDirect bool
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rulesPath, "rules", "", "YAML file with WWPN prefix rules for smart type detection")
	cmd.Flags().BoolVar(&f.allowDirect, "allow-direct", true, "resolve unmatched pwwn zone members as direct-WWPN members")
}

func (f *pipelineFlags) run(ctx context.Context, paths []string) (*importer.Result, error) {
	files, err := readFiles(paths)
	if err != nil {
		return nil, err
	}

	rules, err := loadRules(f.rulesPath)
	if err != nil {
		return nil, err
	}

	defaults := importer.DefaultImportDefaults()
	defaults.AllowDirectMembers = f.allowDirect

	session := importer.NewSession(&memoryDirectory{rules: rules}, nil, fabricID, defaults)
	return session.Run(ctx, files)
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newParseCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse files into alias and zone records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := flags.run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(result)
			}
			printSummary(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newAliasesCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "aliases <file>...",
		Short: "Parse files and print only the alias records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := flags.run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(result.Aliases)
			}
			printAliases(result.Aliases)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newZonesCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "zones <file>...",
		Short: "Parse files and print only the zone records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := flags.run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(result.Zones)
			}
			printZones(result.Zones)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// loadRules reads prefix rules from a YAML file of the form:
//
//	rules:
//	  - prefix: "1000"
//	    wwpn_type: init
//	    vendor: Emulex
func loadRules(path string) ([]importer.PrefixRule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var doc struct {
		Rules []struct {
			Prefix string `yaml:"prefix"`
			Use    string `yaml:"wwpn_type"`
			Vendor string `yaml:"vendor"`
		} `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	rules := make([]importer.PrefixRule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rules = append(rules, importer.PrefixRule{
			Prefix: r.Prefix,
			Use:    importer.AliasUse(r.Use),
			Vendor: r.Vendor,
		})
	}
	return rules, nil
}

func printAliases(aliases []importer.AliasRecord) {
	fmt.Printf("aliases (%d):\n", len(aliases))
	for _, a := range aliases {
		note := ""
		if a.SmartDetectionNote != "" {
			note = "  # " + a.SmartDetectionNote
		}
		fmt.Printf("  %-32s %s  %s/%s%s\n", a.Name, a.WWPN, a.CiscoAliasType, a.Use, note)
	}
}

func printZones(zones []importer.ZoneRecord) {
	fmt.Printf("zones (%d):\n", len(zones))
	for _, z := range zones {
		fmt.Printf("  %s (%d/%d members resolved)\n", z.Name, z.Stats.Resolved, z.Stats.Total)
		for _, m := range z.ResolvedMembers {
			fmt.Printf("    %-12s %-32s %s\n", m.Kind, m.Name, m.WWPN)
		}
		for _, m := range z.UnresolvedMembers {
			fmt.Printf("    %-12s %-32s unresolved: %s\n", m.Kind, m.Name, m.Reason)
		}
	}
}

func printSummary(result *importer.Result) {
	fmt.Printf("session %s, fabric %d\n\n", result.SessionID, result.FabricID)

	printAliases(result.Aliases)
	fmt.Println()
	printZones(result.Zones)

	d := result.Diagnostics
	if len(d.SkippedLines) > 0 {
		fmt.Printf("\nskipped lines (%d):\n", len(d.SkippedLines))
		for _, s := range d.SkippedLines {
			fmt.Printf("  %s:%d: %s (%s)\n", s.File, s.Line, s.Text, s.Reason)
		}
	}
	if len(d.Warnings) > 0 {
		fmt.Printf("\nwarnings (%d):\n", len(d.Warnings))
		for _, w := range d.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}
