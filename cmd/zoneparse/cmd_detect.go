package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkoelman/zonewise/internal/importer"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Classify files by content kind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readFiles(args)
			if err != nil {
				return err
			}

			type detection struct {
				File string `json:"file"`
				Kind string `json:"kind"`
			}
			results := make([]detection, 0, len(files))
			for _, f := range files {
				results = append(results, detection{
					File: f.Name,
					Kind: importer.Classify(f.Content).String(),
				})
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				fmt.Printf("%-14s %s\n", r.Kind, r.File)
			}
			return nil
		},
	}
}
