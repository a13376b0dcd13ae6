package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vitrin/api/internal/content"
	"vitrin/api/internal/project"
	"vitrin/api/internal/templates"
)

var (
	resolveTemplate string
	resolveSector   string
	resolveDataPath string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the sections a template resolves to for the given business data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := templates.Default()
		if err != nil {
			return err
		}
		def, ok := catalog.Lookup(resolveTemplate)
		if !ok {
			return fmt.Errorf("unknown template %q", resolveTemplate)
		}

		var data project.Data
		if resolveDataPath != "" {
			raw, err := os.ReadFile(resolveDataPath)
			if err != nil {
				return fmt.Errorf("read data file: %w", err)
			}
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parse data file: %w", err)
			}
		}
		if resolveSector != "" {
			data.Sector = resolveSector
		}

		specs := content.DefaultPipeline().MapSections(def.Sections, data)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"templateId": def.ID, "sections": specs})
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := templates.Default()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSECTOR\tTHEME\tSECTIONS\tNAME")
		for _, t := range catalog.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Sector, t.ThemeID, t.SectionCount, t.Name)
		}
		return w.Flush()
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveTemplate, "template", "t", "", "Template id (see `vitrin templates`)")
	resolveCmd.Flags().StringVarP(&resolveSector, "sector", "s", "", "Sector key, e.g. \"kafe\" or \"diş hekimi\"")
	resolveCmd.Flags().StringVar(&resolveDataPath, "data", "", "JSON file with generatedContent and formData")
	_ = resolveCmd.MarkFlagRequired("template")
}
