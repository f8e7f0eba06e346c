package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gene-labs/gene/internal/config"
	"github.com/gene-labs/gene/internal/manifest"
	"github.com/gene-labs/gene/internal/templates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Validate and describe the active template set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := templateDir
		if dir == "" {
			dir = config.Get(config.KeyTemplateDir)
		}

		fsys, err := templates.Open(dir)
		if err != nil {
			return reportError(cmd, err)
		}
		m, err := manifest.Load(fsys)
		if err != nil {
			return reportError(cmd, err)
		}
		if err := m.CheckCompatible(buildVersion); err != nil {
			return reportError(cmd, err)
		}

		source := dir
		if source == "" {
			source = "built-in"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n", m.Name, m.Version, source)
		if m.Description != "" {
			fmt.Fprintf(out, "  %s\n", m.Description)
		}
		fmt.Fprintf(out, "  project files: %s\n", strings.Join(m.ProjectFiles, ", "))
		fmt.Fprintf(out, "  directories:   %s\n", strings.Join(append([]string{m.AppDir, m.DataDir}, m.AuxDirs...), ", "))
		fmt.Fprintf(out, "  categories:    %s\n", joinMap(m.Categories))
		if len(m.Stubs) > 0 {
			fmt.Fprintf(out, "  stubs:         %s\n", joinMap(m.Stubs))
		}
		return nil
	},
}

func joinMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + m[k]
	}
	return strings.Join(parts, ", ")
}
