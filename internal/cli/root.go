package cli

import (
	"fmt"
	"path/filepath"

	"github.com/gene-labs/gene/internal/branding"
	"github.com/gene-labs/gene/internal/config"
	"github.com/gene-labs/gene/internal/generator"
	"github.com/gene-labs/gene/internal/templates"
	"github.com/gene-labs/gene/internal/ui"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectName string
	authorName  string
	targetDir   string
	templateDir string
)

func init() {
	rootCmd.Flags().StringVarP(&projectName, "project-name", "p", "", "Create project")
	rootCmd.PersistentFlags().StringVarP(&authorName, "author-name", "u", "", "Author name (default: configured author or current user)")
	rootCmd.PersistentFlags().StringVar(&targetDir, "dir", ".", "Directory to generate into")
	rootCmd.PersistentFlags().StringVar(&templateDir, "template-dir", "", "Custom template set directory (default: built-in Flask templates)")
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Flask project skeletons with Sphinx-style module headers,
and adds views, RESTful views, entities and tests to generated projects.

Example:
  gene -p myapp -u "Jane Roe"`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Nothing to do without a project name.
		if projectName == "" {
			return nil
		}

		g, err := newGenerator(cmd)
		if err != nil {
			return reportError(cmd, err)
		}
		return reportError(cmd, g.CreateProject(projectName))
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		ui.Error(rootCmd.ErrOrStderr(), "%s", err.Error())
	}
	return err
}

// newGenerator builds a Generator from flags and configuration. The author
// default is resolved here, not inside the generator.
func newGenerator(cmd *cobra.Command) (*generator.Generator, error) {
	author := authorName
	if author == "" {
		author = config.Author()
	}

	tmplDir := templateDir
	if tmplDir == "" {
		tmplDir = config.Get(config.KeyTemplateDir)
	}
	tmpl, err := templates.Open(tmplDir)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", targetDir, err)
	}

	return generator.New(osfs.New(root), generator.Options{
		Author:    author,
		Version:   buildVersion,
		Templates: tmpl,
		Out:       cmd.OutOrStdout(),
	})
}

// reportError prints a failure in red on stdout and swallows it, so the
// process still exits normally.
func reportError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	ui.Error(cmd.OutOrStdout(), "%s", err.Error())
	return nil
}
