package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(entityCmd)
	rootCmd.AddCommand(testCmd)
}

// ─── view ──────────────────────────────────────────────────────────

var viewCmd = &cobra.Command{
	Use:   "view <project> <path>",
	Short: "Add a view to a project",
	Long: `Add a view module under <project>/views. Nested paths create package
directories with __init__.py files.

Example:
  gene view myapp frontend/sample`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return reportError(cmd, err)
		}
		_, err = g.CreateView(args[0], args[1])
		return reportError(cmd, err)
	},
}

// ─── rest ──────────────────────────────────────────────────────────

var restCmd = &cobra.Command{
	Use:   "rest <project> <path>",
	Short: "Add a RESTful view to a project",
	Long: `Add a RESTful view module under <project>/views with index, show,
create, update and delete handlers.

Example:
  gene rest myapp api/users`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return reportError(cmd, err)
		}
		_, err = g.CreateRest(args[0], args[1])
		return reportError(cmd, err)
	},
}

// ─── entity ────────────────────────────────────────────────────────

var entityCmd = &cobra.Command{
	Use:   "entity <project> <path>",
	Short: "Add a model entity to a project",
	Long: `Add an entity module under <project>/models.

Example:
  gene entity myapp entities/user`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return reportError(cmd, err)
		}
		_, err = g.CreateEntity(args[0], args[1])
		return reportError(cmd, err)
	},
}

// ─── test ──────────────────────────────────────────────────────────

var testCmd = &cobra.Command{
	Use:   "test <project> <path>",
	Short: "Add a test module to a project",
	Long: `Add a test module under <project>/tests. The file name gets a test_ prefix.

Example:
  gene test myapp views/sample   # creates myapp/tests/views/test_sample.py`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return reportError(cmd, err)
		}
		_, err = g.CreateTest(args[0], args[1])
		return reportError(cmd, err)
	},
}
