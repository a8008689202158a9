package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "projects-api",
	Short: "Project and task tracker REST API",
	Long:  "Persists users, projects and tasks, authenticates via password or bearer token, and gates mutating operations behind the manager role.",
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
