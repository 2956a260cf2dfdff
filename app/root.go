// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aurora-site",
	Short: "aurora-site is the backend of the Santos family wedding site",
	Long: `aurora-site is the backend of the Santos family wedding site.
It serves the gift registry, the RSVP list, the supporter registry and
the password-gated admin area over a JSON API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
