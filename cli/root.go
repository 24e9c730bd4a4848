// Package cli defines the command-line surface of the gateway binary.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the root command with all subcommands attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lms-backend",
		Short: "LMS backend gateway",
		Long:  "HTTP gateway in front of the identity and data services of the LMS platform.",
	}

	root.AddCommand(
		ServeCmd(),
		VersionCmd(),
	)

	return root
}
