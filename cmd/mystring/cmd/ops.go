package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:     "ops",
	Aliases: []string{"operations"},
	Short:   "List the available operations",
	Args:    cobra.NoArgs,
	RunE:    runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, op := range registry.Operations() {
		fmt.Fprintf(out, "%-36s %s", op.Synopsis(), op.Summary)
		if len(op.Aliases) > 0 {
			fmt.Fprintf(out, " (aliases: %s)", strings.Join(op.Aliases, ", "))
		}
		fmt.Fprintln(out)
	}
	return nil
}
