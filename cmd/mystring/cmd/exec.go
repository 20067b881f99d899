// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     cmd
// Description: CLI command applying a chain of operations to one text
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/internal/ops"
)

var execLast bool

var execCmd = &cobra.Command{
	Use:   "exec <text> <operation> [args...] [then <operation> [args...]]...",
	Short: "Apply operations to a text",
	Long: `Creates a text value from <text> and applies the operations in order.
Steps are separated by the word "then". Each step prints its result.
Write \then to pass the word itself as an argument.

Flags must come before <text>; everything after it is passed to the
operations, so negative numbers need no escaping.

Examples:
  mystring exec Java append " Programming" then reverse
  mystring exec JavaScript splice 4 6
  mystring --policy permissive exec JavaScript splice -2 4
  mystring exec "Java is a versatile language" split " "
  mystring exec "now " append '\then'`,
	Args: cobra.MinimumNArgs(2),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().BoolVar(&execLast, "last", false, "print only the result of the last step")
	execCmd.Flags().SetInterspersed(false)
}

func runExec(cmd *cobra.Command, args []string) error {
	steps, err := ops.ParseChain(ops.Args(args[1:]))
	if err != nil {
		return fail(err)
	}

	tv := newValue(args[0])
	results, err := registry.Run(tv, steps)

	out := cmd.OutOrStdout()
	if execLast {
		if err == nil && len(results) > 0 {
			fmt.Fprintln(out, results[len(results)-1].Render())
		}
	} else {
		for _, r := range results {
			fmt.Fprintf(out, "%-10s %s\n", r.Operation, r.Render())
		}
	}

	if err != nil {
		return fail(err, log.Int("completed_steps", len(results)))
	}
	return nil
}
