// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     cmd
// Description: CLI command walking through every text value operation
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Demonstrate every operation",
	Long: `Runs each text value operation on a fixed example and prints the
results: append, replace, reverse, length, word count, palindrome check,
splice, split and sort.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return writeDemo(cmd.OutOrStdout())
}

func writeDemo(w io.Writer) error {
	line := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label+":")+" "+valueStyle.Render(value))
	}
	section := func(title string) {
		fmt.Fprintln(w, sectionStyle.Render(title))
	}

	fmt.Fprintln(w, titleStyle.Render("mystring demonstration"))

	tv := newValue("Java")
	line("Original", tv.String())
	line(`After append(" Programming")`, tv.Append(" Programming"))
	replaced, err := tv.Replace("Programming", "Language")
	if err != nil {
		return fail(err)
	}
	line(`After replace("Programming", "Language")`, replaced)
	tv.Reverse()
	line("After reverse()", tv.String())
	line("Length", strconv.Itoa(tv.Len()))

	section("Word count")
	tv.Reset("Java is fun and powerful")
	line("Text", tv.String())
	line("Words", strconv.Itoa(tv.CountOfWords()))

	section("Palindrome")
	for _, s := range []string{"madam", "Java"} {
		line(strconv.Quote(s), strconv.FormatBool(newValue(s).IsPalindrome()))
	}

	section("Splice")
	tv.Reset("JavaScript")
	line("Text", tv.String())
	spliced, err := tv.Splice(4, 6)
	if err != nil {
		return fail(err)
	}
	line("After splice(4, 6)", spliced)

	section("Split")
	tv.Reset("Java is a versatile language")
	line("Text", tv.String())
	parts, err := tv.Split(" ")
	if err != nil {
		return fail(err)
	}
	for _, p := range parts {
		fmt.Fprintln(w, "  - "+valueStyle.Render(p))
	}

	section("Sort")
	tv.Reset("program")
	line("Text", tv.String())
	line("After sort()", tv.Sort())

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("----- End of Demonstration -----"))
	return nil
}
