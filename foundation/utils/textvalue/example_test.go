// File: example_test.go
// Title: Examples for textvalue
// Description: Runnable documentation examples.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package textvalue_test

import (
	"fmt"

	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

func Example() {
	tv := textvalue.New("Java")
	fmt.Println(tv.Append(" Programming"))

	replaced, _ := tv.Replace("Programming", "Language")
	fmt.Println(replaced)

	tv.Reverse()
	fmt.Println(tv)
	fmt.Println(tv.Len())
	// Output:
	// Java Programming
	// Java Language
	// egaugnaL avaJ
	// 13
}

func ExampleTextValue_Splice() {
	tv := textvalue.New("JavaScript")
	result, _ := tv.Splice(4, 6)
	fmt.Println(result)

	_, err := tv.Splice(-1, 2)
	fmt.Println(errors.IsInvalidArgument(err))
	// Output:
	// Java
	// true
}

func ExampleTextValue_Split() {
	parts, _ := textvalue.New("Java is a versatile language").Split(" ")
	for _, p := range parts {
		fmt.Println(p)
	}
	// Output:
	// Java
	// is
	// a
	// versatile
	// language
}

func ExampleTextValue_Sort() {
	fmt.Println(textvalue.New("program").Sort())
	// Output: agmnoprr
}

func ExampleTextValue_CountOfWords() {
	fmt.Println(textvalue.New("Java is fun and powerful").CountOfWords())
	fmt.Println(textvalue.New("  a   b  ").CountOfWords())
	// Output:
	// 5
	// 2
}

func ExampleWithPolicy() {
	tv := textvalue.New("ab", textvalue.WithPolicy(textvalue.PolicyPermissive))
	result, _ := tv.Replace("", "-")
	fmt.Println(result)
	// Output: -a-b-
}
