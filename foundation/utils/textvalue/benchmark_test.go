// File: benchmark_test.go
// Title: Benchmarks for textvalue
// Description: Benchmarks for the scanning operations and the exchange sort.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package textvalue

import (
	"testing"
)

const benchText = "Java is a versatile language and Java is everywhere. "

func BenchmarkReplace(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tv := New(benchText)
		_, _ = tv.Replace("Java", "Go")
	}
}

func BenchmarkSplit(b *testing.B) {
	tv := New(benchText)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tv.Split(" ")
	}
}

func BenchmarkCountOfWords(b *testing.B) {
	tv := New(benchText)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tv.CountOfWords()
	}
}

func BenchmarkSort(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tv := New(benchText)
		_ = tv.Sort()
	}
}
