// SPDX-License-Identifier: MIT
// Package population_test provides benchmarks for the per-day hot paths.
package population_test

import (
	"testing"

	"github.com/katalvlaran/popnet/population"
)

// benchPop returns a default-schema population of n agents with every
// tenth agent exposed.
func benchPop(b *testing.B, n int) *population.Population {
	b.Helper()
	schema, err := population.DefaultSchema("h")
	if err != nil {
		b.Fatal(err)
	}
	p, err := population.New(schema, n)
	if err != nil {
		b.Fatal(err)
	}
	exposed, _ := p.Bools("exposed")
	for i := 0; i < n; i += 10 {
		exposed[i] = true
	}

	return p
}

// BenchmarkTrue measures one index query over 1M agents.
func BenchmarkTrue(b *testing.B) {
	p := benchPop(b, 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.True("exposed"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCount measures the allocation-free count over 1M agents.
func BenchmarkCount(b *testing.B) {
	p := benchPop(b, 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Count("exposed"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConcat measures merging two 100k populations.
func BenchmarkConcat(b *testing.B) {
	x := benchPop(b, 100_000)
	y := benchPop(b, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := population.Concat(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
