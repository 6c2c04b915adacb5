package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/matrix"
)

// benchWeights builds a graph with only non-positive edges so no cycle is positive.
func benchWeights(b *testing.B, n int) *matrix.Dense {
	rng := rand.New(rand.NewSource(3))
	w, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = w.Set(i, j, -rng.Float64()*100)
			}
		}
	}
	return w
}

func benchmarkSubsidies(b *testing.B, n int, s bellmanford.Strategy) {
	w := benchWeights(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bellmanford.Subsidies(w, bellmanford.WithStrategy(s)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubsidies_PerSource_50(b *testing.B) {
	benchmarkSubsidies(b, 50, bellmanford.StrategyPerSource)
}

func BenchmarkSubsidies_SuperSink_50(b *testing.B) {
	benchmarkSubsidies(b, 50, bellmanford.StrategySuperSink)
}

func BenchmarkSubsidies_FloydWarshall_50(b *testing.B) {
	benchmarkSubsidies(b, 50, bellmanford.StrategyFloydWarshall)
}
