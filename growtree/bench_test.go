package growtree_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mazegrow/gridgraph"
	"github.com/katalvlaran/mazegrow/growtree"
)

// BenchmarkGenerate measures a full 64×64 run per strategy.
func BenchmarkGenerate(b *testing.B) {
	size := gridgraph.Size{Width: 64, Height: 64}
	for _, st := range allStrategies {
		b.Run(st.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := growtree.Generate(context.Background(), size, gridgraph.Coord{}, st, growtree.WithSeed(int64(i+1))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
