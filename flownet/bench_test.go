package flownet_test

import (
	"math/rand"
	"testing"

	"github.com/DMabugat/edmonds-karp/flownet"
)

// randomCapacity builds a V×V capacity matrix where each ordered pair u→v
// (u ≠ v) receives an edge with probability p and a capacity uniform in
// [1, maxCap]. The seed keeps every run reproducible.
func randomCapacity(v int, p float64, maxCap int64, seed int64) [][]int64 {
	r := rand.New(rand.NewSource(seed))
	capacity := make([][]int64, v)
	for u := range capacity {
		capacity[u] = make([]int64, v)
	}
	for u := 0; u < v; u++ {
		for w := 0; w < v; w++ {
			if u == w {
				continue
			}
			if r.Float64() < p {
				capacity[u][w] = r.Int63n(maxCap) + 1
			}
		}
	}

	return capacity
}

// BenchmarkFindPath measures full source→sink exhaustion on networks of
// increasing size and density. Matrix construction is excluded from the
// timed section; the network itself is rebuilt per iteration since the
// algorithm consumes it.
func BenchmarkFindPath(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 50, 0.10, 10, 42},
		{"Medium", 200, 0.05, 20, 4242},
		{"Large", 500, 0.02, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			capacity := randomCapacity(tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)
			sink := tc.vertices - 1

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				net, err := flownet.New(0, sink, capacity)
				if err != nil {
					b.Fatal(err)
				}
				for net.FindPath() {
				}
			}
		})
	}
}
