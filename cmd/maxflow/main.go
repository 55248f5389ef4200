// Command maxflow runs the flownet package on the canonical six-node
// network and prints the resulting maximum flow. Each augmenting path is
// logged to stderr as it is applied; the final value goes to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/DMabugat/edmonds-karp/flownet"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "maxflow"})

	capacity := [][]int64{
		{0, 7, 5, 0, 0, 0},
		{0, 0, 5, 4, 0, 0},
		{0, 0, 0, 6, 4, 0},
		{0, 0, 0, 0, 2, 5},
		{0, 0, 0, 0, 0, 6},
		{0, 0, 0, 0, 0, 0},
	}

	network, err := flownet.New(0, 5, capacity,
		flownet.WithOnAugment(func(path []int, bottleneck int64) {
			logger.Info("augmenting path applied", "path", path, "bottleneck", bottleneck)
		}),
	)
	if err != nil {
		logger.Fatal("invalid network", "err", err)
	}

	for network.FindPath() {
	}

	cut, side := network.MinCut()
	logger.Info("network exhausted", "min_cut", cut, "source_side", side)

	fmt.Printf("Max flow: %d\n", network.MaxFlow())
}
