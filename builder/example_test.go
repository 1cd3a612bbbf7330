package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wardrop/builder"
)

// ExampleBuildNetwork builds a 3×3 street grid with all-to-all demand.
func ExampleBuildNetwork() {
	g, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithConstantCapacity(400),
	}, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, err := builder.AllToAll(g, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nodes=%d links=%d pairs=%d total=%.0f\n", g.NumNodes(), g.NumLinks(), d.NumPairs(), d.Total())
	// Output: nodes=9 links=24 pairs=72 total=720
}
