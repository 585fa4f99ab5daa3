// Package dijkstra_test provides examples demonstrating grid searches.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/riskgrid/costgrid"
	"github.com/katalvlaran/riskgrid/dijkstra"
)

// ExampleShortestCost computes the cheapest top-left to bottom-right cost of
// the 10×10 reference map, then of the same map tiled 5×5.
// Complexity: O(N log N) per search.
func ExampleShortestCost() {
	// 1) Parse the map; the first cell's cost is never counted.
	g, _ := costgrid.ParseString(exampleMap)

	// 2) Search the base map.
	base, err := dijkstra.ShortestCost(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Search the enlarged map.
	big, _ := costgrid.Expand(g, costgrid.DefaultExpandFactor)
	full, err := dijkstra.ShortestCost(big)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("base=%d expanded=%d\n", base, full)
	// Output: base=40 expanded=315
}

// ExampleDijkstra_returnPath shows a route that has to double back upward.
func ExampleDijkstra_returnPath() {
	g, _ := costgrid.ParseString("19111\n19191\n11191")

	res, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", res.Cost)
	for _, c := range res.Path {
		fmt.Printf("(%d,%d) ", c.Row, c.Col)
	}
	fmt.Println()
	// Output:
	// cost: 10
	// (0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2) (0,3) (0,4) (1,4) (2,4)
}

// ExampleDijkstra_wallCost turns every 9 into a wall and caps the distance.
func ExampleDijkstra_wallCost() {
	g, _ := costgrid.ParseString("1919\n1119\n9911")

	res, err := dijkstra.Dijkstra(g, dijkstra.WithWallCost(9))
	fmt.Println(res.Cost, err)

	_, err = dijkstra.Dijkstra(g, dijkstra.WithWallCost(9), dijkstra.WithMaxDistance(4))
	fmt.Println(err != nil)
	// Output:
	// 5 <nil>
	// true
}
