// Package dijkstra_test provides examples demonstrating the shortest-path search.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metrofare/core"
	"github.com/katalvlaran/metrofare/dijkstra"
)

// ExampleShortestPath finds a route across two segments.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("Ameerpet", "Punjagutta", 5)
	_ = g.AddEdge("Punjagutta", "Irrum Manzil", 3)

	p, err := dijkstra.ShortestPath(g, "Ameerpet", "Irrum Manzil")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Stations, p.Distance)
	// Output: [Ameerpet Punjagutta Irrum Manzil] 8
}

// ExampleShortestPath_notFound shows how to tell the two NotFound causes apart.
func ExampleShortestPath_notFound() {
	g := core.NewGraph()
	_ = g.AddEdge("Ameerpet", "Punjagutta", 5)
	_ = g.AddEdge("Begumpet", "Rasoolpura", 4)

	for _, dst := range []string{"Rasoolpura", "Secunderabad"} {
		_, err := dijkstra.ShortestPath(g, "Ameerpet", dst)
		fmt.Println(dst, errors.Is(err, dijkstra.ErrNoPath), errors.Is(err, dijkstra.ErrStationNotFound))
	}
	// Output:
	// Rasoolpura true false
	// Secunderabad true true
}
