package metro

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/metrofare/fare"
)

// PathSeparator joins station names in a printed route.
const PathSeparator = " -> "

// Route is the answer to a ShortestRoute query.
type Route struct {
	// Stations lists the route from source to destination inclusive.
	Stations []string

	// Distance is the sum of segment distances.
	Distance int64

	// Fare is the price of Distance under the network's policy.
	Fare int64
}

// PathString renders the stations as "A -> B -> C".
func (r Route) PathString() string {
	return strings.Join(r.Stations, PathSeparator)
}

// Report writes the route in the form
//
//	Shortest path from A to C:
//	A -> B -> C
//	Total distance: 8
//	Minimum fare: Rs.26
func (r Route) Report(w io.Writer, source, destination string) error {
	_, err := fmt.Fprintf(w, "Shortest path from %s to %s:\n%s\nTotal distance: %d\nMinimum fare: %s\n",
		source, destination, r.PathString(), r.Distance, fare.Format(r.Fare))

	return err
}

func (r Route) clone() Route {
	r.Stations = append([]string(nil), r.Stations...)

	return r
}

// WriteNoPath writes the "no path" notice for a failed query, naming every
// station that is not part of the network.
func (n *Network) WriteNoPath(w io.Writer, source, destination string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "No path exists from %s to %s.\n", source, destination)
	for _, id := range unique(source, destination) {
		if !n.graph.HasStation(id) {
			fmt.Fprintf(&b, "Station %q is not part of the network.\n", id)
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func unique(a, b string) []string {
	if a == b {
		return []string{a}
	}

	return []string{a, b}
}
