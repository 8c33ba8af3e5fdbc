// Package builder provides internal helper functions and types
// for configuring ID schemes in network constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a station identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// StationIDFn returns "S" + decimal index, e.g. 0→"S0", 42→"S42".
// Never panics.
func StationIDFn(idx int) string {
	return "S" + strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// NamesIDFn maps idx to names[idx]. Panics if idx is out of range.
func NamesIDFn(names ...string) IDFn {
	return func(idx int) string {
		if idx < 0 || idx >= len(names) {
			panic(fmt.Sprintf("NamesIDFn: idx must be in [0,%d), got %d", len(names), idx))
		}

		return names[idx]
	}
}
