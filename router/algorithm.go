package router

import (
	"fmt"
	"strings"
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

var algorithmNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// Algorithms returns every algorithm in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar}
}

func (a Algorithm) valid() bool {
	return a >= BFS && a <= AStar
}

// String returns the lower-case name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. "a*" is
// accepted as an alias of "astar".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
