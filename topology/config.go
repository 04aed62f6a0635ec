package topology

// Coordinate is a fixed 2D position for a router. Positions never change
// after construction and are only consulted by heuristic-guided routing.
type Coordinate struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// Link is an undirected weighted connection between two routers.
type Link struct {
	A      int     `toml:"a" json:"a"`
	B      int     `toml:"b" json:"b"`
	Weight float64 `toml:"weight" json:"weight"`
}

// Config is the explicit construction input for a Network: which routers
// exist, where they sit, and how they are wired. Making this an explicit
// value (rather than hidden package data) keeps topology a testable input.
type Config struct {
	Coordinates map[int]Coordinate `toml:"coordinates" json:"coordinates"`
	Links       []Link             `toml:"links" json:"links"`
}

// MaxRouters is the size of the built-in coordinate table. DefaultConfig
// rejects router counts beyond it.
const MaxRouters = 12

// defaultCoordinates places routers on a shallow zig-zag so neighboring ids
// sit near each other in the plane.
var defaultCoordinates = [MaxRouters]Coordinate{
	{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 3, Y: 2},
	{X: 4, Y: 0}, {X: 5, Y: 2}, {X: 6, Y: 0}, {X: 7, Y: 2},
	{X: 8, Y: 0}, {X: 9, Y: 2}, {X: 10, Y: 0}, {X: 11, Y: 2},
}

// defaultLinks is the reference wiring. Links whose endpoints fall outside
// the requested router count are simply not included.
var defaultLinks = []Link{
	{A: 0, B: 1, Weight: 1.0},
	{A: 0, B: 2, Weight: 2.0},
	{A: 1, B: 2, Weight: 1.0},
	{A: 1, B: 3, Weight: 3.0},
	{A: 2, B: 3, Weight: 2.0},
	{A: 2, B: 4, Weight: 2.0},
	{A: 3, B: 4, Weight: 1.0},
	{A: 3, B: 5, Weight: 2.0},
	{A: 4, B: 5, Weight: 1.0},
	{A: 5, B: 6, Weight: 2.0},
	{A: 6, B: 7, Weight: 1.0},
	{A: 7, B: 8, Weight: 2.0},
	{A: 8, B: 9, Weight: 1.0},
	{A: 9, B: 10, Weight: 2.0},
	{A: 10, B: 11, Weight: 1.0},
}

// DefaultConfig builds the built-in configuration for n routers (ids 0..n-1).
// Returns ErrBadRouterCount if n is negative or exceeds MaxRouters.
func DefaultConfig(n int) (Config, error) {
	if n < 0 || n > MaxRouters {
		return Config{}, ErrBadRouterCount
	}

	coords := make(map[int]Coordinate, n)
	for id := 0; id < n; id++ {
		coords[id] = defaultCoordinates[id]
	}

	links := make([]Link, 0, len(defaultLinks))
	for _, l := range defaultLinks {
		if l.A >= n || l.B >= n {
			continue
		}
		links = append(links, l)
	}

	return Config{Coordinates: coords, Links: links}, nil
}
