package rules

// Rule describes a life-like automaton by the neighbor counts that bring a
// dead cell to life (Birth) and keep a living cell alive (Survive).
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the standard B3/S23 rule
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next returns the state of a cell with the given number of living neighbors
// after one generation. Counts outside [0, 8] always yield a dead cell.
func (r Rule) Next(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.Next(neighbors, alive)
}
