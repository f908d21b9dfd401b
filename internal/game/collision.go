package game

// distanceSq returns the squared grid distance between two cells.
func distanceSq(a, b Position) int {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return dr*dr + dc*dc
}

// Collides reports whether a released ghost caught the player during one
// movement step: either they share a cell, or they swapped cells.
func Collides(player, prevPlayer Position, g *Ghost, prevGhost Position) bool {
	if g.Confined {
		return false
	}
	if g.Pos == player {
		return true
	}
	return g.Pos == prevPlayer && prevGhost == player
}

// FindCatcher returns the first ghost that caught the player, or nil.
// prevGhosts holds each ghost's position before the step, by index.
func FindCatcher(player, prevPlayer Position, ghosts []*Ghost, prevGhosts []Position) *Ghost {
	for i, g := range ghosts {
		prev := g.Pos
		if i < len(prevGhosts) {
			prev = prevGhosts[i]
		}
		if Collides(player, prevPlayer, g, prev) {
			return g
		}
	}
	return nil
}
