package agent

import (
	"github.com/maccam912/evo-islands-go/pkg/creature"
	"github.com/maccam912/evo-islands-go/pkg/gridworld"
)

// ActionRand is the randomness surface action selection and movement need.
type ActionRand interface {
	Intn(n int) int
	Float64() float64
}

// ChooseDirection implements the sensing/action-selection step of the tick
// pipeline: move toward the first visible food sighting within vision
// radius, or a uniformly random compass direction if none is visible.
func ChooseDirection(w *gridworld.World, c creature.Creature, rng ActionRand) Direction {
	radius := c.Genome.VisionRadius()
	if sighting, ok := NearestSighting(w, c.X, c.Y, radius); ok {
		return DirectionTo(c.X, c.Y, sighting.X, sighting.Y)
	}
	return RandomDirection(rng)
}

// AttemptMove rolls the creature's movement probability and, on success,
// applies the unit step in dir. A step that would leave the grid is
// rejected silently and the creature stays put.
func AttemptMove(w *gridworld.World, c *creature.Creature, dir Direction, rng ActionRand) {
	if rng.Float64() > c.MovementProbability() {
		return
	}

	newX, newY := c.X+dir.DX, c.Y+dir.DY
	if !w.InBounds(newX, newY) {
		return
	}
	c.X, c.Y = newX, newY
}
