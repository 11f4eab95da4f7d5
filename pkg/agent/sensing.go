package agent

import "github.com/maccam912/evo-islands-go/pkg/gridworld"

// NearestSighting returns the first food sighting within radius of (x,y), in
// the grid's row-major scan order. There is no strict nearest-neighbor
// guarantee — see gridworld.FindFoodInRadius — and the simulation
// deliberately treats this as "nearest enough".
func NearestSighting(w *gridworld.World, x, y int, radius float64) (gridworld.FoodSighting, bool) {
	sightings := w.FindFoodInRadius(x, y, radius)
	if len(sightings) == 0 {
		return gridworld.FoodSighting{}, false
	}
	return sightings[0], true
}
