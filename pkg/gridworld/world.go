// Package gridworld owns the tile grid a single simulation run plays out
// on: placement of resources, per-tick regrowth, and food queries. A run
// owns its World exclusively, so unlike the gene-pool store this type holds
// no internal lock — see spec §4.1 and the Design Notes on ownership.
package gridworld

import "math"

// World is a width x height grid of tiles.
type World struct {
	Width  int
	Height int
	tiles  [][]Tile // tiles[x][y]
}

// New creates a new all-Empty grid of the given dimensions.
func New(width, height int) *World {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
	}
	return &World{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x,y) lies inside the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// TileAt returns the tile at (x,y). Callers must check InBounds first;
// out-of-range coordinates return the zero Tile.
func (w *World) TileAt(x, y int) Tile {
	if !w.InBounds(x, y) {
		return Tile{}
	}
	return w.tiles[x][y]
}

// Rand is the minimal randomness surface resource placement needs.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// InitializeResources places plants and food tiles by sampling positions
// uniformly at random. A sampled position is only written if it is
// currently Empty; collisions are silently dropped, so the requested counts
// (derived from density * area) are upper bounds, not guarantees.
func (w *World) InitializeResources(rng Rand, plantDensity, foodDensity float64) {
	plantCount := int(float64(w.Width*w.Height) * plantDensity)
	foodCount := int(float64(w.Width*w.Height) * foodDensity)

	for i := 0; i < plantCount; i++ {
		x, y := rng.Intn(w.Width), rng.Intn(w.Height)
		if w.tiles[x][y].Kind == Empty {
			w.tiles[x][y] = NewPlant(10, 10)
		}
	}

	for i := 0; i < foodCount; i++ {
		x, y := rng.Intn(w.Width), rng.Intn(w.Height)
		if w.tiles[x][y].Kind == Empty {
			amount := 5 + rng.Intn(11) // uniform in [5,15]
			w.tiles[x][y] = NewFood(amount)
		}
	}
}

// GetAvailableFood returns how much food can currently be eaten at (x,y).
func (w *World) GetAvailableFood(x, y int) int {
	if !w.InBounds(x, y) {
		return 0
	}
	return w.tiles[x][y].availableFood()
}

// ConsumeFood removes up to requested food from (x,y) and returns the
// amount actually consumed. Depleting a Plant to zero starts its regrowth
// timer; depleting Food to zero collapses the tile to Empty.
func (w *World) ConsumeFood(x, y, requested int) int {
	if !w.InBounds(x, y) {
		return 0
	}
	tile := &w.tiles[x][y]

	switch tile.Kind {
	case Plant:
		actual := min(tile.CurrentFood, requested)
		tile.CurrentFood -= actual
		if tile.CurrentFood == 0 {
			tile.RegrowthTimer = 10
		}
		return actual
	case Food:
		actual := min(tile.Amount, requested)
		tile.Amount -= actual
		if tile.Amount == 0 {
			*tile = Tile{Kind: Empty}
		}
		return actual
	default:
		return 0
	}
}

// TickPlants advances regrowth for every Plant tile below max food. Under
// continuous depletion this regrows one unit of food every 10 ticks.
func (w *World) TickPlants() {
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			tile := &w.tiles[x][y]
			if tile.Kind != Plant || tile.CurrentFood >= tile.MaxFood {
				continue
			}

			if tile.RegrowthTimer > 0 {
				tile.RegrowthTimer--
				if tile.RegrowthTimer == 0 {
					tile.CurrentFood++
					if tile.CurrentFood < tile.MaxFood {
						tile.RegrowthTimer = 10
					}
				}
			} else {
				tile.CurrentFood++
				if tile.CurrentFood < tile.MaxFood {
					tile.RegrowthTimer = 10
				}
			}
		}
	}
}

// FoodSighting is one tile visible within a vision radius.
type FoodSighting struct {
	X, Y      int
	Available int
}

// FindFoodInRadius scans the axis-aligned bounding box of radius r around
// (cx,cy), keeping tiles within Euclidean distance r that have available
// food. Results are in row-major scan order over the bounding box; there is
// no nearest-neighbor guarantee, and the simulation deliberately treats the
// first result as "nearest enough".
func (w *World) FindFoodInRadius(cx, cy int, r float64) []FoodSighting {
	var found []FoodSighting

	rCeil := int(math.Ceil(r))
	minX, maxX := cx-rCeil, cx+rCeil
	minY, maxY := cy-rCeil, cy+rCeil

	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= w.Height {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= w.Width {
				continue
			}
			dx, dy := float64(x-cx), float64(y-cy)
			if math.Sqrt(dx*dx+dy*dy) > r {
				continue
			}
			available := w.tiles[x][y].availableFood()
			if available <= 0 {
				continue
			}
			found = append(found, FoodSighting{X: x, Y: y, Available: available})
		}
	}

	return found
}
