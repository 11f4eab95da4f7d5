package simulation

// Config holds the per-run tunables the engine needs; coordinator-side
// defaults live in pkg/config, but a run only ever sees this plain value.
type Config struct {
	GridWidth             int
	GridHeight            int
	MaxSteps              int
	PlantDensity          float64
	FoodDensity           float64
	ReproductionThreshold float64
	MutationRate          float64 // per-trait rate applied to children born in this run
}

// DefaultConfig mirrors spec §6's coordinator-side defaults.
func DefaultConfig() Config {
	return Config{
		GridWidth:             300,
		GridHeight:            300,
		MaxSteps:              3000,
		PlantDensity:          0.08,
		FoodDensity:           0.04,
		ReproductionThreshold: 60,
		MutationRate:          0.05,
	}
}
