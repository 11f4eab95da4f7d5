package agent

import (
	"sort"

	"github.com/maccam912/evo-islands-go/pkg/creature"
)

// EatAmount is the maximum food a single creature can consume from a tile
// in one tick, win or no contest.
const EatAmount = 10

// DamageFactor scales the winner's combat power into the health damage dealt
// to every other combatant sharing its tile.
const DamageFactor = 0.25

// SortByCombatPowerDescending orders combatants from strongest to weakest,
// breaking ties by leaving equal-power creatures in their original relative
// order (a stable sort).
func SortByCombatPowerDescending(combatants []*creature.Creature) {
	sort.SliceStable(combatants, func(i, j int) bool {
		return combatants[i].Genome.CombatPower() > combatants[j].Genome.CombatPower()
	})
}

// ResolveTile applies the eating/combat rule for every creature occupying
// one tile with available food: a lone creature eats outright; multiple
// creatures fight, the strongest eats and every other combatant takes
// proportional health damage. available is consumed in place by the caller
// via the returned eaten amount.
func ResolveTile(combatants []*creature.Creature, available int) (eaten int) {
	if len(combatants) == 0 || available <= 0 {
		return 0
	}

	if len(combatants) == 1 {
		amount := min(EatAmount, available)
		combatants[0].Energy += float64(amount)
		combatants[0].FoodEaten += amount
		return amount
	}

	SortByCombatPowerDescending(combatants)
	winner := combatants[0]
	amount := min(EatAmount, available)
	winner.Energy += float64(amount)
	winner.FoodEaten += amount

	damage := DamageFactor * winner.Genome.CombatPower()
	for _, loser := range combatants[1:] {
		loser.Health -= damage
	}

	return amount
}
