package agent

import (
	"testing"

	"github.com/maccam912/evo-islands-go/pkg/creature"
	"github.com/maccam912/evo-islands-go/pkg/genome"
)

func TestResolveTileNoCombatantsOrFoodIsNoop(t *testing.T) {
	if eaten := ResolveTile(nil, 10); eaten != 0 {
		t.Errorf("ResolveTile(nil, 10) = %d; want 0", eaten)
	}
	c := creature.New("lineage", genome.New(0.5, 0.5, 0.5, 0.5, 0.5), 0, 0)
	if eaten := ResolveTile([]*creature.Creature{&c}, 0); eaten != 0 {
		t.Errorf("ResolveTile with zero available = %d; want 0", eaten)
	}
}

func TestResolveTileLoneCreatureEatsCapped(t *testing.T) {
	c := creature.New("lineage", genome.New(0.5, 0.5, 0.5, 0.5, 0.5), 0, 0)
	startEnergy := c.Energy

	eaten := ResolveTile([]*creature.Creature{&c}, 3)
	if eaten != 3 {
		t.Errorf("eaten = %d; want 3 (capped by available)", eaten)
	}
	if c.Energy != startEnergy+3 {
		t.Errorf("Energy = %v; want %v", c.Energy, startEnergy+3)
	}
	if c.FoodEaten != 3 {
		t.Errorf("FoodEaten = %d; want 3", c.FoodEaten)
	}
}

func TestResolveTileLoneCreatureEatAmountCap(t *testing.T) {
	c := creature.New("lineage", genome.New(0.5, 0.5, 0.5, 0.5, 0.5), 0, 0)
	eaten := ResolveTile([]*creature.Creature{&c}, 1000)
	if eaten != EatAmount {
		t.Errorf("eaten = %d; want EatAmount=%d", eaten, EatAmount)
	}
}

func TestResolveTileStrongestWinsAndOthersTakeDamage(t *testing.T) {
	strong := creature.New("strong", genome.New(1.0, 0.1, 1.0, 0.1, 0.1), 0, 0)
	weak := creature.New("weak", genome.New(0.0, 0.1, 0.0, 0.1, 0.1), 0, 0)

	weakStartHealth := weak.Health
	weakStartEnergy := weak.Energy
	strongStartEnergy := strong.Energy

	combatants := []*creature.Creature{&weak, &strong}
	eaten := ResolveTile(combatants, EatAmount)

	if eaten != EatAmount {
		t.Fatalf("eaten = %d; want %d", eaten, EatAmount)
	}
	if strong.Energy != strongStartEnergy+float64(EatAmount) {
		t.Errorf("winner Energy = %v; want %v", strong.Energy, strongStartEnergy+float64(EatAmount))
	}
	if strong.FoodEaten != EatAmount {
		t.Errorf("winner FoodEaten = %d; want %d", strong.FoodEaten, EatAmount)
	}
	if weak.Energy != weakStartEnergy {
		t.Errorf("loser Energy changed: %v; want unchanged %v", weak.Energy, weakStartEnergy)
	}
	if weak.Health >= weakStartHealth {
		t.Errorf("loser Health = %v; want less than starting %v", weak.Health, weakStartHealth)
	}

	wantDamage := DamageFactor * strong.Genome.CombatPower()
	wantHealth := weakStartHealth - wantDamage
	if weak.Health != wantHealth {
		t.Errorf("loser Health = %v; want %v", weak.Health, wantHealth)
	}
}

func TestSortByCombatPowerDescendingIsStableOnTies(t *testing.T) {
	a := creature.New("a", genome.New(0.5, 0.5, 0.5, 0.5, 0.5), 0, 0)
	b := creature.New("b", genome.New(0.5, 0.5, 0.5, 0.5, 0.5), 1, 1)
	combatants := []*creature.Creature{&a, &b}

	SortByCombatPowerDescending(combatants)

	if combatants[0] != &a || combatants[1] != &b {
		t.Errorf("equal-power sort reordered ties; want original order preserved")
	}
}
