package agent

import "testing"

func TestDirectionToSignsEachAxisIndependently(t *testing.T) {
	cases := []struct {
		fromX, fromY, toX, toY int
		wantDX, wantDY         int
	}{
		{0, 0, 5, 5, 1, 1},
		{0, 0, -5, -5, -1, -1},
		{0, 0, 0, 5, 0, 1},
		{5, 5, 5, 5, 0, 0},
	}
	for _, c := range cases {
		got := DirectionTo(c.fromX, c.fromY, c.toX, c.toY)
		if got.DX != c.wantDX || got.DY != c.wantDY {
			t.Errorf("DirectionTo(%d,%d -> %d,%d) = %+v; want (%d,%d)",
				c.fromX, c.fromY, c.toX, c.toY, got, c.wantDX, c.wantDY)
		}
	}
}

type stubIntRand struct{ n int }

func (s stubIntRand) Intn(int) int { return s.n }

func TestRandomDirectionUsesRng(t *testing.T) {
	got := RandomDirection(stubIntRand{n: 2})
	want := EightDirections[2]
	if got != want {
		t.Errorf("RandomDirection = %+v; want %+v", got, want)
	}
}
