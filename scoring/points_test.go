package scoring

import "testing"

func TestBasePoints(t *testing.T) {
	tests := []struct {
		name                   string
		ph, pa, ah, aa, expect int
	}{
		{"exact home win", 2, 1, 2, 1, 3},
		{"exact draw", 1, 1, 1, 1, 3},
		{"exact nil-nil", 0, 0, 0, 0, 3},
		{"exact away win", 0, 3, 0, 3, 3},
		{"correct difference home", 2, 0, 3, 1, 2},
		{"correct difference away", 0, 2, 1, 3, 2},
		{"draw vs different draw", 1, 1, 2, 2, 2},
		{"nil-nil vs two-two", 0, 0, 2, 2, 2},
		{"correct winner home", 1, 0, 3, 0, 1},
		{"correct winner away", 0, 1, 0, 3, 1},
		{"correct winner big margin", 3, 0, 2, 1, 1},
		{"wrong winner", 2, 1, 0, 1, 0},
		{"predicted draw home won", 1, 1, 2, 1, 0},
		{"predicted home win actual draw", 2, 0, 1, 1, 0},
		{"predicted away win home won", 0, 2, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BasePoints(tt.ph, tt.pa, tt.ah, tt.aa); got != tt.expect {
				t.Errorf("BasePoints(%d,%d vs %d,%d) = %d, want %d",
					tt.ph, tt.pa, tt.ah, tt.aa, got, tt.expect)
			}
		})
	}
}

func TestCalculatePointsMultiplierScaling(t *testing.T) {
	// Every base outcome must scale linearly with the multiplier.
	outcomes := []struct {
		name           string
		ph, pa, ah, aa int
		base           int
	}{
		{"exact", 2, 1, 2, 1, 3},
		{"difference", 2, 0, 3, 1, 2},
		{"winner", 1, 0, 3, 0, 1},
		{"none", 2, 1, 0, 1, 0},
	}

	for _, o := range outcomes {
		for m := 1; m <= 3; m++ {
			got := CalculatePoints(o.ph, o.pa, o.ah, o.aa, m)
			if got != o.base*m {
				t.Errorf("%s x%d: got %d, want %d", o.name, m, got, o.base*m)
			}
		}
	}
}

func TestCalculatePointsExactMatchAllMultipliers(t *testing.T) {
	for _, m := range []int{1, 2, 3} {
		for h := 0; h <= 4; h++ {
			for a := 0; a <= 4; a++ {
				if got := CalculatePoints(h, a, h, a, m); got != 3*m {
					t.Fatalf("exact %d-%d x%d: got %d, want %d", h, a, m, got, 3*m)
				}
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name               string
		ph, pa, ah, aa, m  int
		expect             string
	}{
		{"exact", 2, 1, 2, 1, 1, "Exact score!"},
		{"difference", 2, 0, 3, 1, 1, "Correct winner + goal difference"},
		{"winner", 1, 0, 3, 0, 1, "Correct winner"},
		{"none", 1, 1, 2, 1, 1, "No points"},
		{"exact doubled", 2, 1, 2, 1, 2, "Exact score! (×2)"},
		{"none tripled", 1, 1, 2, 1, 3, "No points (×3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.ph, tt.pa, tt.ah, tt.aa, tt.m); got != tt.expect {
				t.Errorf("got %q, want %q", got, tt.expect)
			}
		})
	}
}
