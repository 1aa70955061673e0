package dashboard

import "testing"

func TestLoyaltyPointsFor(t *testing.T) {
	cases := []struct {
		spent float64
		want  int
	}{
		{0, 0},
		{9.99, 0},
		{10, 1},
		{19.5, 1},
		{100, 10},
		{249.90, 24},
	}
	for _, tc := range cases {
		if got := loyaltyPointsFor(tc.spent); got != tc.want {
			t.Errorf("loyaltyPointsFor(%.2f) = %d, want %d", tc.spent, got, tc.want)
		}
	}
}
