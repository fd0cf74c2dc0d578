package matcher

import (
	"testing"
)

func TestAssign_Empty(t *testing.T) {
	if result := Assign(nil, PaddingCost); result != nil {
		t.Errorf("expected nil for empty cost matrix, got %v", result)
	}
}

func TestAssign_NoColumns(t *testing.T) {
	result := Assign([][]float64{{}, {}}, PaddingCost)
	for i, j := range result {
		if j != -1 {
			t.Errorf("row %d assigned to %d with no columns", i, j)
		}
	}
}

func TestAssign_SquareOptimal(t *testing.T) {
	//   [1 2 3]     optimal: 1 + 4 + 5 = 10
	//   [4 4 6]
	//   [9 8 5]
	cost := [][]float64{
		{1, 2, 3},
		{4, 4, 6},
		{9, 8, 5},
	}
	result := Assign(cost, PaddingCost)
	if len(result) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(result))
	}

	total := 0.0
	seen := map[int]bool{}
	for i, j := range result {
		if j < 0 {
			t.Fatalf("row %d unassigned", i)
		}
		if seen[j] {
			t.Fatalf("column %d assigned twice: %v", j, result)
		}
		seen[j] = true
		total += cost[i][j]
	}
	if total != 10 {
		t.Errorf("expected optimal cost 10, got %v (assignments: %v)", total, result)
	}
}

func TestAssign_MoreRowsThanCols(t *testing.T) {
	cost := [][]float64{
		{1, 10},
		{10, 1},
		{5, 5},
	}
	result := Assign(cost, PaddingCost)
	if result[0] != 0 || result[1] != 1 || result[2] != -1 {
		t.Errorf("expected [0 1 -1], got %v", result)
	}
}

func TestAssign_MoreColsThanRows(t *testing.T) {
	cost := [][]float64{
		{7, 3, 9},
	}
	result := Assign(cost, PaddingCost)
	if len(result) != 1 || result[0] != 1 {
		t.Errorf("expected [1], got %v", result)
	}
}

func TestAssign_PrefersRealOverPadding(t *testing.T) {
	cost := [][]float64{
		{NoComparisonCost, NoComparisonCost},
	}
	result := Assign(cost, PaddingCost)
	if result[0] < 0 {
		t.Errorf("row with only no-comparison costs must still be assigned, got %v", result)
	}
}
