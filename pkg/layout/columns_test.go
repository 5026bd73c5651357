package layout

import "testing"

func TestBaselineColumns(t *testing.T) {
	tests := []struct {
		groups int
		want   int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{6, 4},
		{7, 5},
		{9, 5},
		{10, 6},
		{20, 6},
	}

	for _, tt := range tests {
		if got := baselineColumns(tt.groups); got != tt.want {
			t.Errorf("baselineColumns(%d) = %d, want %d", tt.groups, got, tt.want)
		}
	}
}

func TestColumnCapacity(t *testing.T) {
	tests := []struct {
		columns int
		want    float64
	}{
		{2, 12},
		{3, 11},
		{4, 9},
		{5, 8},
		{6, 8},
		{13, 8},
	}

	for _, tt := range tests {
		if got := columnCapacity(tt.columns); got != tt.want {
			t.Errorf("columnCapacity(%d) = %v, want %v", tt.columns, got, tt.want)
		}
	}
}

func TestPlanColumns(t *testing.T) {
	tests := []struct {
		name            string
		groups          int
		productsPerGrp  int
		wantBaseline    int
		wantDemand      int
		wantColumns     int
	}{
		{
			// 10 products + 2 headers at weight 2 = 14 units, well inside
			// two columns of capacity 12.
			name:           "small board stays at baseline",
			groups:         2,
			productsPerGrp: 5,
			wantBaseline:   2,
			wantDemand:     2,
			wantColumns:    2,
		},
		{
			// 18 products + 4 = 22 units: demand stays at 2 but the safety
			// margin (90% of 24) opens a third column.
			name:           "safety margin opens a column",
			groups:         2,
			productsPerGrp: 9,
			wantBaseline:   2,
			wantDemand:     2,
			wantColumns:    3,
		},
		{
			// 80 products + 20 = 100 units over capacity 8: demand runs far
			// past the window, the clamp catches it later.
			name:           "demand dominates baseline",
			groups:         10,
			productsPerGrp: 8,
			wantBaseline:   6,
			wantDemand:     13,
			wantColumns:    14,
		},
		{
			name:           "empty content",
			groups:         0,
			productsPerGrp: 0,
			wantBaseline:   2,
			wantDemand:     0,
			wantColumns:    2,
		},
		{
			// 5 groups raise the baseline to 4 even with a single product
			// each: 5 products + 10 = 15 units, demand only 2.
			name:           "baseline dominates demand",
			groups:         5,
			productsPerGrp: 1,
			wantBaseline:   4,
			wantDemand:     2,
			wantColumns:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := testCatalog(tt.groups, tt.productsPerGrp)
			content := Select(cat, selectAll(cat))

			plan := planColumns(content)
			if plan.baseline != tt.wantBaseline {
				t.Errorf("baseline = %d, want %d", plan.baseline, tt.wantBaseline)
			}
			if plan.demand != tt.wantDemand {
				t.Errorf("demand = %d, want %d", plan.demand, tt.wantDemand)
			}
			if plan.columns != tt.wantColumns {
				t.Errorf("columns = %d, want %d", plan.columns, tt.wantColumns)
			}
		})
	}
}

func TestClampColumns(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 2},
		{0, 2},
		{1, 2},
		{2, 2},
		{4, 4},
		{6, 6},
		{7, 6},
		{14, 6},
	}

	for _, tt := range tests {
		if got := clampColumns(tt.in); got != tt.want {
			t.Errorf("clampColumns(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
