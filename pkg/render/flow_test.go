package render

import (
	"fmt"
	"testing"

	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/shopspring/decimal"
)

// testContent builds content with the given number of groups, each holding
// perGroup products.
func testContent(groups, perGroup int) layout.Content {
	gs := make([]catalog.Group, 0, groups)
	for i := 1; i <= groups; i++ {
		g := catalog.Group{ID: fmt.Sprintf("g%d", i), Name: fmt.Sprintf("Group %d", i)}
		for j := 1; j <= perGroup; j++ {
			g.Products = append(g.Products, catalog.Product{
				ID:    fmt.Sprintf("g%dp%d", i, j),
				Name:  fmt.Sprintf("Product %d-%d", i, j),
				Price: decimal.NewFromFloat(4.5),
				Unit:  "0.5l",
			})
		}
		gs = append(gs, g)
	}
	return layout.Content{Groups: gs}
}

func TestFlowColumnsCount(t *testing.T) {
	tests := []struct {
		name    string
		content layout.Content
		columns int
	}{
		{"empty content", layout.Content{}, 4},
		{"fewer groups than columns", testContent(1, 2), 5},
		{"dense content", testContent(6, 8), 3},
		{"zero columns clamped to one", testContent(2, 3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.columns
			if want < 1 {
				want = 1
			}
			cols := FlowColumns(tt.content, tt.columns, "EUR")
			if len(cols) != want {
				t.Errorf("got %d columns, want %d", len(cols), want)
			}
		})
	}
}

func TestFlowColumnsPreservesOrder(t *testing.T) {
	content := testContent(3, 4)
	cols := FlowColumns(content, 2, "EUR")

	var headers []string
	var products []string
	for _, col := range cols {
		for _, row := range col.Rows {
			if row.Header {
				headers = append(headers, row.Text)
			} else {
				products = append(products, row.Text)
			}
		}
	}

	wantHeaders := []string{"Group 1", "Group 2", "Group 3"}
	if len(headers) != len(wantHeaders) {
		t.Fatalf("got %d headers, want %d", len(headers), len(wantHeaders))
	}
	for i, h := range wantHeaders {
		if headers[i] != h {
			t.Errorf("header %d: got %q, want %q", i, headers[i], h)
		}
	}

	if len(products) != content.ProductCount() {
		t.Fatalf("got %d products, want %d", len(products), content.ProductCount())
	}
	if products[0] != "Product 1-1" || products[len(products)-1] != "Product 3-4" {
		t.Errorf("products out of order: first %q, last %q", products[0], products[len(products)-1])
	}
}

func TestFlowColumnsBalance(t *testing.T) {
	content := testContent(2, 5)
	cols := FlowColumns(content, 2, "EUR")

	if got := cols[0].Units(); got != 7 {
		t.Errorf("column 0 units: got %v, want 7", got)
	}
	if got := cols[1].Units(); got != 7 {
		t.Errorf("column 1 units: got %v, want 7", got)
	}
}

func TestFlowColumnsHeaderNotOrphaned(t *testing.T) {
	// First group fills the first column exactly, so the second heading
	// must open the next column instead of dangling at the bottom.
	content := testContent(2, 4)
	content.Groups[1].Products = content.Groups[1].Products[:3]
	cols := FlowColumns(content, 2, "EUR")

	last := cols[0].Rows[len(cols[0].Rows)-1]
	if last.Header {
		t.Error("column 0 ends with an orphaned header")
	}
	if len(cols[1].Rows) == 0 || !cols[1].Rows[0].Header {
		t.Error("column 1 should open with the moved header")
	}
}

func TestFlowColumnsRowFields(t *testing.T) {
	cols := FlowColumns(testContent(1, 1), 1, "EUR")

	rows := cols[0].Rows
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].Header || rows[0].Text != "Group 1" || rows[0].Price != "" {
		t.Errorf("unexpected header row: %+v", rows[0])
	}
	if rows[1].Header || rows[1].Text != "Product 1-1" || rows[1].Price != "4.50 €" || rows[1].Unit != "0.5l" {
		t.Errorf("unexpected product row: %+v", rows[1])
	}
}

func TestColumnUnits(t *testing.T) {
	col := Column{Rows: []Row{
		{Header: true, Text: "Drinks"},
		{Text: "Cola", Price: "3.50 €"},
		{Text: "Spezi", Price: "3.50 €"},
	}}
	if got := col.Units(); got != 4 {
		t.Errorf("got %v units, want 4", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		currency string
		want     string
	}{
		{"euro symbol", decimal.NewFromFloat(4.5), "EUR", "4.50 €"},
		{"dollar symbol", decimal.NewFromFloat(10), "USD", "10.00 $"},
		{"pound symbol", decimal.NewFromFloat(3.25), "GBP", "3.25 £"},
		{"unknown currency keeps code", decimal.NewFromFloat(42), "SEK", "42.00 SEK"},
		{"no currency", decimal.NewFromFloat(1.2), "", "1.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPrice(tt.price, tt.currency); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
