package engine

import (
	"testing"

	"SalesPivotSaas/internal/config"
)

func TestCrossTabZeroFillAndTotal(t *testing.T) {
	eng := New(config.DefaultRules())
	rows := eng.classifier.ClassifyAll([]Row{
		{Employee: "Sunny", Code: "PP1", Value: 100}, // JSR
		{Employee: "Mayur", Code: "HD1", Value: 40},  // CG
		{Employee: "Sunny", Code: "PP1", Value: 25},
	})

	ct := eng.buildCrossTab(rows)

	// columns sorted by (cluster, employee)
	wantCols := []string{"CG | Mayur", "JSR | Sunny"}
	if len(ct.Columns) != 2 || ct.Columns[0] != wantCols[0] || ct.Columns[1] != wantCols[1] {
		t.Fatalf("Columns = %v, want %v", ct.Columns, wantCols)
	}

	// codes sorted, Total appended last
	if len(ct.Rows) != 3 {
		t.Fatalf("Rows = %+v, want HD1, PP1, Total", ct.Rows)
	}
	if ct.Rows[0].Code != "HD1" || ct.Rows[1].Code != "PP1" || ct.Rows[2].Code != "Total" {
		t.Fatalf("row order = %v %v %v", ct.Rows[0].Code, ct.Rows[1].Code, ct.Rows[2].Code)
	}

	hd, pp, total := ct.Rows[0].Values, ct.Rows[1].Values, ct.Rows[2].Values
	if hd[0] != 40 || hd[1] != 0 {
		t.Errorf("HD1 cells = %v, want [40 0]", hd)
	}
	if pp[0] != 0 || pp[1] != 125 {
		t.Errorf("PP1 cells = %v, want [0 125]", pp)
	}
	if total[0] != 40 || total[1] != 125 {
		t.Errorf("Total cells = %v, want [40 125]", total)
	}
}

func TestCrossTabEmptySales(t *testing.T) {
	eng := New(config.DefaultRules())
	ct := eng.buildCrossTab(nil)
	if len(ct.Columns) != 0 {
		t.Errorf("Columns = %v, want none", ct.Columns)
	}
	if len(ct.Rows) != 1 || ct.Rows[0].Code != "Total" {
		t.Errorf("Rows = %+v, want only the Total row", ct.Rows)
	}
}
