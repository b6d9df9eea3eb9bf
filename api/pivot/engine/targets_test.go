package engine

import (
	"strings"
	"testing"
)

func testBook(t *testing.T, empRows, buRows [][]string) *TargetBook {
	t.Helper()
	emp := append([][]string{{"Employee Responsible", "Target"}}, empRows...)
	bu := append([][]string{{"BU", "Target"}}, buRows...)
	book, err := NewTargetBook(emp, bu)
	if err != nil {
		t.Fatalf("NewTargetBook: %v", err)
	}
	return book
}

func TestTargetBookCoercion(t *testing.T) {
	book := testBook(t, [][]string{
		{"Arun", "200"},
		{"Rahul", "1,200.50"},
		{"Sunny", "not-a-number"},
		{"Mahesh", ""},
		{"", "999"}, // blank name rows are skipped
	}, nil)

	tests := []struct {
		name string
		want float64
	}{
		{"Arun", 200},
		{"Rahul", 1200.50},
		{"Sunny", 0},
		{"Mahesh", 0},
		{"Unknown", 0},
	}
	for _, tt := range tests {
		if got := book.EmployeeTarget(tt.name); got != tt.want {
			t.Errorf("EmployeeTarget(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTargetBookMissingColumn(t *testing.T) {
	_, err := NewTargetBook(
		[][]string{{"Name", "Target"}},
		[][]string{{"BU", "Target"}},
	)
	if err == nil {
		t.Fatal("expected error for missing Employee Responsible column")
	}
	if !strings.Contains(err.Error(), "Employee Targets") {
		t.Errorf("error %q should name the sheet", err)
	}

	_, err = NewTargetBook(
		[][]string{{"Employee Responsible", "Target"}},
		[][]string{{"BU", "Amount"}},
	)
	if err == nil {
		t.Fatal("expected error for missing Target column in BU sheet")
	}
	if !strings.Contains(err.Error(), "BU Targets") {
		t.Errorf("error %q should name the sheet", err)
	}

	if _, err := NewTargetBook(nil, [][]string{{"BU", "Target"}}); err == nil {
		t.Fatal("expected error for empty employee table")
	}
}

func TestClusterTargetTwoTier(t *testing.T) {
	book := testBook(t, [][]string{
		{"Arun", "200"},
		{"Abhishek", "300"},
		{"OD", "5000"}, // explicit cluster override
	}, nil)

	t.Run("override wins over member sum", func(t *testing.T) {
		got := book.ClusterTarget("OD", []string{"Arun", "Abhishek"})
		if got == nil || *got != 5000 {
			t.Fatalf("ClusterTarget(OD) = %v, want 5000", got)
		}
	})
	t.Run("member sum when no override", func(t *testing.T) {
		got := book.ClusterTarget("CG", []string{"Arun", "Abhishek", "Stranger"})
		if got == nil || *got != 500 {
			t.Fatalf("ClusterTarget(CG) = %v, want 500", got)
		}
	})
	t.Run("nil when no member known", func(t *testing.T) {
		if got := book.ClusterTarget("JSR", []string{"Stranger"}); got != nil {
			t.Fatalf("ClusterTarget(JSR) = %v, want nil", *got)
		}
	})
}

func TestBUTargetsKeepSheetOrder(t *testing.T) {
	book := testBook(t, nil, [][]string{
		{"SP", "100"},
		{"PP", "1000"},
		{"H&D", "50"},
	})
	want := []string{"SP", "PP", "H&D"}
	got := book.BUNames()
	if len(got) != len(want) {
		t.Fatalf("BUNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BUNames() = %v, want %v", got, want)
		}
	}
	if book.BUTarget("PP") != 1000 {
		t.Errorf("BUTarget(PP) = %v, want 1000", book.BUTarget("PP"))
	}
	if book.BUTarget("IND") != 0 {
		t.Errorf("BUTarget(IND) = %v, want 0 for absent unit", book.BUTarget("IND"))
	}
}
