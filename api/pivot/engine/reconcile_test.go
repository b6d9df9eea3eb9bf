package engine

import "testing"

func TestGroupByClusterEmployeeInsertionOrder(t *testing.T) {
	rows := []Row{
		{Cluster: "OD", Employee: "Arun", Value: 10},
		{Cluster: "CG", Employee: "Mayur", Value: 5},
		{Cluster: "OD", Employee: "Arun", Value: -2.5},
		{Cluster: "OD", Employee: "Abhishek", Value: 0},
	}
	g := GroupByClusterEmployee(rows)

	wantKeys := []Key{
		{Cluster: "OD", Employee: "Arun"},
		{Cluster: "CG", Employee: "Mayur"},
		{Cluster: "OD", Employee: "Abhishek"},
	}
	keys := g.Keys()
	if len(keys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", keys, wantKeys)
	}
	for i, k := range wantKeys {
		if keys[i] != k {
			t.Fatalf("Keys()[%d] = %v, want %v", i, keys[i], k)
		}
	}

	if sum, _ := g.Sum(Key{Cluster: "OD", Employee: "Arun"}); sum != 7.5 {
		t.Errorf("negative values must participate in the sum, got %v", sum)
	}
	if sum, ok := g.Sum(Key{Cluster: "OD", Employee: "Abhishek"}); !ok || sum != 0 {
		t.Errorf("zero-valued employee must keep a group, got %v ok=%v", sum, ok)
	}
}

func TestGroupByBU(t *testing.T) {
	rows := []Row{
		{BU: "PP", Value: 100},
		{BU: "Other", Value: 1},
		{BU: "PP", Value: 50},
	}
	g := GroupByBU(rows)
	if names := g.Names(); len(names) != 2 || names[0] != "PP" || names[1] != "Other" {
		t.Fatalf("Names() = %v, want [PP Other]", names)
	}
	if g.Sum("PP") != 150 {
		t.Errorf("Sum(PP) = %v, want 150", g.Sum("PP"))
	}
}

func TestReconcileOuterCompleteness(t *testing.T) {
	ob := GroupByClusterEmployee([]Row{
		{Cluster: "OD", Employee: "Arun", Value: 40},
		{Cluster: "CG", Employee: "Mayur", Value: 7},
	})
	sales := GroupByClusterEmployee([]Row{
		{Cluster: "OD", Employee: "Arun", Value: 100},
		{Cluster: "JSR", Employee: "Sunny", Value: 9},
	})

	merged := Reconcile(ob, sales)
	if len(merged) != 3 {
		t.Fatalf("Reconcile produced %d rows, want 3: %+v", len(merged), merged)
	}

	byKey := make(map[Key]ReconciledRow, len(merged))
	for _, r := range merged {
		if _, dup := byKey[r.Key]; dup {
			t.Fatalf("duplicate key %v in merged rows", r.Key)
		}
		byKey[r.Key] = r
	}

	tests := []struct {
		key       Key
		ob, sales float64
	}{
		{Key{"OD", "Arun"}, 40, 100},
		{Key{"CG", "Mayur"}, 7, 0},
		{Key{"JSR", "Sunny"}, 0, 9},
	}
	for _, tt := range tests {
		r, ok := byKey[tt.key]
		if !ok {
			t.Fatalf("key %v dropped from merge", tt.key)
		}
		if r.OB != tt.ob || r.Sales != tt.sales {
			t.Errorf("%v = OB %v Sales %v, want OB %v Sales %v", tt.key, r.OB, r.Sales, tt.ob, tt.sales)
		}
	}

	// OB keys first, sales-only keys after
	if merged[0].Key != (Key{"OD", "Arun"}) || merged[1].Key != (Key{"CG", "Mayur"}) || merged[2].Key != (Key{"JSR", "Sunny"}) {
		t.Errorf("merge order wrong: %+v", merged)
	}
}
