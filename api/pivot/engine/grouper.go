package engine

// Totals is an insertion-ordered sum of the measure keyed by
// (cluster, employee).
type Totals struct {
	keys []Key
	sums map[Key]float64
}

// GroupByClusterEmployee sums the measure per (cluster, employee)
// using each row's already-classified cluster, keeping keys in order
// of first appearance. Zero and negative values participate like any
// other; no row is excluded.
func GroupByClusterEmployee(rows []Row) *Totals {
	t := &Totals{sums: make(map[Key]float64)}
	for _, row := range rows {
		k := Key{Cluster: row.Cluster, Employee: row.Employee}
		if _, seen := t.sums[k]; !seen {
			t.keys = append(t.keys, k)
		}
		t.sums[k] += row.Value
	}
	return t
}

// Keys returns the grouped keys in first-appearance order.
func (t *Totals) Keys() []Key {
	return t.keys
}

// Sum returns the summed measure for a key and whether the key was
// present in the source rows.
func (t *Totals) Sum(k Key) (float64, bool) {
	v, ok := t.sums[k]
	return v, ok
}

// BUTotals is the same shape keyed by business unit.
type BUTotals struct {
	names []string
	sums  map[string]float64
}

// GroupByBU sums the measure per classified business unit in
// first-appearance order.
func GroupByBU(rows []Row) *BUTotals {
	t := &BUTotals{sums: make(map[string]float64)}
	for _, row := range rows {
		if _, seen := t.sums[row.BU]; !seen {
			t.names = append(t.names, row.BU)
		}
		t.sums[row.BU] += row.Value
	}
	return t
}

// Names returns the business units in first-appearance order.
func (t *BUTotals) Names() []string {
	return t.names
}

// Sum returns the summed measure for a business unit, zero when the
// unit never appeared.
func (t *BUTotals) Sum(name string) float64 {
	return t.sums[name]
}
