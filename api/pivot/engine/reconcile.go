package engine

// ReconciledRow carries both measures for one (cluster, employee).
type ReconciledRow struct {
	Key
	OB    float64
	Sales float64
}

// Reconcile outer-merges the two groupings: the union of both key
// sets, with zero filled in for the side an employee is missing from.
// No combination present in either input is dropped or duplicated.
// Keys come out in OB first-appearance order followed by sales-only
// keys in their own order, which also fixes the cluster walk order
// downstream.
func Reconcile(ob, sales *Totals) []ReconciledRow {
	out := make([]ReconciledRow, 0, len(ob.Keys())+len(sales.Keys()))
	for _, k := range ob.Keys() {
		row := ReconciledRow{Key: k}
		row.OB, _ = ob.Sum(k)
		row.Sales, _ = sales.Sum(k)
		out = append(out, row)
	}
	for _, k := range sales.Keys() {
		if _, inOB := ob.Sum(k); inOB {
			continue
		}
		row := ReconciledRow{Key: k}
		row.Sales, _ = sales.Sum(k)
		out = append(out, row)
	}
	return out
}
