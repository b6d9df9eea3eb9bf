package engine

import "sort"

type crossCell struct {
	code string
	key  Key
}

// buildCrossTab pivots classified sales rows into Helios code rows by
// "<cluster> | <employee>" columns. Missing combinations are
// zero-filled, codes and columns are sorted, and a grand Total row is
// appended last.
func (e *Engine) buildCrossTab(rows []Row) CrossTab {
	colSeen := make(map[Key]bool)
	var colKeys []Key
	codeSeen := make(map[string]bool)
	var codes []string
	sums := make(map[crossCell]float64)

	for _, row := range rows {
		k := Key{Cluster: row.Cluster, Employee: row.Employee}
		if !colSeen[k] {
			colSeen[k] = true
			colKeys = append(colKeys, k)
		}
		if !codeSeen[row.Code] {
			codeSeen[row.Code] = true
			codes = append(codes, row.Code)
		}
		sums[crossCell{code: row.Code, key: k}] += row.Value
	}

	sort.Slice(colKeys, func(i, j int) bool {
		if colKeys[i].Cluster != colKeys[j].Cluster {
			return colKeys[i].Cluster < colKeys[j].Cluster
		}
		return colKeys[i].Employee < colKeys[j].Employee
	})
	sort.Strings(codes)

	ct := CrossTab{Columns: make([]string, len(colKeys))}
	for i, k := range colKeys {
		ct.Columns[i] = k.Cluster + " | " + k.Employee
	}

	grand := make([]float64, len(colKeys))
	for _, code := range codes {
		values := make([]float64, len(colKeys))
		for i, k := range colKeys {
			v := round2(sums[crossCell{code: code, key: k}])
			values[i] = v
			grand[i] += v
		}
		ct.Rows = append(ct.Rows, CrossTabRow{Code: code, Values: values})
	}
	for i := range grand {
		grand[i] = round2(grand[i])
	}
	ct.Rows = append(ct.Rows, CrossTabRow{Code: "Total", Values: grand})
	return ct
}
