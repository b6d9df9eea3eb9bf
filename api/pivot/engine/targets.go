package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"SalesPivotSaas/api/constants"
)

// TargetBook holds the per-employee and per-BU target lookups for one
// request. BU entries keep their sheet order so performance rows come
// out in the order the target file lists them.
type TargetBook struct {
	employee map[string]float64
	bu       map[string]float64
	buOrder  []string
}

// NewTargetBook builds a TargetBook from the two raw target tables,
// header row first. Target cells are coerced to numbers with blank or
// non-numeric cells counting as zero. A missing required column is a
// fatal input error.
func NewTargetBook(empTable, buTable [][]string) (*TargetBook, error) {
	book := &TargetBook{
		employee: make(map[string]float64),
		bu:       make(map[string]float64),
	}
	err := loadTargetTable(empTable, constants.SheetEmployeeTargets, constants.ColEmployee,
		func(name string, target float64) {
			book.employee[name] = target
		})
	if err != nil {
		return nil, err
	}
	err = loadTargetTable(buTable, constants.SheetBUTargets, constants.ColBU,
		func(name string, target float64) {
			if _, seen := book.bu[name]; !seen {
				book.buOrder = append(book.buOrder, name)
			}
			book.bu[name] = target
		})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func loadTargetTable(table [][]string, sheet, keyCol string, put func(string, float64)) error {
	if len(table) == 0 {
		return fmt.Errorf("sheet %q has no header row", sheet)
	}
	keyIdx, targetIdx := -1, -1
	for i, h := range table[0] {
		switch strings.TrimSpace(h) {
		case keyCol:
			keyIdx = i
		case constants.ColTarget:
			targetIdx = i
		}
	}
	if keyIdx < 0 || targetIdx < 0 {
		return fmt.Errorf("sheet %q must have %q and %q columns", sheet, keyCol, constants.ColTarget)
	}
	for _, row := range table[1:] {
		name := ""
		if keyIdx < len(row) {
			name = strings.TrimSpace(row[keyIdx])
		}
		if name == "" {
			continue
		}
		cell := ""
		if targetIdx < len(row) {
			cell = strings.TrimSpace(row[targetIdx])
		}
		put(name, CoerceNumber(cell))
	}
	return nil
}

// CoerceNumber parses a numeric cell, tolerating thousand separators.
// Anything unparseable counts as zero so a sloppy target file cannot
// fail a whole upload.
func CoerceNumber(cell string) float64 {
	if cell == "" {
		return 0
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", ""))
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// EmployeeTarget returns the target assigned to an employee, zero when
// none is.
func (b *TargetBook) EmployeeTarget(name string) float64 {
	return b.employee[name]
}

// ClusterTarget resolves a cluster target in two tiers: an entry filed
// under the cluster label itself wins as an explicit override,
// otherwise the members' targets are summed. Nil when neither the
// cluster nor any member appears in the table, which downstream
// reports as "no target" rather than zero.
func (b *TargetBook) ClusterTarget(cluster string, members []string) *float64 {
	if override, ok := b.employee[cluster]; ok {
		return &override
	}
	sum := 0.0
	found := false
	for _, member := range members {
		if target, ok := b.employee[member]; ok {
			sum += target
			found = true
		}
	}
	if !found {
		return nil
	}
	return &sum
}

// BUTarget returns the target for a business unit, zero when absent.
func (b *TargetBook) BUTarget(name string) float64 {
	return b.bu[name]
}

// BUNames returns the BU target entries in sheet order.
func (b *TargetBook) BUNames() []string {
	return b.buOrder
}
