package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"SalesPivotSaas/internal/config"
)

// Engine runs the full aggregation for one request. It holds only the
// read-only rule configuration, so a single Engine is safe for
// concurrent requests; all working data is allocated per call.
type Engine struct {
	rules      *config.Rules
	classifier *Classifier
}

func New(rules *config.Rules) *Engine {
	return &Engine{rules: rules, classifier: NewClassifier(rules)}
}

func (e *Engine) Rules() *config.Rules {
	return e.rules
}

// BuildReport computes the whole rollup: sales and OB rows are
// classified and grouped independently, outer-merged on
// (cluster, employee), rolled up per cluster and per BU, and the
// sales rows pivoted into the cross-tab. Identical inputs always
// produce identical reports.
func (e *Engine) BuildReport(sales, ob []Row, book *TargetBook) *Report {
	salesRows := e.classifier.ClassifyAll(sales)
	obRows := e.classifier.ClassifyAll(ob)

	merged := Reconcile(GroupByClusterEmployee(obRows), GroupByClusterEmployee(salesRows))

	return &Report{
		Performance:   e.buildPerformance(merged, book),
		BUPerformance: e.buildBU(GroupByBU(salesRows), GroupByBU(obRows), book),
		CrossTab:      e.buildCrossTab(salesRows),
	}
}

// rescale divides by the configured unit scale and rounds to the
// configured precision. Every monetary figure passes through here at
// the point of emission.
func (e *Engine) rescale(v float64) float64 {
	d := decimal.NewFromFloat(v)
	if e.rules.Scale != 1 && e.rules.Scale != 0 {
		d = d.Div(decimal.NewFromFloat(e.rules.Scale))
	}
	f, _ := d.Round(e.rules.Decimals).Float64()
	return f
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func ptr(v float64) *float64 {
	return &v
}

// buildPerformance emits, per cluster in first-appearance order, one
// subtotal row followed by one row per member employee.
//
// The null policies differ by granularity on purpose: a cluster whose
// target cannot be resolved reports null remaining/achievement, while
// an employee without a target reports zeros. Achievement is null
// whenever the resolved target is not positive.
func (e *Engine) buildPerformance(merged []ReconciledRow, book *TargetBook) []PerformanceRow {
	var clusterOrder []string
	byCluster := make(map[string][]ReconciledRow)
	for _, row := range merged {
		if _, seen := byCluster[row.Cluster]; !seen {
			clusterOrder = append(clusterOrder, row.Cluster)
		}
		byCluster[row.Cluster] = append(byCluster[row.Cluster], row)
	}

	rows := make([]PerformanceRow, 0, len(merged)+len(clusterOrder))
	for _, cluster := range clusterOrder {
		members := byCluster[cluster]

		var obSum, salesSum float64
		names := make([]string, 0, len(members))
		for _, m := range members {
			obSum += m.OB
			salesSum += m.Sales
			names = append(names, m.Employee)
		}
		obTotal := e.rescale(obSum)
		salesTotal := e.rescale(salesSum)

		sub := PerformanceRow{
			Cluster:    cluster,
			Employee:   cluster + " Total",
			Subtotal:   true,
			OBTotal:    obTotal,
			SalesTotal: salesTotal,
		}
		if raw := book.ClusterTarget(cluster, names); raw != nil {
			target := e.rescale(*raw)
			sub.Target = ptr(target)
			sub.OBRemaining = ptr(round2(target - obTotal))
			sub.SalesRemaining = ptr(round2(target - salesTotal))
			if target > 0 {
				sub.OBAchievementPct = ptr(round2(obTotal / target * 100))
				sub.SalesAchievementPct = ptr(round2(salesTotal / target * 100))
			}
		}
		rows = append(rows, sub)

		for _, m := range members {
			row := PerformanceRow{
				Cluster:    cluster,
				Employee:   m.Employee,
				OBTotal:    e.rescale(m.OB),
				SalesTotal: e.rescale(m.Sales),
			}
			target := 0.0
			if raw := book.EmployeeTarget(m.Employee); raw > 0 {
				target = e.rescale(raw)
			}
			row.Target = ptr(target)
			if target > 0 {
				row.OBRemaining = ptr(round2(target - row.OBTotal))
				row.SalesRemaining = ptr(round2(target - row.SalesTotal))
				row.OBAchievementPct = ptr(round2(row.OBTotal / target * 100))
				row.SalesAchievementPct = ptr(round2(row.SalesTotal / target * 100))
			} else {
				row.OBRemaining, row.SalesRemaining = ptr(0), ptr(0)
				row.OBAchievementPct, row.SalesAchievementPct = ptr(0), ptr(0)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// buildBU emits one row per BU target entry in sheet order; units
// present in the data but absent from the target sheet get no row.
// BU achievement never reports unknown.
func (e *Engine) buildBU(salesBU, obBU *BUTotals, book *TargetBook) []BURow {
	rows := make([]BURow, 0, len(book.BUNames()))
	for _, name := range book.BUNames() {
		target := book.BUTarget(name)
		sales := salesBU.Sum(name)
		ob := obBU.Sum(name)
		rows = append(rows, BURow{
			BU:               name,
			OB:               e.rescale(ob),
			OBRemaining:      e.rescale(target - ob),
			OBAchievement:    formatAchievement(ob, target),
			Sales:            e.rescale(sales),
			SalesRemaining:   e.rescale(target - sales),
			SalesAchievement: formatAchievement(sales, target),
			Target:           e.rescale(target),
		})
	}
	return rows
}

func formatAchievement(value, target float64) string {
	if target <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", value/target*100)
}
