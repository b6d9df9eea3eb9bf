package engine

// Row is one transaction record. Employee and Code arrive normalized
// from the boundary (missing or non-text cells come through as "");
// Cluster and BU are derived by the Classifier, everything else is
// immutable input.
type Row struct {
	Employee string
	Code     string
	Value    float64
	Cluster  string
	BU       string
}

// Key identifies one employee within a cluster.
type Key struct {
	Cluster  string
	Employee string
}

// PerformanceRow is one emitted employee or cluster-subtotal row.
// Pointer fields are null when the metric is unresolvable at cluster
// granularity; employee rows always carry concrete values, zero when
// no target is assigned.
type PerformanceRow struct {
	Cluster             string   `json:"cluster"`
	Employee            string   `json:"employee"`
	Subtotal            bool     `json:"subtotal"`
	OBTotal             float64  `json:"ob_total"`
	OBRemaining         *float64 `json:"ob_remaining"`
	OBAchievementPct    *float64 `json:"ob_achievement_pct"`
	SalesTotal          float64  `json:"sales_total"`
	SalesRemaining      *float64 `json:"sales_remaining"`
	SalesAchievementPct *float64 `json:"sales_achievement_pct"`
	Target              *float64 `json:"target"`
}

// BURow is one business-unit performance row. Achievement is a
// formatted percentage and never null; "0.00%" stands in when no
// usable target exists.
type BURow struct {
	BU               string  `json:"bu"`
	OB               float64 `json:"ob"`
	OBRemaining      float64 `json:"ob_remaining"`
	OBAchievement    string  `json:"ob_achievement"`
	Sales            float64 `json:"sales"`
	SalesRemaining   float64 `json:"sales_remaining"`
	SalesAchievement string  `json:"sales_achievement"`
	Target           float64 `json:"target"`
}

// CrossTab is the Helios code x "<cluster> | <employee>" pivot of the
// sales dataset, with a grand Total row appended last.
type CrossTab struct {
	Columns []string      `json:"columns"`
	Rows    []CrossTabRow `json:"rows"`
}

// CrossTabRow holds one Helios code's cells, aligned with Columns.
type CrossTabRow struct {
	Code   string    `json:"code"`
	Values []float64 `json:"values"`
}

// Report bundles everything one upload produces.
type Report struct {
	Performance   []PerformanceRow `json:"performance"`
	BUPerformance []BURow          `json:"bu_performance"`
	CrossTab      CrossTab         `json:"cross_tab"`
}
