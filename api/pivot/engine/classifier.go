package engine

import (
	"strings"

	"SalesPivotSaas/internal/config"
)

// Classifier derives cluster and business-unit labels from raw row
// fields. It is built once from the rule configuration and read-only
// afterwards, so one instance serves concurrent requests.
type Classifier struct {
	rules *config.Rules
}

func NewClassifier(rules *config.Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Cluster returns the cluster of the first rule whose pattern occurs
// as a substring of the employee name. Empty and unmatched names fall
// through to the default cluster so no row is ever dropped.
func (c *Classifier) Cluster(employee string) string {
	if employee != "" {
		for _, rule := range c.rules.ClusterRules {
			if strings.Contains(employee, rule.Pattern) {
				return rule.Cluster
			}
		}
	}
	return c.rules.DefaultCluster
}

// BU returns the business unit of the first prefix rule matching the
// Helios code, or the catch-all label.
func (c *Classifier) BU(code string) string {
	if code != "" {
		for _, rule := range c.rules.BURules {
			for _, prefix := range rule.Prefixes {
				if strings.HasPrefix(code, prefix) {
					return rule.BU
				}
			}
		}
	}
	return c.rules.DefaultBU
}

// ClassifyAll returns a classified copy of rows; the input slice is
// left untouched.
func (c *Classifier) ClassifyAll(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		row.Cluster = c.Cluster(row.Employee)
		row.BU = c.BU(row.Code)
		out[i] = row
	}
	return out
}
