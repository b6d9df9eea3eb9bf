package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMeasureColumn is the numeric column summed from the sales
	// and OB sheets when the rules file does not name another one.
	DefaultMeasureColumn = "MINR-2025"

	// DefaultScale is the unit divisor applied before emission.
	// 1 keeps source units; 1e6 would report rupees as millions.
	DefaultScale    = 1
	DefaultDecimals = 2
)

// ClusterRule maps an employee-name substring to a cluster label.
// Rules are ordered and the first match wins.
type ClusterRule struct {
	Pattern string `yaml:"pattern"`
	Cluster string `yaml:"cluster"`
}

// BURule maps Helios code prefixes to a business-unit label.
type BURule struct {
	Prefixes []string `yaml:"prefixes"`
	BU       string   `yaml:"bu"`
}

// Rules is the classification and measure configuration shared by
// every pivot request. It is read-only after load.
type Rules struct {
	ClusterRules   []ClusterRule `yaml:"cluster_rules"`
	DefaultCluster string        `yaml:"default_cluster"`
	BURules        []BURule      `yaml:"bu_rules"`
	DefaultBU      string        `yaml:"default_bu"`
	MeasureColumn  string        `yaml:"measure_column"`
	Scale          float64       `yaml:"scale"`
	Decimals       int32         `yaml:"decimals"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() *Rules {
	return &Rules{
		ClusterRules: []ClusterRule{
			{Pattern: "Pritesh", Cluster: "CG"},
			{Pattern: "Abinash", Cluster: "CG"},
			{Pattern: "Mayur", Cluster: "CG"},
			{Pattern: "TBH", Cluster: "CG"},
			{Pattern: "Arti", Cluster: "CG"},
			{Pattern: "Arun", Cluster: "OD"},
			{Pattern: "Abhishek", Cluster: "OD"},
			{Pattern: "Bodhis", Cluster: "OD"},
			{Pattern: "Mahesh", Cluster: "OD"},
			{Pattern: "MD FAZLE MURSHED", Cluster: "OD"},
			{Pattern: "Rahul", Cluster: "B+R"},
			{Pattern: "Harsh", Cluster: "B+R"},
			{Pattern: "Vikash", Cluster: "B+R"},
			{Pattern: "Nagender", Cluster: "B+R"},
			{Pattern: "Sunny", Cluster: "JSR"},
			{Pattern: "Priyanka Auddy", Cluster: "JSR"},
		},
		DefaultCluster: "OD",
		BURules: []BURule{
			{Prefixes: []string{"PP"}, BU: "PP"},
			{Prefixes: []string{"HD"}, BU: "H&D"},
			{Prefixes: []string{"ID"}, BU: "IND"},
			{Prefixes: []string{"SP", "PS"}, BU: "SP"},
			{Prefixes: []string{"DP", "DE"}, BU: "DE"},
		},
		DefaultBU:     "Other",
		MeasureColumn: DefaultMeasureColumn,
		Scale:         DefaultScale,
		Decimals:      DefaultDecimals,
	}
}

// LoadRules reads a YAML rules file over the defaults. An empty path
// returns the defaults unchanged; a present but unreadable or
// malformed file is a startup error, not a silent fallback.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if rules.MeasureColumn == "" {
		rules.MeasureColumn = DefaultMeasureColumn
	}
	if rules.Scale == 0 {
		rules.Scale = DefaultScale
	}
	if rules.Decimals == 0 {
		rules.Decimals = DefaultDecimals
	}
	return rules, nil
}

// BULabels returns the distinct BU labels in rule order, for the
// target template generator.
func (r *Rules) BULabels() []string {
	seen := make(map[string]bool, len(r.BURules))
	labels := make([]string, 0, len(r.BURules))
	for _, rule := range r.BURules {
		if seen[rule.BU] {
			continue
		}
		seen[rule.BU] = true
		labels = append(labels, rule.BU)
	}
	return labels
}
