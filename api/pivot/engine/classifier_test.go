package engine

import (
	"testing"

	"SalesPivotSaas/internal/config"
)

func TestClassifierCluster(t *testing.T) {
	c := NewClassifier(config.DefaultRules())

	tests := []struct {
		name     string
		employee string
		want     string
	}{
		{"exact name", "Arun", "OD"},
		{"name inside longer string", "Arun Kumar Singh", "OD"},
		{"first rule wins over later match", "Pritesh Arun", "CG"},
		{"case sensitive, lowercase falls to default", "pritesh", "OD"},
		{"unmatched name falls to default", "Nobody Known", "OD"},
		{"empty name falls to default", "", "OD"},
		{"multi word pattern", "Priyanka Auddy", "JSR"},
		{"b+r member", "Nagender", "B+R"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Cluster(tt.employee); got != tt.want {
				t.Errorf("Cluster(%q) = %q, want %q", tt.employee, got, tt.want)
			}
		})
	}
}

func TestClassifierClusterOrderedNotLongest(t *testing.T) {
	rules := &config.Rules{
		ClusterRules: []config.ClusterRule{
			{Pattern: "Ar", Cluster: "SHORT"},
			{Pattern: "Arun", Cluster: "LONG"},
		},
		DefaultCluster: "DEF",
	}
	c := NewClassifier(rules)
	if got := c.Cluster("Arun"); got != "SHORT" {
		t.Errorf("Cluster(\"Arun\") = %q, want first-match %q", got, "SHORT")
	}
	if got := c.Cluster("xyz"); got != "DEF" {
		t.Errorf("Cluster(\"xyz\") = %q, want default %q", got, "DEF")
	}
}

func TestClassifierBU(t *testing.T) {
	c := NewClassifier(config.DefaultRules())

	tests := []struct {
		name string
		code string
		want string
	}{
		{"pp prefix", "PP1", "PP"},
		{"hd prefix", "HD-200", "H&D"},
		{"id prefix", "ID99", "IND"},
		{"sp prefix", "SP7", "SP"},
		{"ps prefix maps to sp", "PS7", "SP"},
		{"dp prefix", "DP1", "DE"},
		{"de prefix", "DE1", "DE"},
		{"unknown prefix", "XX1", "Other"},
		{"empty code", "", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.BU(tt.code); got != tt.want {
				t.Errorf("BU(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyAllLeavesInputUntouched(t *testing.T) {
	c := NewClassifier(config.DefaultRules())
	in := []Row{{Employee: "Arun", Code: "PP1", Value: 10}}
	out := c.ClassifyAll(in)

	if in[0].Cluster != "" || in[0].BU != "" {
		t.Errorf("input row mutated: %+v", in[0])
	}
	if out[0].Cluster != "OD" || out[0].BU != "PP" {
		t.Errorf("classified row = %+v, want Cluster=OD BU=PP", out[0])
	}
	if out[0].Value != 10 || out[0].Employee != "Arun" {
		t.Errorf("classified row lost source fields: %+v", out[0])
	}
}
