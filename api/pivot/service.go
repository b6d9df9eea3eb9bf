package pivot

import (
	"fmt"

	"SalesPivotSaas/internal/config"
	"SalesPivotSaas/internal/serviceiface"
)

type PivotService struct {
	config map[string]interface{}
	rules  *config.Rules
}

func NewPivotService(cfg map[string]interface{}) serviceiface.Service {
	return &PivotService{config: cfg}
}

func (s *PivotService) Name() string {
	return "pivot"
}

// Start loads the classification rules and serves the pivot routes.
// A broken rules file fails startup rather than falling back.
func (s *PivotService) Start() error {
	path, _ := s.config["rules_path"].(string)
	rules, err := config.LoadRules(path)
	if err != nil {
		return fmt.Errorf("pivot service: %w", err)
	}
	s.rules = rules
	go StartPivotService(rules)
	return nil
}

func (s *PivotService) Stop() error {
	return nil
}
