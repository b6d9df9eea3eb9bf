package resource

import (
	"fmt"
	"runtime"
	"time"

	"SalesPivotSaas/internal/logger"
	"SalesPivotSaas/internal/serviceiface"
)

// ResourceManager periodically records process health (goroutines,
// heap in use) to the audit log so a stuck upload or a leak shows up
// in the log files.
type ResourceManager struct {
	stopChan          chan struct{}
	heartbeatInterval time.Duration
}

func NewResourceManagerService(cfg map[string]interface{}) serviceiface.Service {
	interval := 30 * time.Second // default
	if val, ok := cfg["heartbeat_interval"]; ok {
		switch v := val.(type) {
		case string:
			if d, err := time.ParseDuration(v); err == nil {
				interval = d
			}
		case int:
			interval = time.Duration(v) * time.Second
		case float64:
			interval = time.Duration(v) * time.Second
		}
	}
	return &ResourceManager{
		stopChan:          make(chan struct{}),
		heartbeatInterval: interval,
	}
}

func (rm *ResourceManager) Name() string { return "resourcemanager" }

func (rm *ResourceManager) Start() error {
	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit("ResourceManager started")
	}
	go rm.heartbeatLoop()
	return nil
}

func (rm *ResourceManager) Stop() error {
	close(rm.stopChan)
	return nil
}

func (rm *ResourceManager) heartbeatLoop() {
	ticker := time.NewTicker(rm.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rm.stopChan:
			return
		case <-ticker.C:
			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			msg := fmt.Sprintf("heartbeat: goroutines=%d heap_mb=%.1f",
				runtime.NumGoroutine(), float64(mem.HeapInuse)/(1024*1024))
			if logger.GlobalLogger != nil {
				logger.GlobalLogger.LogAudit(msg)
			}
		}
	}
}
