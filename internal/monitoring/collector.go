package monitoring

import (
	"log"
	"sync"
	"time"

	"billing-backend/internal/metrics"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostCollector samples host CPU, memory and disk usage on an interval
// and publishes them as Prometheus gauges.
type HostCollector struct {
	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewHostCollector(interval time.Duration) *HostCollector {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HostCollector{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the collection loop in a background goroutine.
func (c *HostCollector) Start() {
	log.Println("[Monitoring] Starting host metrics collector...")
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.collect()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

// Stop halts the collection loop and waits for it to finish.
func (c *HostCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	log.Println("[Monitoring] Host metrics collector stopped")
}

func (c *HostCollector) collect() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		metrics.HostCPUPercent.Set(percents[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		metrics.HostMemoryPercent.Set(vm.UsedPercent)
	}
	if du, err := disk.Usage("/"); err == nil {
		metrics.HostDiskPercent.Set(du.UsedPercent)
	}
}
