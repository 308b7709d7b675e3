package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const namespace = "onboarding"

var (
	HostCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "cpu_usage_percent",
			Help:      "Host CPU usage percentage seen by the onboarding service",
		},
	)

	HostMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "memory_used_bytes",
			Help:      "Host memory in use, bytes",
		},
	)

	ProcessHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "heap_alloc_bytes",
			Help:      "Go heap allocated by the onboarding service, bytes",
		},
	)

	ProcessGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "goroutines",
			Help:      "Goroutines alive, including bulk write workers",
		},
	)
)

// StartSystemMetricsCollector снимает показатели раз в interval, пока жив ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics()
			}
		}
	}()
}

func collectSystemMetrics() {
	// cpu.Percent с нулевым интервалом сравнивает с прошлым вызовом и не блокирует тикер
	cpuPercent, err := cpu.Percent(0, false)
	if err == nil && len(cpuPercent) > 0 {
		HostCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		HostMemoryUsed.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ProcessHeapAlloc.Set(float64(m.Alloc))
	ProcessGoroutines.Set(float64(runtime.NumGoroutine()))
}
