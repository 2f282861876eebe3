package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Запросы к node_exporter для отчёта /status
const (
	queryCPU   = `100 - (avg by (instance) (irate(node_cpu_seconds_total{mode="idle"}[5m])) * 100)`
	queryMem   = `(1 - (node_memory_MemAvailable_bytes / node_memory_MemTotal_bytes)) * 100`
	queryDisk  = `(node_filesystem_avail_bytes{mountpoint="/"} / node_filesystem_size_bytes{mountpoint="/"}) * 100`
	queryNetRX = `rate(node_network_receive_bytes_total[5m]) * 8 / 1e6`
	queryNetTX = `rate(node_network_transmit_bytes_total[5m]) * 8 / 1e6`
)

// BuildStatusReport собирает многострочный отчёт по пяти метрикам.
// Метрика без значения выводится как N/A; порядок строк фиксированный.
func (s *Service) BuildStatusReport(ctx context.Context) string {
	cpu, cpuErr := s.Metrics.Query(ctx, queryCPU)
	mem, memErr := s.Metrics.Query(ctx, queryMem)
	disk, diskErr := s.Metrics.Query(ctx, queryDisk)
	rx, rxErr := s.Metrics.Query(ctx, queryNetRX)
	tx, txErr := s.Metrics.Query(ctx, queryNetTX)

	lines := []string{
		fmt.Sprintf("*Status report — %s UTC*", time.Now().UTC().Format("2006-01-02T15:04:05")),
	}

	if cpuErr == nil {
		lines = append(lines, fmt.Sprintf("CPU: `%.1f%%`", cpu))
	} else {
		lines = append(lines, "CPU: `N/A`")
	}

	if memErr == nil {
		lines = append(lines, fmt.Sprintf("Memory used: `%.1f%%`", mem))
	} else {
		lines = append(lines, "Memory: `N/A`")
	}

	if diskErr == nil {
		lines = append(lines, fmt.Sprintf("Disk free (root): `%.1f%%`", disk))
	} else {
		lines = append(lines, "Disk: `N/A`")
	}

	// Сеть - одна общая строка: если хотя бы одна из двух метрик без значения,
	// вся строка выводится как N/A
	if rxErr == nil && txErr == nil {
		lines = append(lines, fmt.Sprintf("Network RX/TX: `%.2f` Mbps / `%.2f` Mbps", rx, tx))
	} else {
		lines = append(lines, "Network: `N/A`")
	}

	return strings.Join(lines, "\n")
}
