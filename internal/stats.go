package internal

import (
	"maps"
	"os"
	"trashtalk/domain"

	"github.com/shirou/gopsutil/process"
)

// BoardStats shows the board as rebuilt from events, to compare with the stored forum_state row.
func BoardStats(snapshot func() domain.BoardState) StatsProvider {
	return func() map[string]any {
		state := snapshot()
		return map[string]any{
			"timeline_owner":    string(state.Owner),
			"timeline_count":    state.Count,
			"timeline_messages": len(state.Messages),
		}
	}
}

// ProcessStats reports memory and CPU of the running server.
// Metrics that cannot be read are left out.
func ProcessStats() StatsProvider {
	return func() map[string]any {
		stats := map[string]any{"pid": os.Getpid()}
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return stats
		}
		if memInfo, err := p.MemoryInfo(); err == nil {
			stats["rss_mb"] = memInfo.RSS / 1024 / 1024
		}
		if cpu, err := p.CPUPercent(); err == nil {
			stats["cpu_percent"] = cpu
		}
		return stats
	}
}

// MergeStats combines several providers, later ones win on duplicate keys.
func MergeStats(providers ...StatsProvider) StatsProvider {
	return func() map[string]any {
		stats := make(map[string]any)
		for _, provider := range providers {
			maps.Copy(stats, provider())
		}
		return stats
	}
}
