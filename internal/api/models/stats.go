package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	MemoryAllocMB float64   `json:"memory_alloc_mb"`
	NumCPU        int       `json:"num_cpu"`

	// Host-level figures, best effort. Zero when the platform probe fails.
	SystemMemoryTotalMB float64 `json:"system_memory_total_mb"`
	SystemMemoryUsedPct float64 `json:"system_memory_used_pct"`
	ProcessRSSMB        float64 `json:"process_rss_mb"`

	ImportStats ImportStatsResponse `json:"imports"`
}

// ImportStatsResponse contains cumulative import counters since start.
type ImportStatsResponse struct {
	ImportsRun    int64 `json:"imports_run"`
	AliasesParsed int64 `json:"aliases_parsed"`
	ZonesParsed   int64 `json:"zones_parsed"`
	Commits       int64 `json:"commits"`
}
