package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/jkoelman/zonewise/internal/api/models"
)

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, and host memory usage
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		ImportStats: models.ImportStatsResponse{
			ImportsRun:    h.importsRun.Load(),
			AliasesParsed: h.aliasesParsed.Load(),
			ZonesParsed:   h.zonesParsed.Load(),
			Commits:       h.commits.Load(),
		},
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.SystemMemoryTotalMB = float64(vm.Total) / 1024 / 1024
		resp.SystemMemoryUsedPct = vm.UsedPercent
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
			resp.ProcessRSSMB = float64(mi.RSS) / 1024 / 1024
		}
	}

	c.JSON(http.StatusOK, resp)
}
