package handlers

import (
	"net/http"
	"runtime"
	"time"

	"beforeafter/database"
	"beforeafter/service"
	"beforeafter/state"
	"beforeafter/version"

	"github.com/gin-gonic/gin"
)

// HealthCheck health endpoint
func HealthCheck(c *gin.Context) {
	dbHealthy := database.SQLiteUp(c.Request.Context())

	health := gin.H{
		"status":        "healthy",
		"timestamp":     time.Now().Unix(),
		"version":       version.GetVersion(),
		"db_healthy":    dbHealthy,
		"cache_entries": cache.Len(),
	}

	if !dbHealthy {
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// GetMetrics gathers application and runtime metrics
func GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	cacheStats := cache.Stats()

	metrics := gin.H{
		"timestamp": time.Now().Unix(),
		"cache": gin.H{
			"entries": cacheStats.Entries,
			"max":     cacheStats.Max,
			"hits":    cacheStats.Hits,
			"misses":  cacheStats.Misses,
		},
		"rewrite": gin.H{
			"rules":      rewrites.Len(),
			"flushed_at": rewrites.FlushedAt().Unix(),
		},
		"sqlite": gin.H{
			"busy_errors":   database.SQLiteBusyErrorsTotal(),
			"locked_errors": database.SQLiteLockedErrorsTotal(),
		},
		"admin": gin.H{
			"sessions":        authMgr.SessionCount(),
			"pending_notices": state.Global.NoticeCount(),
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": mem.Alloc,
			"memory_total": mem.TotalAlloc,
			"memory_sys":   mem.Sys,
			"gc_runs":      mem.NumGC,
		},
	}

	if total, err := database.CountOptions(); err == nil {
		metrics["options"] = gin.H{"stored": total}
	}
	if total, err := service.GlobalServices.Gallery.Count(); err == nil {
		metrics["galleries"] = gin.H{"total": total}
	}

	c.JSON(http.StatusOK, metrics)
}
