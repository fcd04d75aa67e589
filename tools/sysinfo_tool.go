package tools

import (
	"runtime"

	"beforeafter/database"
	"beforeafter/service"
	"beforeafter/version"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// sysinfoTool reports host, runtime and database figures for support requests.
type sysinfoTool struct {
	gallery *service.GalleryService
}

func (t *sysinfoTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "report":
		report := gin.H{
			"version": gin.H{
				"version": version.Version,
				"commit":  version.CommitHash,
				"built":   version.BuildTime,
			},
			"runtime": gin.H{
				"go":         runtime.Version(),
				"os":         runtime.GOOS,
				"arch":       runtime.GOARCH,
				"goroutines": runtime.NumGoroutine(),
			},
		}

		if info, err := host.Info(); err == nil {
			report["host"] = gin.H{
				"hostname": info.Hostname,
				"platform": info.Platform,
				"kernel":   info.KernelVersion,
				"uptime":   info.Uptime,
			}
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			report["memory"] = gin.H{
				"total":        vm.Total,
				"available":    vm.Available,
				"used_percent": vm.UsedPercent,
			}
		}
		if cores, err := cpu.Counts(true); err == nil {
			report["cpu"] = gin.H{"logical_cores": cores}
		}

		dbInfo := gin.H{
			"busy_errors":   database.SQLiteBusyErrorsTotal(),
			"locked_errors": database.SQLiteLockedErrorsTotal(),
		}
		if total, err := database.CountOptions(); err == nil {
			dbInfo["options"] = total
		}
		if total, err := t.gallery.Count(); err == nil {
			dbInfo["galleries"] = total
		}
		report["database"] = dbInfo

		return report, nil

	default:
		return nil, unknownAction("sysinfo", action)
	}
}
