// Package monitor reports on the resources the gateway depends on locally.
package monitor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats describes the filesystem holding a path.
type DiskStats struct {
	Path       string  `json:"path"`
	TotalBytes uint64  `json:"total_bytes"`
	FreeBytes  uint64  `json:"free_bytes"`
	UsedPct    float64 `json:"used_percent"`
}

// DiskUsage returns the space available to unprivileged users on the
// filesystem that contains path.
func DiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("failed to stat filesystem %s: %w", path, err)
	}

	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)

	stats := DiskStats{Path: path, TotalBytes: total, FreeBytes: free}
	if total > 0 {
		stats.UsedPct = float64(total-free) / float64(total) * 100
	}
	return stats, nil
}

// LowSpace reports whether less than minFreeBytes remain.
func (d DiskStats) LowSpace(minFreeBytes uint64) bool {
	return d.FreeBytes < minFreeBytes
}
