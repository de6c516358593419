package database

import (
	"context"
	"time"
)

// PoolStats is a point-in-time snapshot of the connection pool.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	MaxOpen      int   `json:"max_open"`
	WaitCount    int64 `json:"wait_count"`
	WaitDuration int64 `json:"wait_ms"`
}

// HealthStatus reports story-store reachability plus the pool snapshot
// surfaced on the health endpoint.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the story store and snapshots its pool. The returned status
// is usable even when the ping error is non-nil.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			MaxOpen:      stats.MaxOpenConnections,
			WaitCount:    stats.WaitCount,
			WaitDuration: stats.WaitDuration.Milliseconds(),
		},
	}, nil
}
