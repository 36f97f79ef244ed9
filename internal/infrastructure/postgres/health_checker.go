package postgres

import (
	"context"
	"time"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker comprueba que la base responde (readiness).
type HealthChecker struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db, timeout: time.Second}
}

func (c *HealthChecker) Name() string { return "postgres" }

func (c *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.db.Ping(ctx)
}
