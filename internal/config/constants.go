package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 30 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database and redis ping timeout for startup checks
const PingTimeout = 5 * time.Second

// Background job intervals
const CacheSweepInterval = 5 * time.Minute

// Router result paging
const (
	MaxSlotsPerPage   = 5
	SeeMoreEscalateAt = 3
)
