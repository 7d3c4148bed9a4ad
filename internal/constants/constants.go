package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DataDragonTimeout  = 15 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	HTTPMaxConnsPerHost     = 100
	HTTPReadTimeout         = 10 * time.Second
	HTTPWriteTimeout        = 10 * time.Second
	HTTPMaxIdleConnDuration = 1 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
