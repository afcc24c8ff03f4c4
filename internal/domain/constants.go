package domain

import "time"

// Calendar and unit constants shared by the converter and the accessors.
const (
	EpochYear = 1970

	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86_400
	HoursPerDay      = 24

	DaysInCommonYear = 365
	DaysInLeapYear   = 366

	// 1970-01-01 was a Thursday; weekday index = (days + EpochWeekday) % 7
	// with Sunday = 0.
	EpochWeekday = 4

	MillisPerSecond = 1_000
	MicrosPerSecond = 1_000_000
	NanosPerSecond  = 1_000_000_000
	NanosPerMilli   = 1_000_000
	NanosPerMicro   = 1_000

	// MaxEpochSeconds is 9999-12-31T23:59:59Z, the last four-digit-year
	// second. Readings above it are rejected.
	MaxEpochSeconds = 253_402_300_799
)

// LocaleEnvVar is the process environment variable read for the locale.
const LocaleEnvVar = "LANG"

// Service lifecycle limits.
const (
	// Graceful shutdown
	GracefulShutdownTimeout = 30 * time.Second // Max time to drain on shutdown
	ShutdownDrainDelay      = 1 * time.Second  // Health returns 503 before the listener closes
	ShutdownHTTPTimeout     = 10 * time.Second
	ShutdownOTELTimeout     = 5 * time.Second

	// HTTP server timeouts
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 10 * time.Second
	HTTPIdleTimeout  = 60 * time.Second
)
