package domain

import (
	"fmt"
	"time"
)

// Clock provides the current time. Implementations may be real (production)
// or deterministic (testing). The domain defines the interface; adapters
// provide implementations.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
// It is a zero-allocation implementation (empty struct).
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// EpochReading is a snapshot of elapsed time since 1970-01-01T00:00:00Z,
// split into whole seconds and the nanoseconds within the current second.
// Nanos is always in [0, NanosPerSecond).
type EpochReading struct {
	Seconds uint64
	Nanos   uint32
}

// Validate reports whether r lies in [epoch, MaxEpochSeconds] with Nanos
// below one second. Only a valid reading converts and scales without
// overflow.
func (r EpochReading) Validate() error {
	if r.Seconds > MaxEpochSeconds {
		return fmt.Errorf("seconds %d exceeds %d: %w", r.Seconds, uint64(MaxEpochSeconds), ErrInvalidInput)
	}
	if r.Nanos >= NanosPerSecond {
		return fmt.Errorf("nanos %d out of range: %w", r.Nanos, ErrInvalidInput)
	}
	return nil
}

// Millis returns the reading as whole milliseconds since epoch.
func (r EpochReading) Millis() uint64 {
	return r.Seconds*MillisPerSecond + uint64(r.Nanos)/NanosPerMilli
}

// Micros returns the reading as whole microseconds since epoch.
func (r EpochReading) Micros() uint64 {
	return r.Seconds*MicrosPerSecond + uint64(r.Nanos)/NanosPerMicro
}

// ReadEpoch takes one reading from c. A time before the epoch is never
// clamped or substituted; it returns ErrClockBeforeEpoch. A time past
// MaxEpochSeconds returns ErrClockOutOfRange.
func ReadEpoch(c Clock) (EpochReading, error) {
	now := c.Now()
	secs := now.Unix()
	if secs < 0 {
		return EpochReading{}, fmt.Errorf("read clock at %d: %w", secs, ErrClockBeforeEpoch)
	}
	if secs > MaxEpochSeconds {
		return EpochReading{}, fmt.Errorf("read clock at %d: %w", secs, ErrClockOutOfRange)
	}
	return EpochReading{
		Seconds: uint64(secs),
		Nanos:   uint32(now.Nanosecond()),
	}, nil
}

// Ensure RealClock implements Clock at compile time.
var _ Clock = RealClock{}
