// Package civiltime reports the current date and time in the fixed UTC
// offset of the process locale (the LANG environment variable), computed
// directly from the epoch reading.
//
// Every accessor takes a fresh clock reading and re-resolves the locale;
// nothing is cached. A clock that reports a time before the epoch or past
// year 9999 is a fatal condition: Service methods return an error
// wrapping ErrClockBeforeEpoch or ErrClockOutOfRange and the
// package-level functions panic.
//
// The locale offset moves the hour only. Near local midnight the hour
// wraps while the date stays on the UTC calendar day.
package civiltime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aelexs/civiltime/internal/civil"
	"github.com/aelexs/civiltime/internal/domain"
	"github.com/aelexs/civiltime/internal/locale"
	"github.com/aelexs/civiltime/internal/observability"
)

type (
	// DateTime holds the computed calendar and clock fields.
	DateTime = civil.DateTime
	// EpochReading is one clock reading since 1970-01-01T00:00:00Z.
	EpochReading = domain.EpochReading
	// Clock is the wall-clock source.
	Clock = domain.Clock
	// Locale is a supported locale identifier.
	Locale = locale.Locale
	// LocaleSource supplies the raw locale identifier.
	LocaleSource = locale.Source
)

// Errors returned when the clock cannot produce a valid reading.
var (
	ErrClockBeforeEpoch = domain.ErrClockBeforeEpoch
	ErrClockOutOfRange  = domain.ErrClockOutOfRange
)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLocaleSource replaces the LANG environment lookup.
func WithLocaleSource(src LocaleSource) Option {
	return func(s *Service) { s.locales = src }
}

// WithMetrics records conversions and failures on m.
func WithMetrics(m *observability.ClockMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger used for locale fallbacks and clock failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// Service computes civil time from a clock and a locale source. It holds
// no mutable state and is safe for concurrent use.
type Service struct {
	clock   Clock
	locales LocaleSource
	metrics *observability.ClockMetrics
	logger  *slog.Logger
}

// New returns a Service reading the system clock and LANG unless
// overridden by opts.
func New(opts ...Option) *Service {
	s := &Service{
		clock:   domain.RealClock{},
		locales: locale.EnvSource{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is the result of a single clock read and locale lookup.
type Snapshot struct {
	Reading  EpochReading
	Locale   Locale
	Fallback bool // the default locale was substituted
	Offset   uint64
	Local    DateTime
}

// Snapshot reads the clock once, resolves the locale and converts.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	r, err := domain.ReadEpoch(s.clock)
	if err != nil {
		s.metrics.RecordClockFailure(ctx)
		observability.SpanFromContext(ctx).RecordError(err)
		s.log(ctx).Error("clock read failed", slog.String("error", err.Error()))
		return Snapshot{}, fmt.Errorf("civiltime: %w", err)
	}

	var id string
	if s.locales != nil {
		id = s.locales.Locale()
	}
	sn := Convert(r, id)
	if sn.Fallback {
		s.log(ctx).Debug("locale not recognized, using default",
			slog.String("default", sn.Locale.String()),
		)
	}
	s.metrics.RecordConversion(ctx, sn.Locale.String(), sn.Fallback)

	return sn, nil
}

// Convert builds a Snapshot for a given reading and raw locale identifier
// without touching the clock or the environment. Callers taking r from
// outside the process should check r.Validate first.
func Convert(r EpochReading, localeID string) Snapshot {
	l, ok := locale.Parse(localeID)
	if !ok {
		l = locale.Default
	}
	offset := l.Offset()
	return Snapshot{
		Reading:  r,
		Locale:   l,
		Fallback: !ok,
		Offset:   offset,
		Local:    civil.Convert(r, offset),
	}
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return observability.WithTraceID(ctx, s.logger)
	}
	return observability.LoggerFromContext(ctx)
}

// Timestamp returns epoch seconds with the locale offset added.
func (sn Snapshot) Timestamp() uint64 {
	return sn.Reading.Seconds + sn.Offset
}

// TimestampMillis returns epoch milliseconds. The offset is not applied.
func (sn Snapshot) TimestampMillis() uint64 {
	return sn.Reading.Millis()
}

// TimestampMicros returns epoch microseconds. The offset is not applied.
func (sn Snapshot) TimestampMicros() uint64 {
	return sn.Reading.Micros()
}

// GMT returns the reading as "Www, DD Mon YYYY HH:MM:SS GMT".
func (sn Snapshot) GMT() string {
	return civil.GMT(sn.Reading)
}

func (s *Service) now() (Snapshot, error) {
	return s.Snapshot(context.Background())
}

// Now returns the current civil date and time.
func (s *Service) Now() (DateTime, error) {
	sn, err := s.now()
	return sn.Local, err
}

func (s *Service) field(get func(DateTime) uint64) (uint64, error) {
	dt, err := s.Now()
	if err != nil {
		return 0, err
	}
	return get(dt), nil
}

// Year returns the current year.
func (s *Service) Year() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Year })
}

// Month returns the current month (1-12).
func (s *Service) Month() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Month })
}

// Day returns the current day of the month.
func (s *Service) Day() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Day })
}

// Hour returns the current hour (0-23) in the locale offset.
func (s *Service) Hour() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Hour })
}

// Minute returns the current minute (0-59).
func (s *Service) Minute() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Minute })
}

// Second returns the current second (0-59).
func (s *Service) Second() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Second })
}

// Millisecond returns the milliseconds within the current second.
func (s *Service) Millisecond() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Millisecond })
}

// Microsecond returns the microseconds within the current second.
func (s *Service) Microsecond() (uint64, error) {
	return s.field(func(dt DateTime) uint64 { return dt.Microsecond })
}

func (s *Service) stamp(get func(Snapshot) uint64) (uint64, error) {
	sn, err := s.now()
	if err != nil {
		return 0, err
	}
	return get(sn), nil
}

// Timestamp returns epoch seconds plus the locale offset.
func (s *Service) Timestamp() (uint64, error) {
	return s.stamp(Snapshot.Timestamp)
}

// TimestampMillis returns epoch milliseconds.
func (s *Service) TimestampMillis() (uint64, error) {
	return s.stamp(Snapshot.TimestampMillis)
}

// TimestampMicros returns epoch microseconds.
func (s *Service) TimestampMicros() (uint64, error) {
	return s.stamp(Snapshot.TimestampMicros)
}

func (s *Service) format(f func(Snapshot) string) (string, error) {
	sn, err := s.now()
	if err != nil {
		return "", err
	}
	return f(sn), nil
}

// Time returns "YYYY-MM-DD HH:MM:SS".
func (s *Service) Time() (string, error) {
	return s.format(func(sn Snapshot) string { return sn.Local.String() })
}

// Date returns "YYYY-MM-DD".
func (s *Service) Date() (string, error) {
	return s.format(func(sn Snapshot) string { return sn.Local.DateString() })
}

// TimeMillis returns "YYYY-MM-DD HH:MM:SS.mmm".
func (s *Service) TimeMillis() (string, error) {
	return s.format(func(sn Snapshot) string { return sn.Local.MillisString() })
}

// TimeMicros returns "YYYY-MM-DD HH:MM:SS.mmmmmm".
func (s *Service) TimeMicros() (string, error) {
	return s.format(func(sn Snapshot) string { return sn.Local.MicrosString() })
}

// GMT returns "Www, DD Mon YYYY HH:MM:SS GMT" regardless of locale.
func (s *Service) GMT() (string, error) {
	return s.format(Snapshot.GMT)
}
