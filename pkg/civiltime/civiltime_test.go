package civiltime_test

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/aelexs/civiltime/internal/domain/domaintest"
	"github.com/aelexs/civiltime/internal/locale"
	"github.com/aelexs/civiltime/internal/observability"
	"github.com/aelexs/civiltime/pkg/civiltime"
)

// 2024-03-07 09:05:03.007000 UTC
var sample = time.Date(2024, 3, 7, 9, 5, 3, 7_000_000, time.UTC)

func newService(t *testing.T, lang string, opts ...civiltime.Option) *civiltime.Service {
	t.Helper()
	opts = append([]civiltime.Option{
		civiltime.WithClock(domaintest.NewFakeClock(sample)),
		civiltime.WithLocaleSource(locale.Static(lang)),
	}, opts...)
	return civiltime.New(opts...)
}

func TestServiceNow(t *testing.T) {
	svc := newService(t, "en_US.UTF-8")

	dt, err := svc.Now()

	require.NoError(t, err)
	assert.Equal(t, uint64(2024), dt.Year)
	assert.Equal(t, uint64(3), dt.Month)
	assert.Equal(t, uint64(7), dt.Day)
	assert.Equal(t, uint64(9), dt.Hour)
	assert.Equal(t, uint64(5), dt.Minute)
	assert.Equal(t, uint64(3), dt.Second)
	assert.Equal(t, uint64(7), dt.Millisecond)
	assert.Equal(t, uint64(7000), dt.Microsecond)
}

func TestServiceFieldAccessors(t *testing.T) {
	svc := newService(t, "ja_JP.UTF-8")

	tests := []struct {
		name string
		get  func() (uint64, error)
		want uint64
	}{
		{"year", svc.Year, 2024},
		{"month", svc.Month, 3},
		{"day", svc.Day, 7},
		{"hour", svc.Hour, 18},
		{"minute", svc.Minute, 5},
		{"second", svc.Second, 3},
		{"millisecond", svc.Millisecond, 7},
		{"microsecond", svc.Microsecond, 7000},
		{"timestamp", svc.Timestamp, 1709802303 + 32400},
		{"timestamp millis", svc.TimestampMillis, 1709802303007},
		{"timestamp micros", svc.TimestampMicros, 1709802303007000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceStrings(t *testing.T) {
	svc := newService(t, "en_US.UTF-8")

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"time", svc.Time, "2024-03-07 09:05:03"},
		{"date", svc.Date, "2024-03-07"},
		{"millis", svc.TimeMillis, "2024-03-07 09:05:03.007"},
		{"micros", svc.TimeMicros, "2024-03-07 09:05:03.007000"},
		{"gmt", svc.GMT, "Thu, 07 Mar 2024 09:05:03 GMT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceGMTIgnoresLocale(t *testing.T) {
	svc := newService(t, "ko_KR.UTF-8")

	got, err := svc.GMT()

	require.NoError(t, err)
	assert.Equal(t, "Thu, 07 Mar 2024 09:05:03 GMT", got)
}

func TestServiceUnknownLocaleUsesDefault(t *testing.T) {
	svc := newService(t, "C.UTF-8")

	sn, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, sn.Fallback)
	assert.Equal(t, locale.Default, sn.Locale)
	assert.Equal(t, uint64(28800), sn.Offset)
	assert.Equal(t, uint64(17), sn.Local.Hour)
}

func TestServiceMidnightWrapKeepsDate(t *testing.T) {
	clock := domaintest.NewFakeClock(time.Date(2024, 3, 7, 23, 30, 0, 0, time.UTC))
	svc := civiltime.New(
		civiltime.WithClock(clock),
		civiltime.WithLocaleSource(locale.Static("ru_RU.UTF-8")),
	)

	got, err := svc.Time()

	require.NoError(t, err)
	assert.Equal(t, "2024-03-07 02:30:00", got)
}

func TestServiceRereadsEachCall(t *testing.T) {
	clock := domaintest.NewFakeClock(sample)
	svc := civiltime.New(civiltime.WithClock(clock), civiltime.WithLocaleSource(locale.EnvSource{}))

	t.Setenv("LANG", "en_US.UTF-8")
	first, err := svc.Hour()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), first)

	t.Setenv("LANG", "th_TH.UTF-8")
	clock.Advance(time.Hour)
	second, err := svc.Hour()
	require.NoError(t, err)
	assert.Equal(t, uint64(17), second)
}

func TestServiceClockBeforeEpoch(t *testing.T) {
	var buf bytes.Buffer
	clock := domaintest.NewFakeClock(time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC))
	svc := civiltime.New(
		civiltime.WithClock(clock),
		civiltime.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
	)

	_, err := svc.Now()
	require.ErrorIs(t, err, civiltime.ErrClockBeforeEpoch)

	_, err = svc.Time()
	require.ErrorIs(t, err, civiltime.ErrClockBeforeEpoch)

	_, err = svc.Timestamp()
	require.ErrorIs(t, err, civiltime.ErrClockBeforeEpoch)

	_, err = svc.Year()
	require.ErrorIs(t, err, civiltime.ErrClockBeforeEpoch)

	assert.Contains(t, buf.String(), "clock read failed")
}

func TestServiceRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(ctx) }()

	m, err := observability.NewClockMetrics(provider.Meter("test"))
	require.NoError(t, err)

	svc := newService(t, "xx_XX.UTF-8", civiltime.WithMetrics(m))
	_, err = svc.Now()
	require.NoError(t, err)
	_, err = svc.Time()
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			names[metric.Name] = true
		}
	}
	assert.True(t, names[observability.MetricConversions])
	assert.True(t, names[observability.MetricLocaleFallback])
}

func TestPackageLevelAccessors(t *testing.T) {
	t.Setenv("LANG", "en_US.UTF-8")

	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), civiltime.Time())
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), civiltime.Date())
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`), civiltime.TimeMillis())
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{6}$`), civiltime.TimeMicros())
	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]{2}, \d{2} [A-Z][a-z]{2} \d{4} \d{2}:\d{2}:\d{2} GMT$`), civiltime.GMT())

	assert.GreaterOrEqual(t, civiltime.Year(), uint64(2024))
	assert.LessOrEqual(t, civiltime.Month(), uint64(12))
	assert.GreaterOrEqual(t, civiltime.Day(), uint64(1))
	assert.LessOrEqual(t, civiltime.Hour(), uint64(23))
	assert.LessOrEqual(t, civiltime.Minute(), uint64(59))
	assert.LessOrEqual(t, civiltime.Second(), uint64(59))
	assert.LessOrEqual(t, civiltime.Millisecond(), uint64(999))
	assert.LessOrEqual(t, civiltime.Microsecond(), uint64(999999))

	before := uint64(time.Now().Unix())
	ts := civiltime.Timestamp()
	after := uint64(time.Now().Unix())
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)

	assert.Greater(t, civiltime.TimestampMicros(), civiltime.TimestampMillis())
	assert.NotNil(t, civiltime.Default())
	assert.LessOrEqual(t, civiltime.Now().Month, uint64(12))
}

func TestConvert(t *testing.T) {
	r := civiltime.EpochReading{Seconds: 82800, Nanos: 1_500_000}

	sn := civiltime.Convert(r, "ar_SA.UTF-8")

	assert.False(t, sn.Fallback)
	assert.Equal(t, locale.ArSA, sn.Locale)
	assert.Equal(t, "1970-01-01 02:00:00.001", sn.Local.MillisString())
	assert.Equal(t, "Thu, 01 Jan 1970 23:00:00 GMT", sn.GMT())
	assert.Equal(t, uint64(82800+10800), sn.Timestamp())
	assert.Equal(t, uint64(82800001), sn.TimestampMillis())
	assert.Equal(t, uint64(82800001500), sn.TimestampMicros())
}
