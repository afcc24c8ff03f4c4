package civiltime

// std backs the package-level accessors: system clock, LANG per call.
var std = New()

// Default returns the Service used by the package-level functions.
func Default() *Service { return std }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Now returns the current civil date and time. It panics if the system
// clock reports a time before the epoch.
func Now() DateTime { return must(std.Now()) }

// Year returns the current year.
func Year() uint64 { return must(std.Year()) }

// Month returns the current month (1-12).
func Month() uint64 { return must(std.Month()) }

// Day returns the current day of the month.
func Day() uint64 { return must(std.Day()) }

// Hour returns the current hour (0-23).
func Hour() uint64 { return must(std.Hour()) }

// Minute returns the current minute (0-59).
func Minute() uint64 { return must(std.Minute()) }

// Second returns the current second (0-59).
func Second() uint64 { return must(std.Second()) }

// Millisecond returns the milliseconds within the current second.
func Millisecond() uint64 { return must(std.Millisecond()) }

// Microsecond returns the microseconds within the current second.
func Microsecond() uint64 { return must(std.Microsecond()) }

// Timestamp returns epoch seconds plus the locale offset.
func Timestamp() uint64 { return must(std.Timestamp()) }

// TimestampMillis returns epoch milliseconds.
func TimestampMillis() uint64 { return must(std.TimestampMillis()) }

// TimestampMicros returns epoch microseconds.
func TimestampMicros() uint64 { return must(std.TimestampMicros()) }

// Time returns "YYYY-MM-DD HH:MM:SS".
func Time() string { return must(std.Time()) }

// Date returns "YYYY-MM-DD".
func Date() string { return must(std.Date()) }

// TimeMillis returns "YYYY-MM-DD HH:MM:SS.mmm".
func TimeMillis() string { return must(std.TimeMillis()) }

// TimeMicros returns "YYYY-MM-DD HH:MM:SS.mmmmmm".
func TimeMicros() string { return must(std.TimeMicros()) }

// GMT returns "Www, DD Mon YYYY HH:MM:SS GMT".
func GMT() string { return must(std.GMT()) }
