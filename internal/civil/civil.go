// Package civil converts an epoch reading into proleptic Gregorian calendar
// fields without consulting a calendar library or timezone database.
//
// The offset handed to Convert shifts only the hour. The date is always
// derived from the UTC day count, so close to local midnight in a positive
// offset the hour wraps past 00 while the day stays on the UTC date.
package civil

import "github.com/aelexs/civiltime/internal/domain"

var commonYear = [12]uint64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a civil (year, month, day) triple. Month and Day are 1-based.
type Date struct {
	Year  uint64
	Month uint64
	Day   uint64
}

// DateTime is the result of one conversion.
type DateTime struct {
	Year        uint64
	Month       uint64
	Day         uint64
	Hour        uint64
	Minute      uint64
	Second      uint64
	Millisecond uint64 // 0-999
	Microsecond uint64 // 0-999999, the full sub-second value in micros

	// Days is the UTC day count since the epoch the date was taken from.
	Days uint64
}

// Date returns the calendar part of dt.
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year uint64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year uint64) uint64 {
	if IsLeapYear(year) {
		return domain.DaysInLeapYear
	}
	return domain.DaysInCommonYear
}

// DaysInMonth returns the length of month (1-12) in year. It returns 0
// for a month outside that range.
func DaysInMonth(year, month uint64) uint64 {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return commonYear[month-1]
}

// FromDays maps a day count since 1970-01-01 to its civil date.
//
// The year is found by a linear scan from the epoch. That is O(years since
// 1970), which is a few dozen iterations for any realistic clock reading.
func FromDays(days uint64) Date {
	year := uint64(domain.EpochYear)
	for days >= DaysInYear(year) {
		days -= DaysInYear(year)
		year++
	}

	month := uint64(1)
	for days >= DaysInMonth(year, month) {
		days -= DaysInMonth(year, month)
		month++
	}

	return Date{Year: year, Month: month, Day: days + 1}
}

// DaysSinceEpoch is the inverse of FromDays.
func (d Date) DaysSinceEpoch() uint64 {
	var days uint64
	for y := uint64(domain.EpochYear); y < d.Year; y++ {
		days += DaysInYear(y)
	}
	for m := uint64(1); m < d.Month; m++ {
		days += DaysInMonth(d.Year, m)
	}
	return days + d.Day - 1
}

// Weekday returns the day of the week for a day count, Sunday = 0.
func Weekday(days uint64) uint64 {
	return (days + domain.EpochWeekday) % 7
}

// Convert splits r into calendar fields, adding offset (seconds) to the
// hour only. It has no failure path; r is expected to pass
// EpochReading.Validate, since the year scan is linear in r.Seconds.
func Convert(r domain.EpochReading, offset uint64) DateTime {
	days := r.Seconds / domain.SecondsPerDay
	sod := r.Seconds % domain.SecondsPerDay
	d := FromDays(days)

	return DateTime{
		Year:        d.Year,
		Month:       d.Month,
		Day:         d.Day,
		Hour:        ((sod + offset) / domain.SecondsPerHour) % domain.HoursPerDay,
		Minute:      (sod % domain.SecondsPerHour) / domain.SecondsPerMinute,
		Second:      sod % domain.SecondsPerMinute,
		Millisecond: uint64(r.Nanos) / domain.NanosPerMilli,
		Microsecond: uint64(r.Nanos) / domain.NanosPerMicro,
		Days:        days,
	}
}

// ConvertUTC is Convert with a zero offset.
func ConvertUTC(r domain.EpochReading) DateTime {
	return Convert(r, 0)
}
