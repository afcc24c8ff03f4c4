package civil

import (
	"strconv"

	"github.com/aelexs/civiltime/internal/domain"
)

var (
	weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthNames   = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// appendPadded appends v in decimal, left-padded with zeros to width.
func appendPadded(b []byte, v uint64, width int) []byte {
	var buf [20]byte
	s := strconv.AppendUint(buf[:0], v, 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func (d Date) appendTo(b []byte) []byte {
	b = appendPadded(b, d.Year, 4)
	b = append(b, '-')
	b = appendPadded(b, d.Month, 2)
	b = append(b, '-')
	return appendPadded(b, d.Day, 2)
}

func (dt DateTime) appendClock(b []byte) []byte {
	b = appendPadded(b, dt.Hour, 2)
	b = append(b, ':')
	b = appendPadded(b, dt.Minute, 2)
	b = append(b, ':')
	return appendPadded(b, dt.Second, 2)
}

func (dt DateTime) appendDateTime(b []byte) []byte {
	b = dt.Date().appendTo(b)
	b = append(b, ' ')
	return dt.appendClock(b)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return string(d.appendTo(make([]byte, 0, 10)))
}

// String formats dt as YYYY-MM-DD HH:MM:SS.
func (dt DateTime) String() string {
	return string(dt.appendDateTime(make([]byte, 0, 19)))
}

// DateString formats dt as YYYY-MM-DD.
func (dt DateTime) DateString() string {
	return dt.Date().String()
}

// MillisString formats dt as YYYY-MM-DD HH:MM:SS.mmm.
func (dt DateTime) MillisString() string {
	b := dt.appendDateTime(make([]byte, 0, 23))
	b = append(b, '.')
	return string(appendPadded(b, dt.Millisecond, 3))
}

// MicrosString formats dt as YYYY-MM-DD HH:MM:SS.mmmmmm.
func (dt DateTime) MicrosString() string {
	b := dt.appendDateTime(make([]byte, 0, 26))
	b = append(b, '.')
	return string(appendPadded(b, dt.Microsecond, 6))
}

// GMTString formats dt as "Www, DD Mon YYYY HH:MM:SS GMT". It does not
// undo any offset dt was converted with; use GMT for an HTTP-date.
// A DateTime whose Month is outside 1-12, such as the zero value, formats
// as the empty string.
func (dt DateTime) GMTString() string {
	if dt.Month < 1 || dt.Month > 12 {
		return ""
	}
	b := make([]byte, 0, 29)
	b = append(b, weekdayNames[Weekday(dt.Days)]...)
	b = append(b, ", "...)
	b = appendPadded(b, dt.Day, 2)
	b = append(b, ' ')
	b = append(b, monthNames[dt.Month-1]...)
	b = append(b, ' ')
	b = appendPadded(b, dt.Year, 4)
	b = append(b, ' ')
	b = dt.appendClock(b)
	return string(append(b, " GMT"...))
}

// GMT formats r in the RFC 1123 style used by HTTP Date headers. The
// offset is always zero regardless of locale.
func GMT(r domain.EpochReading) string {
	return ConvertUTC(r).GMTString()
}
