package core

// serial.go converts spreadsheet date serials to calendar dates.
//
// Import sources hand us dates as floating-point day counts in the 1900-based
// spreadsheet date system. Day zero of that system sits 25569 days before the
// Unix epoch (the offset bakes in the spreadsheet lineage's 1900 leap-year
// bug, so it is applied exactly rather than derived). The fractional part of
// the serial is the time of day.

import (
	"math"
	"time"
)

// serialEpochOffsetDays is the day count from the spreadsheet epoch to
// 1970-01-01.
const serialEpochOffsetDays = 25569

// serialEpsilon compensates for float truncation when the fractional day
// represents an exact time such as noon (0.5 can arrive as 0.49999...).
const serialEpsilon = 0.0000001

// SerialDateToTime converts a spreadsheet date serial to a local calendar
// time. The caller guarantees numeric input; there are no error cases.
func SerialDateToTime(serial float64) time.Time {
	days := int64(math.Floor(serial - serialEpochOffsetDays))
	day := time.Unix(days*86400, 0).UTC()

	frac := serial - math.Floor(serial) + serialEpsilon
	total := int(math.Floor(86400 * frac))
	sec := total % 60
	total -= sec
	hour := total / 3600
	min := (total / 60) % 60

	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, sec, 0, time.Local)
}

// FormatSerialDate renders a spreadsheet date serial as the YYYY-MM-DD string
// every record stores. The time-of-day component is dropped.
func FormatSerialDate(serial float64) string {
	return SerialDateToTime(serial).Format(dateLayout)
}

// dateLayout is the single calendar-date format used across all record kinds.
const dateLayout = "2006-01-02"

// Today returns the current local date in the storage format, used when a
// created record stamps its own date.
func Today() string {
	return time.Now().Format(dateLayout)
}
