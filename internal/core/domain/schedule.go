package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParseSchedule combines a dd/mm/yyyy date and a 24-hour HH:MM time into a
// single local wall-clock instant. The date is always read as day, month,
// year in that order. ErrInvalidSchedule is returned when either input is
// absent or malformed, or when the composed instant fails calendar
// validation (e.g. 31/02).
func ParseSchedule(dateText, timeText string) (time.Time, error) {
	if dateText == "" || timeText == "" {
		return time.Time{}, ErrInvalidSchedule
	}

	dateParts := strings.Split(dateText, "/")
	if len(dateParts) != 3 {
		return time.Time{}, ErrInvalidSchedule
	}
	day, err1 := strconv.Atoi(dateParts[0])
	month, err2 := strconv.Atoi(dateParts[1])
	year, err3 := strconv.Atoi(dateParts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, ErrInvalidSchedule
	}

	timeParts := strings.Split(timeText, ":")
	if len(timeParts) != 2 {
		return time.Time{}, ErrInvalidSchedule
	}
	hour, err1 := strconv.Atoi(timeParts[0])
	minute, err2 := strconv.Atoi(timeParts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, ErrInvalidSchedule
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, ErrInvalidSchedule
	}
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, ErrInvalidSchedule
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)

	// time.Date normalises overflowing components (31/02 becomes 02/03);
	// a changed day after construction means the calendar date was invalid.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, ErrInvalidSchedule
	}
	return t, nil
}

// FormatScheduleDate renders t's date in the dd/mm/yyyy convention used by
// the booking forms.
func FormatScheduleDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatScheduleTime renders t's time of day as 24-hour HH:MM.
func FormatScheduleTime(t time.Time) string {
	return t.Format("15:04")
}
