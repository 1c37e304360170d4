package domain

import (
	"errors"
	"testing"
)

func TestParseSchedule_RoundTrip(t *testing.T) {
	cases := []struct {
		date string
		time string
	}{
		{"01/01/2024", "00:00"},
		{"31/12/2024", "23:59"},
		{"29/02/2024", "10:30"}, // leap day
		{"15/06/2025", "08:05"},
	}

	for _, tc := range cases {
		got, err := ParseSchedule(tc.date, tc.time)
		if err != nil {
			t.Fatalf("ParseSchedule(%q, %q): %v", tc.date, tc.time, err)
		}
		if d := FormatScheduleDate(got); d != tc.date {
			t.Errorf("date round trip: got %q, want %q", d, tc.date)
		}
		if h := FormatScheduleTime(got); h != tc.time {
			t.Errorf("time round trip: got %q, want %q", h, tc.time)
		}
	}
}

func TestParseSchedule_DayMonthOrder(t *testing.T) {
	// 02/03 must be the 2nd of March, never February 3rd
	got, err := ParseSchedule("02/03/2024", "09:00")
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}
	if got.Day() != 2 || got.Month() != 3 {
		t.Fatalf("expected day=2 month=3, got day=%d month=%d", got.Day(), got.Month())
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	cases := []struct {
		name string
		date string
		time string
	}{
		{"february 31st", "31/02/2024", "10:00"},
		{"30-day month overflow", "31/04/2024", "10:00"},
		{"non-leap february 29th", "29/02/2023", "10:00"},
		{"empty date", "", "10:00"},
		{"empty time", "01/01/2024", ""},
		{"two date components", "01/2024", "10:00"},
		{"four date components", "01/01/20/24", "10:00"},
		{"non-numeric date", "aa/bb/cccc", "10:00"},
		{"non-numeric time", "01/01/2024", "aa:bb"},
		{"hour out of range", "01/01/2024", "24:00"},
		{"minute out of range", "01/01/2024", "12:60"},
		{"missing minutes", "01/01/2024", "12"},
		{"zero day", "00/01/2024", "10:00"},
		{"month thirteen", "01/13/2024", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSchedule(tc.date, tc.time); !errors.Is(err, ErrInvalidSchedule) {
				t.Fatalf("ParseSchedule(%q, %q) = %v, want ErrInvalidSchedule", tc.date, tc.time, err)
			}
		})
	}
}
