// Package locale renders prices and dates the way Indonesian users read them.
package locale

import (
	"strconv"
	"time"
)

var (
	dayNames   = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthNames = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

// Jakarta is the venue's local time zone. Falls back to a fixed UTC+7 zone
// when the tz database is unavailable.
var Jakarta = loadJakarta()

func loadJakarta() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*60*60)
}

// FormatRupiah formats a whole Rupiah amount with dot thousands separators,
// e.g. 150000 -> "Rp150.000".
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	out := make([]byte, 0, len(digits)+len(digits)/3+3)
	if neg {
		out = append(out, '-')
	}
	out = append(out, "Rp"...)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return string(out)
}

// FormatDate renders a date as "Minggu, 1 Juni 2025".
func FormatDate(t time.Time) string {
	return dayNames[t.Weekday()] + ", " + strconv.Itoa(t.Day()) + " " + monthNames[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// Today returns today's date in Jakarta as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.In(Jakarta).Format(time.DateOnly)
}

// FormatDateString formats a backend date, given either as YYYY-MM-DD or as an
// RFC 3339 timestamp. Timestamps are read in Jakarta time. Unparseable input
// yields "".
func FormatDateString(s string) string {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return FormatDate(t)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FormatDate(t.In(Jakarta))
	}
	return ""
}
