package util

import (
    "strconv"
    "time"
)

// IsTradingDay reports whether t falls on a weekday. Exchange holidays are
// not modeled; generated histories only need weekends excluded.
func IsTradingDay(t time.Time) bool {
    wd := t.Weekday()
    return wd != time.Saturday && wd != time.Sunday
}

// LastTradingDay walks backwards from t to the most recent weekday.
func LastTradingDay(t time.Time) time.Time {
    for !IsTradingDay(t) {
        t = t.AddDate(0, 0, -1)
    }
    return t
}

// ParseDay parses a date-only value (2006-01-02), falling back to RFC3339
// and unix seconds. Returns (t, true) if any worked.
func ParseDay(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    if t, err := time.Parse("2006-01-02", s); err == nil {
        return t, true
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, true
    }
    if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
        return time.Unix(ts, 0), true
    }
    return time.Time{}, false
}

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
    if s == "" {
        return def
    }
    v, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return v
}
