package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datum(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBrojDana(t *testing.T) {
	tests := []struct {
		od, do string
		want   int
	}{
		{"2025-10-15", "2025-10-17", 3},
		{"2025-10-15", "2025-10-15", 1},
		{"2025-12-29", "2026-01-02", 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BrojDana(datum(tc.od), datum(tc.do)), "%s..%s", tc.od, tc.do)
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 10, 15, 23, 45, 12, 0, time.FixedZone("CET", 3600))
	d := DateOnly(ts)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestDatumiSePoklapaju(t *testing.T) {
	tests := []struct {
		name                   string
		od1, do1, od2, do2     string
		want                   bool
	}{
		{"delimično preklapanje", "2025-10-15", "2025-10-17", "2025-10-16", "2025-10-18", true},
		{"jedan unutar drugog", "2025-10-10", "2025-10-20", "2025-10-12", "2025-10-14", true},
		{"dodiruju se na granici", "2025-10-15", "2025-10-17", "2025-10-17", "2025-10-19", true},
		{"bez preklapanja", "2025-10-15", "2025-10-17", "2025-10-18", "2025-10-20", false},
		{"obrnut redosled opsega", "2025-10-18", "2025-10-20", "2025-10-15", "2025-10-17", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DatumiSePoklapaju(datum(tc.od1), datum(tc.do1), datum(tc.od2), datum(tc.do2))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatStaz(t *testing.T) {
	sada := datum("2025-09-01")
	tests := []struct {
		zaposlen string
		want     string
	}{
		{"2025-08-20", "Manje od mesec dana"},
		{"2025-06-01", "3 meseca"},
		{"2024-08-25", "1 godina"},
		{"2022-06-15", "3 godine i 2 meseca"},
		{"2018-09-01", "7 godina"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatStaz(datum(tc.zaposlen), sada), tc.zaposlen)
	}
}
