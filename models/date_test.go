package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateAddDays(t *testing.T) {
	cases := []struct {
		start Date
		days  int
		want  string
	}{
		{NewDate(2024, 1, 1), 30, "2024-01-31"},
		{NewDate(2024, 1, 1), 0, "2024-01-01"},
		{NewDate(2024, 2, 28), 1, "2024-02-29"}, // leap year
		{NewDate(2023, 2, 28), 1, "2023-03-01"},
		{NewDate(2024, 12, 31), 1, "2025-01-01"},
		{NewDate(2024, 1, 1), 365, "2024-12-31"},
	}

	for _, tc := range cases {
		if got := tc.start.AddDays(tc.days).String(); got != tc.want {
			t.Errorf("%s + %d days = %s, want %s", tc.start, tc.days, got, tc.want)
		}
	}
}

func TestDateJSONRoundtrip(t *testing.T) {
	d := NewDate(2024, 1, 31)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(b) != `"2024-01-31"` {
		t.Errorf("marshalled = %s, want \"2024-01-31\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if back.String() != d.String() {
		t.Errorf("roundtrip = %s, want %s", back, d)
	}
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"31/01/2024"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 1, 31, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time) returned error: %v", err)
	}
	if d.String() != "2024-01-31" {
		t.Errorf("scanned time = %s, want 2024-01-31", d)
	}

	if err := d.Scan("2024-02-01"); err != nil {
		t.Fatalf("Scan(string) returned error: %v", err)
	}
	if d.String() != "2024-02-01" {
		t.Errorf("scanned string = %s, want 2024-02-01", d)
	}

	// Drivers that store dates as timestamps hand back the long form.
	if err := d.Scan("2024-03-05 00:00:00+00:00"); err != nil {
		t.Fatalf("Scan(timestamp string) returned error: %v", err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("scanned timestamp = %s, want 2024-03-05", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if !d.IsZero() {
		t.Error("Scan(nil) should zero the date")
	}
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, 1, 31).Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if v != "2024-01-31" {
		t.Errorf("Value = %v, want 2024-01-31", v)
	}

	v, err = (Date{}).Value()
	if err != nil {
		t.Fatalf("Value on zero returned error: %v", err)
	}
	if v != nil {
		t.Errorf("zero Value = %v, want nil", v)
	}
}
