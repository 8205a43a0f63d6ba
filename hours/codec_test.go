package hours

import (
	"errors"
	"testing"
)

func TestToMinutes_RoundTrip(t *testing.T) {
	for m := 0; m < MINUTES_PER_DAY; m++ {
		got, err := ToMinutes(ToTimeString(m))
		if err != nil {
			t.Fatalf("ToMinutes(%q) returned error: %v", ToTimeString(m), err)
		}
		if got != m {
			t.Fatalf("Round trip failed for %d: got %d", m, got)
		}
	}
}

func TestParseHours_Success(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		openM  int
		closeM int
	}{
		{
			name:   "Same day",
			input:  "09:00 - 18:00",
			openM:  540,
			closeM: 1080,
		},
		{
			name:   "Overnight",
			input:  "12:00 - 00:15",
			openM:  720,
			closeM: 15,
		},
		{
			name:   "Extra whitespace around tokens",
			input:  " 08:30 -  22:00",
			openM:  510,
			closeM: 1320,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spec, err := ParseHours(test.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if spec.OpenM != test.openM {
				t.Errorf("Expected OpenM %d, got %d", test.openM, spec.OpenM)
			}
			if spec.CloseM != test.closeM {
				t.Errorf("Expected CloseM %d, got %d", test.closeM, spec.CloseM)
			}
		})
	}
}

func TestParseHours_Failure(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Missing separator", "09:00 18:00"},
		{"Non numeric hour", "ab:00 - 18:00"},
		{"Non numeric minute", "09:xx - 18:00"},
		{"Missing colon", "0900 - 18:00"},
		{"Hour out of range", "25:00 - 18:00"},
		{"Minute out of range", "09:70 - 18:00"},
		{"Open equals close", "09:00 - 09:00"},
		{"Empty string", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseHours(test.input)
			if err == nil {
				t.Fatalf("Expected an error for %q, got nil", test.input)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Expected a *ParseError, got %T", err)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{1, "1 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1h"},
		{90, "1h30"},
		{120, "2h"},
		{125, "2h05"},
		{750, "12h30"},
	}

	for _, test := range tests {
		if got := FormatDuration(test.minutes); got != test.expected {
			t.Errorf("FormatDuration(%d): expected %q, got %q",
				test.minutes, test.expected, got)
		}
	}
}

func TestToTimeString_ZeroPadding(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "00:00"},
		{15, "00:15"},
		{540, "09:00"},
		{1439, "23:59"},
	}

	for _, test := range tests {
		if got := ToTimeString(test.minutes); got != test.expected {
			t.Errorf("ToTimeString(%d): expected %q, got %q",
				test.minutes, test.expected, got)
		}
	}
}
