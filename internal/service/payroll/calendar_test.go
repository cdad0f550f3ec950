package payroll

import (
	"errors"
	"testing"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
)

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"february leap year", 2, 2024, 25},
		{"february non-leap year", 2, 2023, 24},
		{"july with four sundays", 7, 2025, 27},
		{"december starting on sunday", 12, 2024, 26},
		{"thirty day month", 6, 2025, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkingDays(tt.month, tt.year)
			if err != nil {
				t.Fatalf("WorkingDays(%d, %d) returned error: %v", tt.month, tt.year, err)
			}
			if got != tt.want {
				t.Errorf("WorkingDays(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestWorkingDaysAlwaysPositive(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			got, err := WorkingDays(month, year)
			if err != nil {
				t.Fatalf("WorkingDays(%d, %d) returned error: %v", month, year, err)
			}
			if got < 1 {
				t.Errorf("WorkingDays(%d, %d) = %d, want >= 1", month, year, got)
			}
		}
	}
}

func TestWorkingDaysInvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2025},
		{"month thirteen", 13, 2025},
		{"negative month", -1, 2025},
		{"year too small", 6, 1999},
		{"year too large", 6, 2101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WorkingDays(tt.month, tt.year)
			if !errors.Is(err, payroll.ErrInvalidPeriod) {
				t.Errorf("WorkingDays(%d, %d) error = %v, want ErrInvalidPeriod", tt.month, tt.year, err)
			}
		})
	}
}
