package commands

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "small", amount: 8, want: "8.00"},
		{name: "rounding", amount: 12.506, want: "12.51"},
		{name: "thousands", amount: 1234.5, want: "1,234.50"},
		{name: "millions", amount: 1234567.89, want: "1,234,567.89"},
		{name: "exactly three digits", amount: 999.99, want: "999.99"},
		{name: "four digits", amount: 1000, want: "1,000.00"},
		{name: "negative", amount: -1234.5, want: "-1,234.50"},
		{name: "zero", amount: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMoney(tt.amount); got != tt.want {
				t.Errorf("formatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
