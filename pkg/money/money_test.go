package money

import "testing"

func TestAverage(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		count int64
		want  int64
	}{
		{name: "zero count", total: 45000, count: 0, want: 0},
		{name: "exact", total: 45000, count: 3, want: 15000},
		{name: "rounds up", total: 10001, count: 2, want: 5001},
		{name: "rounds down", total: 10000, count: 3, want: 3333},
	}

	for _, tt := range tests {
		if got := Average(tt.total, tt.count); got != tt.want {
			t.Fatalf("%s: Average(%d, %d) = %d, want %d", tt.name, tt.total, tt.count, got, tt.want)
		}
	}
}

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "Rp 0"},
		{amount: 500, want: "Rp 500"},
		{amount: 5000, want: "Rp 5.000"},
		{amount: 25000, want: "Rp 25.000"},
		{amount: 1250000, want: "Rp 1.250.000"},
		{amount: -5000, want: "-Rp 5.000"},
	}

	for _, tt := range tests {
		if got := FormatIDR(tt.amount); got != tt.want {
			t.Fatalf("FormatIDR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
