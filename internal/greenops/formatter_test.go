package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits with separator", n: 1234, want: "1,234"},
		{name: "mining nameplate", n: 280000, want: "280,000"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "round to integer", f: 18248.56, precision: 0, want: "18,249"},
		{name: "one decimal place", f: 781.25, precision: 1, want: "781.3"},
		{name: "two decimal places", f: 1234.5678, precision: 2, want: "1,234.57"},
		{name: "small number", f: 0.5, precision: 1, want: "0.5"},
		{name: "zero", f: 0.0, precision: 2, want: "0.00"},
		{name: "negative with precision", f: -1234.56, precision: 2, want: "-1,234.56"},
		{name: "negative below one keeps sign", f: -0.25, precision: 2, want: "-0.25"},
		{name: "round up at boundary", f: 999.999, precision: 2, want: "1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "whole number grouped", v: 280000, want: "280,000"},
		{name: "below a thousand", v: 40, want: "40"},
		{name: "fraction kept", v: 1.25, want: "1.25"},
		{name: "fraction capped at three digits", v: 1234.56789, want: "1,234.568"},
		{name: "trailing zeros dropped", v: 12.5, want: "12.5"},
		{name: "zero", v: 0, want: "0"},
		{name: "large battery capacity", v: 1500000, want: "1,500,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.v))
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 280000, want: "280K"},
		{v: 24000, want: "24K"},
		{v: 1234567, want: "1235K"},
		{v: 0, want: "0K"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatThousands(tt.v))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want string
	}{
		{name: "below threshold uses comma format", n: 999999, want: "999,999"},
		{name: "exactly one million", n: 1000000, want: "~1.0 million"},
		{name: "millions with decimal", n: 5200000, want: "~5.2 million"},
		{name: "exactly one billion", n: 1000000000, want: "~1.0 billion"},
		{name: "zero", n: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.n))
		})
	}
}

func BenchmarkFormatQuantity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatQuantity(1234.5678)
	}
}
