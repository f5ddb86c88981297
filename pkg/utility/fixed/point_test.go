package fixed

import (
	"testing"
)

func TestFixedPoint_Construction(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		expected string
	}{
		{"from int", FromInt(42, 0), "42"},
		{"from int with scale", FromInt(1234, 2), "12.34"},
		{"from int64", FromInt64(-7, 0), "-7"},
		{"from float64", FromFloat64(2.5), "2.5"},
		{"zero constant", Zero, "0"},
		{"one constant", One, "1"},
		{"hundred constant", Hundred, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.String(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFixedPoint_Arithmetic(t *testing.T) {
	a := FromInt(6, 0)
	b := FromInt(4, 0)

	if got := a.Add(b); !got.Eq(FromInt(10, 0)) {
		t.Errorf("Add: got %s", got)
	}
	if got := a.Sub(b); !got.Eq(FromInt(2, 0)) {
		t.Errorf("Sub: got %s", got)
	}
	if got := a.Mul(b); !got.Eq(FromInt(24, 0)) {
		t.Errorf("Mul: got %s", got)
	}
	if got := a.Div(b); !got.Eq(FromFloat64(1.5)) {
		t.Errorf("Div: got %s", got)
	}
	if got := a.MulInt(3); !got.Eq(FromInt(18, 0)) {
		t.Errorf("MulInt: got %s", got)
	}
	if got := a.DivInt(3); !got.Eq(FromInt(2, 0)) {
		t.Errorf("DivInt: got %s", got)
	}
	if got := b.Neg(); !got.Eq(FromInt(-4, 0)) {
		t.Errorf("Neg: got %s", got)
	}
	if got := b.Neg().Abs(); !got.Eq(b) {
		t.Errorf("Abs: got %s", got)
	}
	if got := FromInt(9, 0).Sqrt(); !got.Eq(FromInt(3, 0)) {
		t.Errorf("Sqrt: got %s", got)
	}
}

func TestFixedPoint_Comparisons(t *testing.T) {
	small := FromInt(1, 0)
	big := FromInt(2, 0)

	if !small.Lt(big) || !big.Gt(small) {
		t.Error("Lt/Gt disagree")
	}
	if !small.Lte(small) || !small.Gte(small) {
		t.Error("Lte/Gte should hold for equal points")
	}
	if !small.Eq(FromFloat64(1.0)) {
		t.Error("Eq should ignore scale")
	}
	if !Zero.IsZero() || small.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestFixedPoint_Rescale(t *testing.T) {
	p := FromFloat64(2.0 / 3.0)

	if got := p.Rescale(2).String(); got != "0.67" {
		t.Errorf("Rescale: got %s", got)
	}
}

func TestFixedPoint_MarshalText(t *testing.T) {
	text, err := FromFloat64(12.5).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "12.5" {
		t.Errorf("MarshalText: got %s", text)
	}
}
