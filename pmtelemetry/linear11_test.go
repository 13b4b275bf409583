package pmtelemetry

import (
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDecodeLinear11(t *testing.T) {
	cases := []struct {
		name string
		raw  uint16
		want float64
	}{
		{"zero", 0x0000, 0},
		{"positive mantissa, zero exponent", 0x0005, 5},
		{"negative mantissa, zero exponent", 0x07FF, -1}, // mantissa -1, exp 0
		{"exponent -2, mantissa 100", EncodeLinear11(25, -2), 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DecodeLinear11(c.raw); got != c.want {
				t.Errorf("DecodeLinear11(%#04x) = %v, want %v", c.raw, got, c.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		value    float64
		exponent int8
	}{
		{12.0, -2},
		{3.3, -4},
		{-5.5, -3},
		{100, 0},
	}
	for _, c := range cases {
		raw := EncodeLinear11(c.value, c.exponent)
		got := DecodeLinear11(raw)
		if math.Abs(got-c.value) > 0.5 {
			t.Errorf("round trip value=%v exponent=%d: got %v", c.value, c.exponent, got)
		}
	}
}

func TestDecodeVoltage(t *testing.T) {
	raw := EncodeLinear11(12.0, -5) // 12V at a fine exponent
	got := DecodeVoltage(raw)
	want := 12 * physic.Volt
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > physic.MilliVolt {
		t.Errorf("DecodeVoltage(%#04x) = %v, want ~%v", raw, got, want)
	}
}

func TestDecodeCurrent(t *testing.T) {
	raw := EncodeLinear11(1.5, -6)
	got := DecodeCurrent(raw)
	want := 1500 * physic.MilliAmpere
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > physic.MilliAmpere {
		t.Errorf("DecodeCurrent(%#04x) = %v, want ~%v", raw, got, want)
	}
}

func TestDecodeTemperature(t *testing.T) {
	raw := EncodeLinear11(25.0, -1)
	got := DecodeTemperature(raw)
	want := physic.ZeroCelsius + 25*physic.Celsius
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > physic.Celsius {
		t.Errorf("DecodeTemperature(%#04x) = %v, want ~%v", raw, got, want)
	}
}
