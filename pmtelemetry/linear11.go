// Package pmtelemetry decodes PMBus LINEAR11-encoded telemetry register
// values into periph.io/x/conn/v3/physic unit types. It has no dependency on
// pmbsf; a Host implementation (see pmcmd) calls into it when servicing
// READ_VOUT/READ_IOUT/READ_TEMPERATURE-style commands.
package pmtelemetry

import "periph.io/x/conn/v3/physic"

// DecodeLinear11 interprets raw as a PMBus LINEAR11 word: a 5-bit two's
// complement exponent (bits 15:11) and an 11-bit two's complement mantissa
// (bits 10:0), giving mantissa * 2^exponent.
func DecodeLinear11(raw uint16) float64 {
	exponent := int8(raw>>11) << 3 >> 3 // sign-extend the low 5 bits
	mantissa := int16(raw<<5) >> 5      // sign-extend the low 11 bits

	value := float64(mantissa)
	if exponent >= 0 {
		value *= float64(uint32(1) << uint(exponent))
	} else {
		value /= float64(uint32(1) << uint(-exponent))
	}
	return value
}

// EncodeLinear11 packs value into a LINEAR11 word using exponent, the
// caller-chosen power-of-two scale; the scaled mantissa is truncated toward
// zero, not rounded to the nearest representable value. It is the inverse of
// DecodeLinear11 for a fixed exponent, useful for building test fixtures and
// simulated telemetry registers.
func EncodeLinear11(value float64, exponent int8) uint16 {
	var mantissa int16
	if exponent >= 0 {
		mantissa = int16(value / float64(uint32(1)<<uint(exponent)))
	} else {
		mantissa = int16(value * float64(uint32(1)<<uint(-exponent)))
	}
	return uint16(exponent&0x1f)<<11 | uint16(mantissa)&0x7ff
}

// DecodeVoltage decodes raw as a READ_VOUT-style LINEAR11 voltage.
func DecodeVoltage(raw uint16) physic.ElectricPotential {
	return physic.ElectricPotential(DecodeLinear11(raw) * float64(physic.Volt))
}

// DecodeCurrent decodes raw as a READ_IOUT-style LINEAR11 current.
func DecodeCurrent(raw uint16) physic.ElectricCurrent {
	return physic.ElectricCurrent(DecodeLinear11(raw) * float64(physic.Ampere))
}

// DecodeTemperature decodes raw as a READ_TEMPERATURE-style LINEAR11 value,
// given in degrees Celsius.
func DecodeTemperature(raw uint16) physic.Temperature {
	celsius := DecodeLinear11(raw)
	return physic.ZeroCelsius + physic.Temperature(celsius*float64(physic.Celsius))
}
