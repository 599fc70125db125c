// Copyright 2026 The floatbits Authors. All rights reserved.

// Package ieee754 decodes and encodes the bit layout of IEEE-754 binary
// interchange formats. A value is split into its sign, biased exponent
// and mantissa fields, and every bit pattern is classified into one of
// six categories. The layout itself is described by a PrecisionSpec, so
// single and double precision share one codec.
package ieee754

import (
	"fmt"
	"math"

	"github.com/floatbits/ieee754/internal/bitutil"
)

var (
	// ErrInvalidFieldWidth is returned by the Encode functions when a raw
	// field value does not fit the width declared by the precision spec.
	ErrInvalidFieldWidth = fmt.Errorf("field value exceeds declared bit width")

	errSpec = fmt.Errorf("malformed precision spec")
)

// PrecisionSpec describes the bit layout of an interchange format:
// one sign bit, then ExponentBits of biased exponent, then MantissaBits
// of mantissa, most significant field first.
//
//	31      23                      0
//	________|_______________________
//	seeeeeeeemmmmmmmmmmmmmmmmmmmmmmm   (Single)
//
// The zero value is not a valid spec; use Single, Double or NewSpec.
type PrecisionSpec struct {
	TotalBits    uint
	ExponentBits uint
	MantissaBits uint
	Bias         int32
}

var (
	// Single is the binary32 layout.
	Single = PrecisionSpec{TotalBits: 32, ExponentBits: 8, MantissaBits: 23, Bias: 127}
	// Double is the binary64 layout.
	Double = PrecisionSpec{TotalBits: 64, ExponentBits: 11, MantissaBits: 52, Bias: 1023}
)

// NewSpec returns a spec for a custom layout.
// Returns an error unless 1 + exponentBits + mantissaBits == totalBits
// and totalBits fits a machine word.
func NewSpec(totalBits, exponentBits, mantissaBits uint, bias int32) (PrecisionSpec, error) {
	s := PrecisionSpec{
		TotalBits:    totalBits,
		ExponentBits: exponentBits,
		MantissaBits: mantissaBits,
		Bias:         bias,
	}
	if err := s.check(); err != nil {
		return PrecisionSpec{}, err
	}
	return s, nil
}

func (s PrecisionSpec) valid() bool {
	return s.TotalBits <= 64 && s.ExponentBits > 0 && s.MantissaBits > 0 &&
		1+s.ExponentBits+s.MantissaBits == s.TotalBits
}

func (s PrecisionSpec) check() error {
	if s.valid() {
		return nil
	}
	return fmt.Errorf("%w: (1, %d, %d) fields in %d bits",
		errSpec, s.ExponentBits, s.MantissaBits, s.TotalBits)
}

// maxExponent is the all-ones exponent field, reserved for Inf and NaN.
func (s PrecisionSpec) maxExponent() uint64 {
	return bitutil.Mask(s.ExponentBits)
}

// quietBit is the most significant mantissa bit, set in quiet NaNs.
func (s PrecisionSpec) quietBit() uint64 {
	return 1 << (s.MantissaBits - 1)
}

// Category classifies a bit pattern. Every pattern of a layout belongs
// to exactly one category.
type Category uint8

const (
	Zero Category = iota
	Denormalized
	Normalized
	Infinity
	QuietNaN
	SignalingNaN
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Zero:
		return "zero"
	case Denormalized:
		return "denormalized"
	case Normalized:
		return "normalized"
	case Infinity:
		return "infinity"
	case QuietNaN:
		return "quiet NaN"
	case SignalingNaN:
		return "signaling NaN"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Decoded holds the raw fields of one value under a precision spec.
// It is immutable; Category and the conversions derive everything from
// the three fields, nothing is stored twice.
type Decoded struct {
	Sign        uint8
	RawExponent uint64
	RawMantissa uint64
	Spec        PrecisionSpec
}

// Decode32 splits a binary32 value into its fields.
func Decode32(f float32) Decoded {
	d, _ := DecodeBits(uint64(math.Float32bits(f)), Single)
	return d
}

// Decode64 splits a binary64 value into its fields.
func Decode64(f float64) Decoded {
	d, _ := DecodeBits(math.Float64bits(f), Double)
	return d
}

// DecodeBits splits a raw bit pattern into fields under the given spec.
// Every pattern decodes; the only possible error is a malformed spec.
func DecodeBits(bits uint64, spec PrecisionSpec) (Decoded, error) {
	if err := spec.check(); err != nil {
		return Decoded{}, err
	}
	return Decoded{
		Sign:        uint8(bitutil.Extract(bits, spec.TotalBits-1, 1)),
		RawExponent: bitutil.Extract(bits, spec.MantissaBits, spec.ExponentBits),
		RawMantissa: bitutil.Extract(bits, 0, spec.MantissaBits),
		Spec:        spec,
	}, nil
}

// EncodeBits packs raw fields into a bit pattern, the inverse of DecodeBits.
// Returns ErrInvalidFieldWidth if a field exceeds its declared width.
func EncodeBits(sign uint8, rawExp, rawMant uint64, spec PrecisionSpec) (uint64, error) {
	if err := spec.check(); err != nil {
		return 0, err
	}
	if sign > 1 {
		return 0, fmt.Errorf("%w: sign %d", ErrInvalidFieldWidth, sign)
	}
	if rawExp > spec.maxExponent() {
		return 0, fmt.Errorf("%w: exponent %d needs more than %d bits",
			ErrInvalidFieldWidth, rawExp, spec.ExponentBits)
	}
	if rawMant > bitutil.Mask(spec.MantissaBits) {
		return 0, fmt.Errorf("%w: mantissa %d needs more than %d bits",
			ErrInvalidFieldWidth, rawMant, spec.MantissaBits)
	}
	return uint64(sign)<<(spec.TotalBits-1) | rawExp<<spec.MantissaBits | rawMant, nil
}

// Encode32 packs raw fields into a binary32 value.
func Encode32(sign uint8, rawExp, rawMant uint64) (float32, error) {
	bits, err := EncodeBits(sign, rawExp, rawMant, Single)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// Encode64 packs raw fields into a binary64 value.
func Encode64(sign uint8, rawExp, rawMant uint64) (float64, error) {
	bits, err := EncodeBits(sign, rawExp, rawMant, Double)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// Bits repacks the decoded fields into the original bit pattern.
func (d Decoded) Bits() uint64 {
	return uint64(d.Sign)<<(d.Spec.TotalBits-1) |
		d.RawExponent<<d.Spec.MantissaBits |
		d.RawMantissa
}

// Category derives the value class from the raw fields.
// The matching order follows the format definition: the all-zero and
// all-one exponents are reserved, everything in between is normalized.
func (d Decoded) Category() Category {
	switch maxExp := d.Spec.maxExponent(); {
	case d.RawExponent == 0 && d.RawMantissa == 0:
		return Zero
	case d.RawExponent == 0:
		return Denormalized
	case d.RawExponent == maxExp && d.RawMantissa == 0:
		return Infinity
	case d.RawExponent == maxExp && d.RawMantissa&d.Spec.quietBit() != 0:
		return QuietNaN
	case d.RawExponent == maxExp:
		return SignalingNaN
	default:
		return Normalized
	}
}
