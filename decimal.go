// Copyright 2026 The floatbits Authors. All rights reserved.

package ieee754

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Float64 returns the number the fields encode:
//
//	normalized:   (-1)^sign * (1 + mantissa/2^mantissaBits) * 2^(exponent-bias)
//	denormalized: (-1)^sign * (mantissa/2^mantissaBits) * 2^(1-bias)
//
// The result is exact for Single and Double; wider custom layouts round
// to the nearest float64. NaNs keep their sign bit, which is meaningful
// for display only.
func (d Decoded) Float64() float64 {
	sign := float64(1)
	if d.Sign == 1 {
		sign = -1
	}
	mb := int(d.Spec.MantissaBits)
	switch d.Category() {
	case Zero:
		return sign * 0
	case Infinity:
		return sign * math.Inf(1)
	case QuietNaN, SignalingNaN:
		return math.Copysign(math.NaN(), sign)
	case Denormalized:
		return sign * math.Ldexp(float64(d.RawMantissa), 1-int(d.Spec.Bias)-mb)
	default:
		frac := 1 + float64(d.RawMantissa)*math.Ldexp(1, -mb)
		return sign * math.Ldexp(frac, int(d.RawExponent)-int(d.Spec.Bias))
	}
}

// Decimal returns the exact decimal expansion of a finite value.
// Every finite binary float m*2^e has one: for negative e it equals
// m*5^(-e) * 10^e, so the expansion always terminates.
// Returns ok == false for infinities and NaNs, which have no expansion.
func (d Decoded) Decimal() (dec decimal.Decimal, ok bool) {
	var e int
	mant := new(big.Int)
	switch d.Category() {
	case Infinity, QuietNaN, SignalingNaN:
		return decimal.Decimal{}, false
	case Zero:
		return decimal.Zero, true
	case Denormalized:
		mant.SetUint64(d.RawMantissa)
		e = 1 - int(d.Spec.Bias) - int(d.Spec.MantissaBits)
	default:
		mant.SetUint64(d.RawMantissa | 1<<d.Spec.MantissaBits)
		e = int(d.RawExponent) - int(d.Spec.Bias) - int(d.Spec.MantissaBits)
	}
	if d.Sign == 1 {
		mant.Neg(mant)
	}
	if e >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(e)), 0), true
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(e)), true
}
