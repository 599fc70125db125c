// Copyright 2026 The floatbits Authors. All rights reserved.

package ieee754_test

import (
	"fmt"
	"math"

	"github.com/floatbits/ieee754"
)

func ExampleDecode32() {
	d := ieee754.Decode32(1.1)
	fmt.Printf("sign=%d exponent=%d mantissa=%d category=%s\n",
		d.Sign, d.RawExponent, d.RawMantissa, d.Category())

	if dec, ok := d.Decimal(); ok {
		fmt.Printf("exactly %s\n", dec)
	}

	d = ieee754.Decode32(float32(math.Inf(-1)))
	fmt.Printf("sign=%d exponent=%d mantissa=%d category=%s\n",
		d.Sign, d.RawExponent, d.RawMantissa, d.Category())

	// Output:
	// sign=0 exponent=127 mantissa=838861 category=normalized
	// exactly 1.10000002384185791015625
	// sign=1 exponent=255 mantissa=0 category=infinity
}

func ExampleEncode64() {
	f, err := ieee754.Encode64(0, 1026, 0x8000000000000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v\n", f)

	_, err = ieee754.Encode64(0, 1<<11, 0)
	fmt.Println(err)

	// Output:
	// 12
	// field value exceeds declared bit width: exponent 2048 needs more than 11 bits
}
