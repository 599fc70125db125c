package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floatbits/ieee754"
)

func TestParseValue(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		arg      string
		spec     ieee754.PrecisionSpec
		raw      bool
		bits     uint64
		parseErr bool
	}{
		{"1.1", ieee754.Single, false, 0x3f8ccccd, false},
		{"-0.0", ieee754.Single, false, 0x80000000, false},
		{"0.5", ieee754.Double, false, 0x3fe0000000000000, false},
		{"1e5000", ieee754.Double, false, 0x7ff0000000000000, false},
		{"0x3f8ccccd", ieee754.Single, true, 0x3f8ccccd, false},
		{"0b1", ieee754.Single, true, 1, false},
		{"nope", ieee754.Single, false, 0, true},
		{"0x1ffffffff", ieee754.Single, true, 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := parseValue(test.arg, test.spec, test.raw)
			if test.parseErr {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.bits, d.Bits())
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	a := assert.New(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"show", "1.1"})
	a.NoError(rootCmd.Execute())
	a.Contains(out.String(), "| + | exponent |        mantissa         |")
	a.Contains(out.String(), "| 0 | 01111111 | 00011001100110011001101 |")
	a.Contains(out.String(), "normalized")

	out.Reset()
	rootCmd.SetArgs([]string{"encode", "0", "127", "0xccccd"})
	a.NoError(rootCmd.Execute())
	a.Contains(out.String(), "00011001100110011001101")

	out.Reset()
	rootCmd.SetArgs([]string{"show", "-p", "triple", "1"})
	a.Error(rootCmd.Execute())
}
