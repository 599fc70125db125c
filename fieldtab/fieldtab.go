// Copyright 2026 The floatbits Authors. All rights reserved.

// Package fieldtab renders labeled bit-groups as fixed-width,
// pipe-delimited tables, one header row and one data row.
// Rendering is pure string assembly; the caller owns all I/O.
package fieldtab

import (
	"io"
	"strconv"
	"strings"

	"github.com/floatbits/ieee754"
	"github.com/floatbits/ieee754/internal/bitutil"
)

// Mode selects how a group's value is laid out in the data row.
type Mode int

const (
	// ModeBits gives every bit its own pipe-delimited cell,
	// most significant bit first.
	ModeBits Mode = iota
	// ModeBinary prints each group as one zero-padded binary string.
	ModeBinary
	// ModeDecimal prints each group as one decimal number.
	ModeDecimal
)

// Group is one labeled bit-field: 'Bits' bits of 'Value' under 'Label'.
type Group struct {
	Label string
	Bits  uint
	Value uint64
}

// Groups converts a decoded float into its three renderable fields.
func Groups(d ieee754.Decoded) []Group {
	return []Group{
		{Label: "+", Bits: 1, Value: uint64(d.Sign)},
		{Label: "exponent", Bits: d.Spec.ExponentBits, Value: d.RawExponent},
		{Label: "mantissa", Bits: d.Spec.MantissaBits, Value: d.RawMantissa},
	}
}

// Render produces the two-row table for the given groups.
// The output is a pure function of the arguments, byte for byte.
func Render(groups []Group, mode Mode) string {
	var header, data strings.Builder
	header.WriteByte('|')
	data.WriteByte('|')
	for _, g := range groups {
		content := groupContent(g, mode)
		if mode == ModeBits {
			// Bit cells carry their own padding, the label spans them all.
			header.WriteString(center(g.Label, 4*g.Bits-1))
			data.WriteString(content)
		} else {
			width := max(uint(len(g.Label)), uint(len(content)))
			header.WriteByte(' ')
			header.WriteString(center(g.Label, width))
			header.WriteByte(' ')
			data.WriteByte(' ')
			data.WriteString(center(content, width))
			data.WriteByte(' ')
		}
		header.WriteByte('|')
		data.WriteByte('|')
	}
	return header.String() + "\n" + data.String() + "\n"
}

// Fprint renders the groups and writes the table to w.
func Fprint(w io.Writer, groups []Group, mode Mode) error {
	_, err := io.WriteString(w, Render(groups, mode))
	return err
}

func groupContent(g Group, mode Mode) string {
	switch mode {
	case ModeBits:
		bin := bitutil.Binary(g.Value, g.Bits)
		cells := make([]string, len(bin))
		for i := range bin {
			cells[i] = " " + bin[i:i+1] + " "
		}
		return strings.Join(cells, "|")
	case ModeBinary:
		return bitutil.Binary(g.Value, g.Bits)
	default:
		return strconv.FormatUint(g.Value, 10)
	}
}

// center pads s to 'width' cells; an odd leftover space goes to the right.
func center(s string, width uint) string {
	if uint(len(s)) >= width {
		return s
	}
	left := (width - uint(len(s))) / 2
	right := width - uint(len(s)) - left
	return strings.Repeat(" ", int(left)) + s + strings.Repeat(" ", int(right))
}
