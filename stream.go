// Copyright 2026 The floatbits Authors. All rights reserved.

package ieee754

import (
	"encoding/binary"
	"io"
	"math"
)

// Interchange bytes are little-endian, the convention shared by wasm,
// BSON and most wire formats. All bit patterns round-trip, including
// NaN payloads and negative zero.

// ReadFloat32 reads a binary32 value from r.
func ReadFloat32(r io.Reader) (float32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// ReadFloat64 reads a binary64 value from r.
func ReadFloat64(r io.Reader) (float64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// AppendFloat32 appends the 4 interchange bytes of f to b.
func AppendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

// AppendFloat64 appends the 8 interchange bytes of f to b.
func AppendFloat64(b []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
}

// WriteFloat32 writes the 4 interchange bytes of f to w.
func WriteFloat32(w io.Writer, f float32) error {
	_, err := w.Write(AppendFloat32(nil, f))
	return err
}

// WriteFloat64 writes the 8 interchange bytes of f to w.
func WriteFloat64(w io.Writer, f float64) error {
	_, err := w.Write(AppendFloat64(nil, f))
	return err
}
