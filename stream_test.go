package ieee754

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Bytes(t *testing.T) {
	a := assert.New(t)
	tests := []float32{0, 1.1, -1.1, float32(math.Inf(1)), math.SmallestNonzeroFloat32}
	for i, f := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			a.NoError(WriteFloat32(&buf, f))
			a.Equal(4, buf.Len())
			a.Equal(AppendFloat32(nil, f), buf.Bytes())
			got, err := ReadFloat32(&buf)
			if a.NoError(err) {
				a.Equal(math.Float32bits(f), math.Float32bits(got))
			}
		})
	}
}

func TestFloat64Bytes(t *testing.T) {
	a := assert.New(t)
	tests := []float64{0, math.Copysign(0, -1), 1.1, math.Inf(-1), math.MaxFloat64}
	for i, f := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			a.NoError(WriteFloat64(&buf, f))
			a.Equal(8, buf.Len())
			got, err := ReadFloat64(&buf)
			if a.NoError(err) {
				a.Equal(math.Float64bits(f), math.Float64bits(got))
			}
		})
	}
}

// NaN payload bits must survive a byte round-trip untouched.
func TestBytesNaNPayload(t *testing.T) {
	a := assert.New(t)
	f := math.Float64frombits(0x7ff000000000abcd)
	var buf bytes.Buffer
	a.NoError(WriteFloat64(&buf, f))
	got, err := ReadFloat64(&buf)
	if a.NoError(err) {
		a.Equal(uint64(0x7ff000000000abcd), math.Float64bits(got))
	}
}

func TestReadShortInput(t *testing.T) {
	a := assert.New(t)
	_, err := ReadFloat32(bytes.NewReader([]byte{1, 2, 3}))
	a.ErrorIs(err, io.ErrUnexpectedEOF)
	_, err = ReadFloat64(bytes.NewReader(nil))
	a.ErrorIs(err, io.EOF)
}

func TestAppendGrows(t *testing.T) {
	a := assert.New(t)
	b := AppendFloat32([]byte{0xff}, 1)
	a.Equal(5, len(b))
	a.Equal(byte(0xff), b[0])
	b = AppendFloat64(b, 1)
	a.Equal(13, len(b))
}
