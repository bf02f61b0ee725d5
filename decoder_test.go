package bincursor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsandr/bincursor"
)

type decodeTestDefinition struct {
	Name  string
	Data  []byte
	Width int
	Read  func(bincursor.Reader) (interface{}, error)
	Value interface{}
}

var ascending = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

var decodeTests = []decodeTestDefinition{
	{
		Name:  "uint8",
		Data:  []byte{0xff},
		Width: 1,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint8() },
		Value: uint8(0xff),
	},
	{
		Name:  "int8",
		Data:  []byte{0x80},
		Width: 1,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt8() },
		Value: int8(-128),
	},
	{
		Name:  "uint16 LE",
		Data:  ascending,
		Width: 2,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint16LE() },
		Value: uint16(0x0201),
	},
	{
		Name:  "uint16 BE",
		Data:  ascending,
		Width: 2,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint16BE() },
		Value: uint16(0x0102),
	},
	{
		Name:  "int16 LE",
		Data:  []byte{0xff, 0xfe},
		Width: 2,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt16LE() },
		Value: int16(-257),
	},
	{
		Name:  "int16 BE",
		Data:  []byte{0xff, 0xfe},
		Width: 2,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt16BE() },
		Value: int16(-2),
	},
	{
		Name:  "uint32 LE",
		Data:  ascending,
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint32LE() },
		Value: uint32(0x04030201),
	},
	{
		Name:  "uint32 BE",
		Data:  ascending,
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint32BE() },
		Value: uint32(0x01020304),
	},
	{
		Name:  "int32 LE",
		Data:  []byte{0xfe, 0xff, 0xff, 0xff},
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt32LE() },
		Value: int32(-2),
	},
	{
		Name:  "int32 BE",
		Data:  []byte{0x80, 0x00, 0x00, 0x00},
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt32BE() },
		Value: int32(math.MinInt32),
	},
	{
		Name:  "uint64 LE",
		Data:  ascending,
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint64LE() },
		Value: uint64(0x0807060504030201),
	},
	{
		Name:  "uint64 BE",
		Data:  ascending,
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadUint64BE() },
		Value: uint64(0x0102030405060708),
	},
	{
		Name:  "int64 LE",
		Data:  []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt64LE() },
		Value: int64(-2),
	},
	{
		Name:  "int64 BE",
		Data:  []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadInt64BE() },
		Value: int64(math.MaxInt64),
	},
	{
		Name:  "float32 LE",
		Data:  []byte{0x00, 0x00, 0x80, 0x3f},
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadFloat32LE() },
		Value: float32(1.0),
	},
	{
		Name:  "float32 BE",
		Data:  []byte{0xc0, 0x00, 0x00, 0x00},
		Width: 4,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadFloat32BE() },
		Value: float32(-2.0),
	},
	{
		Name:  "float64 LE",
		Data:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f},
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadFloat64LE() },
		Value: float64(1.0),
	},
	{
		Name:  "float64 BE",
		Data:  []byte{0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18},
		Width: 8,
		Read:  func(r bincursor.Reader) (interface{}, error) { return r.ReadFloat64BE() },
		Value: math.Pi,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		t.Run(test.Name, func(t *testing.T) {
			c := bincursor.NewCursor(test.Data)
			v, err := test.Read(c)
			require.NoError(t, err)
			assert.Equal(t, test.Value, v)
			assert.Equal(t, test.Width, c.Position())
		})
	}
}

// Every read succeeds exactly when the remaining bytes cover its width
func TestDecodeBounds(t *testing.T) {
	buf := make([]byte, 11)
	for _, test := range decodeTests {
		t.Run(test.Name, func(t *testing.T) {
			for pos := 0; pos <= len(buf); pos++ {
				c := bincursor.NewCursor(buf)
				require.NoError(t, c.Seek(pos))
				_, err := test.Read(c)
				if pos+test.Width <= len(buf) {
					require.NoError(t, err, "position %d", pos)
					assert.Equal(t, pos+test.Width, c.Position())
				} else {
					require.ErrorIs(t, err, bincursor.ErrInsufficientData, "position %d", pos)
					assert.Equal(t, pos, c.Position())
				}
			}
		})
	}
}

func TestDecodeNaN(t *testing.T) {
	c := bincursor.NewCursor([]byte{0x7f, 0xc0, 0x00, 0x01})
	v, err := c.ReadFloat32BE()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(v)))
	assert.Equal(t, uint32(0x7fc00001), math.Float32bits(v))
}
