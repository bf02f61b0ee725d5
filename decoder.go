package bincursor

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// decodeUint reads sizeOf[T]() bytes in the given byte order. Every
// fixed-width read goes through here so the bounds check lives in one place.
func decodeUint[T constraints.Unsigned](h *handle, op string, order binary.ByteOrder) (T, error) {
	size := sizeOf[T]()
	b, err := h.nextBytes(op, size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return T(b[0]), nil
	case 2:
		return T(order.Uint16(b)), nil
	case 4:
		return T(order.Uint32(b)), nil
	default: // 8
		return T(order.Uint64(b)), nil
	}
}

// ReadUint8 reads a single unsigned byte
func (h *handle) ReadUint8() (uint8, error) {
	return decodeUint[uint8](h, "ReadUint8", binary.LittleEndian)
}

// ReadInt8 reads a single two's-complement byte
func (h *handle) ReadInt8() (int8, error) {
	v, err := decodeUint[uint8](h, "ReadInt8", binary.LittleEndian)
	return int8(v), err
}

func (h *handle) ReadUint16LE() (uint16, error) {
	return decodeUint[uint16](h, "ReadUint16LE", binary.LittleEndian)
}

func (h *handle) ReadUint16BE() (uint16, error) {
	return decodeUint[uint16](h, "ReadUint16BE", binary.BigEndian)
}

func (h *handle) ReadInt16LE() (int16, error) {
	v, err := decodeUint[uint16](h, "ReadInt16LE", binary.LittleEndian)
	return int16(v), err
}

func (h *handle) ReadInt16BE() (int16, error) {
	v, err := decodeUint[uint16](h, "ReadInt16BE", binary.BigEndian)
	return int16(v), err
}

func (h *handle) ReadUint32LE() (uint32, error) {
	return decodeUint[uint32](h, "ReadUint32LE", binary.LittleEndian)
}

func (h *handle) ReadUint32BE() (uint32, error) {
	return decodeUint[uint32](h, "ReadUint32BE", binary.BigEndian)
}

func (h *handle) ReadInt32LE() (int32, error) {
	v, err := decodeUint[uint32](h, "ReadInt32LE", binary.LittleEndian)
	return int32(v), err
}

func (h *handle) ReadInt32BE() (int32, error) {
	v, err := decodeUint[uint32](h, "ReadInt32BE", binary.BigEndian)
	return int32(v), err
}

func (h *handle) ReadUint64LE() (uint64, error) {
	return decodeUint[uint64](h, "ReadUint64LE", binary.LittleEndian)
}

func (h *handle) ReadUint64BE() (uint64, error) {
	return decodeUint[uint64](h, "ReadUint64BE", binary.BigEndian)
}

func (h *handle) ReadInt64LE() (int64, error) {
	v, err := decodeUint[uint64](h, "ReadInt64LE", binary.LittleEndian)
	return int64(v), err
}

func (h *handle) ReadInt64BE() (int64, error) {
	v, err := decodeUint[uint64](h, "ReadInt64BE", binary.BigEndian)
	return int64(v), err
}

// ReadFloat32LE reads a little-endian IEEE-754 binary32 value
func (h *handle) ReadFloat32LE() (float32, error) {
	v, err := decodeUint[uint32](h, "ReadFloat32LE", binary.LittleEndian)
	return math.Float32frombits(v), err
}

// ReadFloat32BE reads a big-endian IEEE-754 binary32 value
func (h *handle) ReadFloat32BE() (float32, error) {
	v, err := decodeUint[uint32](h, "ReadFloat32BE", binary.BigEndian)
	return math.Float32frombits(v), err
}

// ReadFloat64LE reads a little-endian IEEE-754 binary64 value
func (h *handle) ReadFloat64LE() (float64, error) {
	v, err := decodeUint[uint64](h, "ReadFloat64LE", binary.LittleEndian)
	return math.Float64frombits(v), err
}

// ReadFloat64BE reads a big-endian IEEE-754 binary64 value
func (h *handle) ReadFloat64BE() (float64, error) {
	v, err := decodeUint[uint64](h, "ReadFloat64BE", binary.BigEndian)
	return math.Float64frombits(v), err
}
