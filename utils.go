package bincursor

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// sizeOf returns the encoded width of a fixed-size integer type in bytes
func sizeOf[T constraints.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
