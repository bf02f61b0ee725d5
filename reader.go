package bincursor

import "errors"

// Reader is the method set shared by a Cursor and an active Jump
type Reader interface {
	Position() int
	Len() int
	Remaining() int
	Seek(target int) error
	Skip(n int) error
	Peek(n int) ([]byte, error)
	ReadBytes(n int) ([]byte, error)

	ReadUint8() (uint8, error)
	ReadInt8() (int8, error)
	ReadUint16LE() (uint16, error)
	ReadUint16BE() (uint16, error)
	ReadInt16LE() (int16, error)
	ReadInt16BE() (int16, error)
	ReadUint32LE() (uint32, error)
	ReadUint32BE() (uint32, error)
	ReadInt32LE() (int32, error)
	ReadInt32BE() (int32, error)
	ReadUint64LE() (uint64, error)
	ReadUint64BE() (uint64, error)
	ReadInt64LE() (int64, error)
	ReadInt64BE() (int64, error)
	ReadFloat32LE() (float32, error)
	ReadFloat32BE() (float32, error)
	ReadFloat64LE() (float64, error)
	ReadFloat64BE() (float64, error)

	PushLocation() error
	PopLocation() (int, bool)
	RestoreLocation() error

	JumpTo(target int) (*Jump, error)
}

var (
	_ Reader = (*Cursor)(nil)
	_ Reader = (*Jump)(nil)
)

// Count applies parse n times and collects the results. If any call fails,
// r is moved back to where it was before Count was called.
func Count[T any](r Reader, n int, parse func(Reader) (T, error)) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	start := r.Position()
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item, err := parse(r)
		if err != nil {
			if seekErr := r.Seek(start); seekErr != nil {
				return nil, errors.Join(err, seekErr)
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
