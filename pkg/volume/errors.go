package volume

import "errors"

var (
	ErrInvalidDescriptor   = errors.New("invalid volume descriptor")
	ErrDuplicateMountPoint = errors.New("duplicate mount point")
	ErrEmptyMountPoint     = errors.New("empty mount point")
	ErrUnsupportedFormat   = errors.New("unsupported encoding format")
	ErrReadFile            = errors.New("read volume file")
	ErrDecode              = errors.New("decode volume data")
	ErrEncode              = errors.New("encode volume data")
)
