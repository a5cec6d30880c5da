package body

import (
	"fmt"
	"io"

	"github.com/indigo-web/response/errors"
	"github.com/indigo-web/utils/uf"
)

// Buffer is an in-memory seekable stream.
type Buffer struct {
	data   []byte
	pos    int64
	uri    string
	mode   Mode
	closed bool
}

func NewBuffer(uri string, mode Mode) *Buffer {
	return &Buffer{
		uri:  uri,
		mode: mode,
	}
}

func (b *Buffer) Read(p []byte) (n int, err error) {
	if err = b.check(Read); err != nil {
		return 0, err
	}

	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n = copy(p, b.data[b.pos:])
	b.pos += int64(n)

	return n, nil
}

// Write writes p at the cursor, overwriting and growing the buffer as needed.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if err = b.check(Write); err != nil {
		return 0, err
	}

	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.pos:], p)
	b.pos = end

	return len(p), nil
}

func (b *Buffer) WriteString(s string) (n int, err error) {
	return b.Write(uf.S2B(s))
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, errors.ErrDetached
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("%w: whence %d", errors.ErrInvalidArgument, whence)
	}

	if abs < 0 {
		return 0, fmt.Errorf("%w: negative position %d", errors.ErrInvalidArgument, abs)
	}

	b.pos = abs

	return abs, nil
}

func (b *Buffer) Rewind() error {
	_, err := b.Seek(0, io.SeekStart)
	return err
}

func (b *Buffer) Contents() ([]byte, error) {
	if err := b.check(Read); err != nil {
		return nil, err
	}

	if b.pos >= int64(len(b.data)) {
		return []byte{}, nil
	}

	contents := make([]byte, int64(len(b.data))-b.pos)
	copy(contents, b.data[b.pos:])
	b.pos = int64(len(b.data))

	return contents, nil
}

func (b *Buffer) Size() (int64, bool) {
	if b.closed {
		return 0, false
	}

	return int64(len(b.data)), true
}

func (b *Buffer) Metadata(key string) (string, bool) {
	switch key {
	case MetaURI:
		return b.uri, true
	case MetaMode:
		return b.mode.String(), true
	default:
		return "", false
	}
}

func (b *Buffer) String() string {
	if b.check(Read) != nil {
		return ""
	}

	b.pos = int64(len(b.data))

	return string(b.data)
}

// Close detaches the buffer and frees its memory. Every following operation fails.
func (b *Buffer) Close() error {
	b.closed = true
	b.data = nil
	b.pos = 0

	return nil
}

func (b *Buffer) check(op Mode) error {
	switch {
	case b.closed:
		return errors.ErrDetached
	case op == Read && !b.mode.Readable():
		return errors.ErrNotReadable
	case op == Write && !b.mode.Writable():
		return errors.ErrNotWritable
	}

	return nil
}
