package body

import (
	"io"
	"os"

	"github.com/indigo-web/response/errors"
)

// File is a stream backed by an OS file descriptor. Seeking is delegated to the
// descriptor, so it fails for pipes and sockets.
type File struct {
	fd     *os.File
	uri    string
	mode   Mode
	closed bool
}

// FromFile adopts an already opened descriptor as is. The descriptor is considered
// both readable and writable, the OS reports if it isn't.
func FromFile(fd *os.File) *File {
	return &File{
		fd:   fd,
		uri:  fd.Name(),
		mode: ReadWrite,
	}
}

func (f *File) Read(p []byte) (int, error) {
	if err := f.check(Read); err != nil {
		return 0, err
	}

	return f.fd.Read(p)
}

func (f *File) Write(p []byte) (int, error) {
	if err := f.check(Write); err != nil {
		return 0, err
	}

	return f.fd.Write(p)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, errors.ErrDetached
	}

	return f.fd.Seek(offset, whence)
}

func (f *File) Rewind() error {
	_, err := f.Seek(0, io.SeekStart)
	return err
}

func (f *File) Contents() ([]byte, error) {
	if err := f.check(Read); err != nil {
		return nil, err
	}

	return io.ReadAll(f.fd)
}

// Size returns the size of regular files only.
func (f *File) Size() (int64, bool) {
	if f.closed {
		return 0, false
	}

	stat, err := f.fd.Stat()
	if err != nil || !stat.Mode().IsRegular() {
		return 0, false
	}

	return stat.Size(), true
}

func (f *File) Metadata(key string) (string, bool) {
	switch key {
	case MetaURI:
		return f.uri, true
	case MetaMode:
		return f.mode.String(), true
	default:
		return "", false
	}
}

func (f *File) String() string {
	if f.check(Read) != nil || f.Rewind() != nil {
		return ""
	}

	data, err := io.ReadAll(f.fd)
	if err != nil {
		return ""
	}

	return string(data)
}

func (f *File) Close() error {
	if f.closed {
		return nil
	}

	f.closed = true

	return f.fd.Close()
}

func (f *File) check(op Mode) error {
	switch {
	case f.closed:
		return errors.ErrDetached
	case op == Read && !f.mode.Readable():
		return errors.ErrNotReadable
	case op == Write && !f.mode.Writable():
		return errors.ErrNotWritable
	}

	return nil
}
