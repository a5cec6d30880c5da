package body

import (
	"io"
	"os"
)

// Locators of in-memory streams. Any other locator passed to Open is treated as a path
// in the filesystem.
const (
	TempURI   = "mem://temp"
	MemoryURI = "mem://memory"
)

// Metadata keys supported by every Stream.
const (
	MetaURI  = "uri"
	MetaMode = "mode"
)

// Stream is a handle to a byte sequence used as a message body. It carries a cursor,
// which is shared by reads and writes.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	// Rewind moves the cursor to the beginning of the stream.
	Rewind() error
	// Contents reads everything from the current position until the end.
	Contents() ([]byte, error)
	// Size returns the size of the stream if it's known.
	Size() (int64, bool)
	// Metadata returns the value of a metadata key (see MetaURI and MetaMode).
	Metadata(key string) (string, bool)
	// String returns the whole content from the beginning. Errors result in an empty string.
	String() string
}

type Mode uint8

const (
	Read Mode = 1 << iota
	Write

	ReadWrite = Read | Write
)

func (m Mode) Readable() bool {
	return m&Read != 0
}

func (m Mode) Writable() bool {
	return m&Write != 0
}

func (m Mode) String() string {
	switch m {
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	default:
		return ""
	}
}

// Open binds a stream to the locator without writing anything into it. In-memory
// locators produce a fresh Buffer. Otherwise, the file is opened: read-only mode never
// creates it, write-only mode truncates it and read-write mode creates it if missing.
func Open(uri string, mode Mode) (Stream, error) {
	switch uri {
	case TempURI, MemoryURI:
		return NewBuffer(uri, mode), nil
	}

	var flag int
	switch mode {
	case Read:
		flag = os.O_RDONLY
	case Write:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	default:
		flag = os.O_RDWR | os.O_CREATE
	}

	fd, err := os.OpenFile(uri, flag, 0o644)
	if err != nil {
		return nil, err
	}

	return &File{fd: fd, uri: uri, mode: mode}, nil
}

// FromString returns a temporary buffer containing the content with the cursor at
// the beginning.
func FromString(content string) *Buffer {
	b := NewBuffer(TempURI, ReadWrite)
	_, _ = b.WriteString(content)
	_ = b.Rewind()

	return b
}
