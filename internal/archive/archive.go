// Package archive stores a palette as the single Swatches.json entry of a
// zip container.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"swatchbook/internal/palette"
)

// EntryName is the only entry read from or written to an archive.
const EntryName = "Swatches.json"

// DefaultMethod is the compression used when none is configured.
const DefaultMethod = zip.Deflate

// maxEntrySize caps how much of the entry is read; a full document is a few KiB.
const maxEntrySize = 1 << 20

var (
	// ErrArchiveEntryMissing is returned when the container has no EntryName.
	ErrArchiveEntryMissing = errors.New("archive entry missing")
	// ErrIO marks filesystem and container failures.
	ErrIO = errors.New("i/o error")
)

var sevenZipMagic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}

type ioError struct {
	op   string
	path string
	err  error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.op, e.path, e.err)
}

func (e *ioError) Unwrap() error { return e.err }

func (e *ioError) Is(target error) bool { return target == ErrIO }

func ioErr(op, path string, err error) error {
	return errors.WithStack(&ioError{op: op, path: path, err: err})
}

type options struct {
	method uint16
}

// Option configures Save.
type Option func(*options)

// WithMethod selects the zip compression method (zip.Deflate or zip.Store).
func WithMethod(method uint16) Option {
	return func(o *options) { o.method = method }
}

// ParseMethod maps a configuration name onto a zip method.
func ParseMethod(name string) (uint16, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "deflate":
		return DefaultMethod, nil
	case "store":
		return zip.Store, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want deflate or store)", name)
	}
}

// Save writes p to dest, replacing any existing file. The archive is built
// in a temporary file next to dest and renamed into place, so dest is either
// the complete new archive or left as it was.
func Save(p *palette.Palette, dest string, opts ...Option) (err error) {
	o := options{method: DefaultMethod}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "encode palette")
	}

	tmp := filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return ioErr("create", dest, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = writeArchive(f, data, o); err != nil {
		return ioErr("write", dest, err)
	}
	if err = f.Sync(); err != nil {
		return ioErr("sync", dest, err)
	}
	if err = f.Close(); err != nil {
		return ioErr("close", dest, err)
	}
	if err = os.Rename(tmp, dest); err != nil {
		return ioErr("rename", dest, err)
	}
	return nil
}

func writeArchive(w io.Writer, data []byte, o options) error {
	zw := zip.NewWriter(w)
	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:     EntryName,
		Method:   o.method,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}
	if _, err := entry.Write(data); err != nil {
		return err
	}
	return zw.Close()
}

// Load reads the palette stored in the archive at src. Zip containers are
// expected; a 7z container holding the same entry is accepted as well.
func Load(src string) (*palette.Palette, error) {
	sevenZip, err := isSevenZip(src)
	if err != nil {
		return nil, ioErr("open", src, err)
	}

	var data []byte
	if sevenZip {
		data, err = readSevenZipEntry(src)
	} else {
		data, err = readZipEntry(src)
	}
	if err != nil {
		return nil, err
	}

	p, err := palette.ParseDocument(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", src)
	}
	return p, nil
}

func readZipEntry(src string) ([]byte, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, ioErr("open", src, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == EntryName {
			return readLimited(f.Open, src)
		}
	}
	return nil, errors.Wrapf(ErrArchiveEntryMissing, "%s in %s", EntryName, src)
}

func readSevenZipEntry(src string) ([]byte, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return nil, ioErr("open", src, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == EntryName {
			return readLimited(f.Open, src)
		}
	}
	return nil, errors.Wrapf(ErrArchiveEntryMissing, "%s in %s", EntryName, src)
}

func readLimited(open func() (io.ReadCloser, error), src string) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, ioErr("read", src, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, ioErr("read", src, err)
	}
	if len(data) > maxEntrySize {
		return nil, errors.Wrapf(palette.ErrMalformedDocument, "%s is larger than %d bytes", EntryName, maxEntrySize)
	}
	return data, nil
}

func isSevenZip(src string) (bool, error) {
	f, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(sevenZipMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return bytes.Equal(head[:n], sevenZipMagic), nil
}
