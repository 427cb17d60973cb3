package core

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MmapSource is an io.ReaderAt backed by a memory-mapped file, for large
// PQDIF files where paging in the whole file via ordinary reads would
// waste memory the OS page cache already provides for free.
type MmapSource struct {
	data mmap.MMap
	file *os.File
}

// OpenMmap memory-maps path read-only and returns a source usable with
// NewReader. Close must be called when done to unmap and close the file.
func OpenMmap(path string) (*MmapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open %s: %w", path, err)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("core: mmap %s: %w", path, err)
	}

	return &MmapSource{data: m, file: f}, nil
}

// ReadAt implements io.ReaderAt against the mapped region.
func (s *MmapSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, fmt.Errorf("core: mmap read offset %d out of range (len=%d)", off, len(s.data))
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, fmt.Errorf("core: mmap read at %d: short read, got %d want %d", off, n, len(p))
	}
	return n, nil
}

// Close unmaps the file and closes the underlying descriptor.
func (s *MmapSource) Close() error {
	if err := s.data.Unmap(); err != nil {
		s.file.Close()
		return fmt.Errorf("core: munmap: %w", err)
	}
	return s.file.Close()
}

// Len returns the size of the mapped region in bytes.
func (s *MmapSource) Len() int { return len(s.data) }
