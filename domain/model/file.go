package model

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// FileType represents supported input file types.
type FileType int

const (
	// FileTypeDelimited represents delimited text input; the separator is
	// detected by sampling, so any extension other than the ones below is
	// treated as delimited text.
	FileTypeDelimited FileType = iota
	// FileTypeXLSX represents Excel XLSX input.
	FileTypeXLSX
	// FileTypeParquet represents Parquet input.
	FileTypeParquet
)

// File extensions
const (
	// ExtXLSX is the Excel file extension
	ExtXLSX = ".xlsx"
	// ExtParquet is the Parquet file extension
	ExtParquet = ".parquet"
	// ExtGZ is the gzip compression extension
	ExtGZ = ".gz"
	// ExtBZ2 is the bzip2 compression extension
	ExtBZ2 = ".bz2"
	// ExtXZ is the xz compression extension
	ExtXZ = ".xz"
	// ExtZSTD is the zstd compression extension
	ExtZSTD = ".zst"
)

// compressionExts in detection order.
var compressionExts = []string{ExtGZ, ExtBZ2, ExtXZ, ExtZSTD}

// File represents an input file that can be parsed into a Table.
type File struct {
	path     string
	fileType FileType
}

// NewFile creates a new File, detecting its type from the extension.
func NewFile(path string) *File {
	return &File{
		path:     path,
		fileType: detectFileType(path),
	}
}

// Path returns file path.
func (f *File) Path() string {
	return f.path
}

// Type returns file type.
func (f *File) Type() FileType {
	return f.fileType
}

// IsCompressed returns true if file is compressed.
func (f *File) IsCompressed() bool {
	return f.IsGZ() || f.IsBZ2() || f.IsXZ() || f.IsZSTD()
}

// IsGZ returns true if file is gzip compressed.
func (f *File) IsGZ() bool {
	return strings.HasSuffix(strings.ToLower(f.path), ExtGZ)
}

// IsBZ2 returns true if file is bzip2 compressed.
func (f *File) IsBZ2() bool {
	return strings.HasSuffix(strings.ToLower(f.path), ExtBZ2)
}

// IsXZ returns true if file is xz compressed.
func (f *File) IsXZ() bool {
	return strings.HasSuffix(strings.ToLower(f.path), ExtXZ)
}

// IsZSTD returns true if file is zstd compressed.
func (f *File) IsZSTD() bool {
	return strings.HasSuffix(strings.ToLower(f.path), ExtZSTD)
}

// Stem returns the input's base name with the compression extension and the
// format extension stripped. "data.csv.gz" and "/tmp/data.csv" both yield
// "data". It names the database file derived from the input.
func (f *File) Stem() string {
	fileName := filepath.Base(f.path)
	for _, ext := range compressionExts {
		if strings.HasSuffix(strings.ToLower(fileName), ext) {
			fileName = fileName[:len(fileName)-len(ext)]
			break
		}
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// detectFileType detects file type from extension, considering compressed
// files. Anything that is not XLSX or Parquet is delimited text.
func detectFileType(path string) FileType {
	basePath := strings.ToLower(path)
	for _, ext := range compressionExts {
		if strings.HasSuffix(basePath, ext) {
			basePath = strings.TrimSuffix(basePath, ext)
			break
		}
	}

	switch filepath.Ext(basePath) {
	case ExtXLSX:
		return FileTypeXLSX
	case ExtParquet:
		return FileTypeParquet
	default:
		return FileTypeDelimited
	}
}

// openReader opens the file and returns a reader that handles decompression.
func (f *File) openReader() (io.Reader, func() error, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader = file
	closer := file.Close

	switch {
	case f.IsGZ():
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		reader = gzReader
		closer = func() error {
			gzReader.Close()
			return file.Close()
		}
	case f.IsBZ2():
		reader = bzip2.NewReader(file)
		closer = file.Close
	case f.IsXZ():
		xzReader, err := xz.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		reader = xzReader
		closer = file.Close
	case f.IsZSTD():
		decoder, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		reader = decoder
		closer = func() error {
			decoder.Close()
			return file.Close()
		}
	}

	return reader, closer, nil
}
