package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from various formats (JSON, YAML).
// It supports reading from any io.Reader source including files, strings, and HTTP responses.
//
// Resource Management:
//   - Close must be called to release resources when using NewFileReader or NewFileReaderAuto
//   - Safe to call Close multiple times (idempotent)
//   - Close is a no-op for readers created with NewReader from non-closeable sources
//
// Supported formats: JSON, YAML (Table format is write-only)
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Returns error if:
//   - format is unknown or unsupported
//   - format is FormatTable (table format does not support deserialization)
//
// If input implements io.Closer, it will be stored and closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a file path or URL.
//
// URL Support:
//   - Supports http:// and https:// URLs
//   - Downloads remote files to temporary directory
//   - Temporary files are managed by Reader.Close()
//
// Close must be called to release the file handle.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	var file *os.File
	var err error

	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		name := fmt.Sprintf("recipelog-%d.tmp", time.Now().UnixNano())
		tempFilePath := filepath.Join(os.TempDir(), name)
		httpReader := NewHttpReader()
		if err = httpReader.Download(filePath, tempFilePath); err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		file, err = os.Open(tempFilePath)
	} else {
		file, err = os.Open(filePath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with automatic format detection.
// The format is determined from the file extension using FormatFromPath.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	return NewFileReader(format, filePath)
}

// Deserialize reads data from the input source and unmarshals it into v.
// v must be a pointer compatible with the configured format.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call multiple times and on nil Readers.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile is a generic convenience function that loads and deserializes a
// file in one call. The format is detected from the file extension; HTTP and
// HTTPS URLs are supported. Reader cleanup is handled internally.
//
// Example:
//
//	report, err := FromFile[report.Report]("extraction.yaml")
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		slog.Error("failed to create file reader", "error", err, "path", path, "format", fileFormat)
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", path),
	)

	return &r, nil
}
