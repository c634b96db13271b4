package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extractor turns a document on disk into plain UTF-8 text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// FileExtractor picks a reader by file extension.
type FileExtractor struct{}

func (FileExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return PDF(path)
	case ".txt", ".md", ".text":
		return Plain(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether FileExtractor can read the path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt", ".md", ".text":
		return true
	default:
		return false
	}
}

// Plain reads a text file as-is.
func Plain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// PDF concatenates the plain text of every page. Pages without extractable
// text count as empty.
func PDF(path string) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		b.WriteString(pageText(reader.Page(i)))
	}

	return b.String(), nil
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}

	return text
}

// Expand replaces directories with the supported files they contain, sorted by name.
// Plain file paths are kept in place even if unsupported, so they surface as
// extraction failures instead of vanishing.
func Expand(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			out = append(out, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %q: %w", path, err)
		}

		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !Supported(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
		sort.Strings(files)
		out = append(out, files...)
	}

	return out, nil
}
