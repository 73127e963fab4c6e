package types

import (
	"path/filepath"
	"strings"
)

// DocumentFormat is the closed set of transcript formats the extractor
// accepts.
type DocumentFormat int

const (
	FormatTxt DocumentFormat = iota
	FormatPDF
	FormatDocx
)

// FormatFromFilename resolves the upload's declared extension,
// case-insensitively, into a DocumentFormat. Anything outside the supported
// set is rejected before any parsing happens.
func FormatFromFilename(filename string) (DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FormatTxt, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return 0, NewAppError(ErrUnsupportedFormat, "Only .txt, .pdf, .docx files allowed", nil)
	}
}
