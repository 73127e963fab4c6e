package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"meetsum/types"
)

// docx archives keep the document body here.
const docxDocumentPath = "word/document.xml"

// ExtractService turns an uploaded transcript document into plain text.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Extract dispatches on the declared filename extension. The format set is
// closed; unsupported extensions are rejected before any bytes are parsed.
func (s *ExtractService) Extract(data []byte, filename string) (string, error) {
	format, err := types.FormatFromFilename(filename)
	if err != nil {
		return "", err
	}

	switch format {
	case types.FormatTxt:
		return s.extractTxt(data)
	case types.FormatPDF:
		return s.extractPDF(data)
	case types.FormatDocx:
		return s.extractDocx(data)
	default:
		return "", types.NewAppError(types.ErrUnsupportedFormat, "Only .txt, .pdf, .docx files allowed", nil)
	}
}

func (s *ExtractService) extractTxt(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", types.NewAppError(types.ErrDecode, "transcript is not valid UTF-8 text", nil)
	}
	return string(data), nil
}

// extractPDF collects per-page text in page order. Pages that yield no text
// are skipped entirely, so they contribute no blank line to the transcript.
func (s *ExtractService) extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = types.NewAppError(types.ErrParse, "failed to parse PDF file", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", types.NewAppError(types.ErrParse, "failed to parse PDF file", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", types.NewAppError(types.ErrParse, "failed to parse PDF file", err)
		}
		pages = append(pages, pageText)
	}

	return joinPageTexts(pages), nil
}

// joinPageTexts joins the surviving page texts with newlines, dropping pages
// that extracted to nothing.
func joinPageTexts(pages []string) string {
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n")
}

// extractDocx emits one line per paragraph of the document body, keeping
// empty paragraphs as empty lines.
func (s *ExtractService) extractDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", types.NewAppError(types.ErrParse, "failed to parse DOCX file", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == docxDocumentPath {
			document = f
			break
		}
	}
	if document == nil {
		return "", types.NewAppError(types.ErrParse, "failed to parse DOCX file", errors.New("missing "+docxDocumentPath))
	}

	rc, err := document.Open()
	if err != nil {
		return "", types.NewAppError(types.ErrParse, "failed to parse DOCX file", err)
	}
	defer rc.Close()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return "", types.NewAppError(types.ErrParse, "failed to parse DOCX file", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// readParagraphs walks the WordprocessingML token stream. Text lives in w:t
// elements nested inside runs inside w:p paragraphs.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
