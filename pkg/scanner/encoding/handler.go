// Package encoding sniffs binary content and decodes the text prefix handed
// to the detectors into valid UTF-8.
package encoding

import (
	"bytes"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// sniffLen is the number of bytes used by http.DetectContentType.
	sniffLen = 512
	// nullCheckLen is the prefix length inspected for NUL bytes.
	nullCheckLen = 1024
	// nullThreshold is the NUL byte ratio above which content is binary.
	nullThreshold = 0.15
)

var textMIMETypes = map[string]bool{
	"application/json":         true,
	"application/xml":          true,
	"application/javascript":   true,
	"application/ecmascript":   true,
	"application/x-javascript": true,
	"application/yaml":         true,
	"application/toml":         true,
	"application/sql":          true,
	"application/rtf":          true,
	"application/postscript":   true,
	"application/octet-stream": true,
	"image/svg+xml":            true,
}

// Handler detects binary content and decodes text content to UTF-8.
type Handler interface {
	// Decode returns content as valid UTF-8 together with the IANA name of the
	// encoding it was decoded from. Bytes that cannot be decoded are replaced
	// with U+FFFD, so Decode never fails.
	Decode(content []byte) (text string, encodingName string)

	// IsBinary reports whether content looks like binary data, based on MIME
	// sniffing of the first 512 bytes and the NUL byte ratio of the first 1024.
	IsBinary(content []byte) bool
}

type charsetHandler struct {
	fallback string
}

// NewHandler creates a Handler. fallback names the encoding assumed for
// content that is neither valid UTF-8 nor carries a BOM; when it is empty or
// unknown, such content is decoded as UTF-8 with replacement characters.
func NewHandler(fallback string) Handler {
	return &charsetHandler{fallback: strings.TrimSpace(fallback)}
}

// Decode implements Handler.
func (h *charsetHandler) Decode(content []byte) (string, string) {
	if utf8.Valid(content) {
		return string(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))), "utf-8"
	}

	enc, name, certain := charset.DetermineEncoding(content, "text/plain")
	if !certain && h.fallback != "" {
		if e, n := charset.Lookup(h.fallback); e != nil {
			enc, name, certain = e, n, true
		}
	}
	if certain && name != "utf-8" {
		if out, _, err := transform.Bytes(enc.NewDecoder(), content); err == nil {
			return strings.TrimPrefix(string(out), "\uFEFF"), name
		}
	}
	return lossyUTF8(content), "utf-8"
}

func lossyUTF8(content []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), content)
	if err != nil {
		return strings.ToValidUTF8(string(content), "\uFFFD")
	}
	return string(out)
}

// IsBinary implements Handler.
func (h *charsetHandler) IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	if !isTextMIME(http.DetectContentType(content[:min(len(content), sniffLen)])) {
		return true
	}
	prefix := content[:min(len(content), nullCheckLen)]
	nulls := bytes.Count(prefix, []byte{0})
	return float64(nulls)/float64(len(prefix)) > nullThreshold
}

func isTextMIME(contentType string) bool {
	mimeType, _, _ := strings.Cut(contentType, ";")
	mimeType = strings.TrimSpace(mimeType)
	if strings.HasPrefix(mimeType, "text/") || textMIMETypes[mimeType] {
		return true
	}
	return strings.HasSuffix(mimeType, "+xml") || strings.HasSuffix(mimeType, "+json")
}
