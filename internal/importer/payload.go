package importer

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodePayload decodes a base64 statement upload.
// Standard and URL alphabets are accepted, padded or not, with an optional data URL prefix.
func DecodePayload(payload string) ([]byte, error) {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "data:") {
		comma := strings.Index(trimmed, ",")
		if comma < 0 {
			return nil, fmt.Errorf("%w: data URL without content", ErrInvalidPayload)
		}
		trimmed = trimmed[comma+1:]
	}
	trimmed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, trimmed)

	if trimmed == "" {
		return nil, ErrEmptyFile
	}

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		if decoded, err := enc.DecodeString(trimmed); err == nil {
			if len(strings.TrimSpace(string(decoded))) == 0 {
				return nil, ErrEmptyFile
			}
			return decoded, nil
		}
	}

	return nil, ErrInvalidPayload
}
