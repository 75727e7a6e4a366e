package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeDataURI splits a "data:<mime>;base64,<data>" string and decodes
// the payload. Captures and avatars travel through the app in this form.
func DecodeDataURI(uri string) (contentType string, data []byte, err error) {
	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return "", nil, fmt.Errorf("invalid data URI")
	}

	meta := strings.TrimPrefix(parts[0], "data:")
	contentType = strings.SplitN(meta, ";", 2)[0]
	if contentType == "" {
		return "", nil, fmt.Errorf("data URI missing content type")
	}

	data, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return contentType, data, nil
}
