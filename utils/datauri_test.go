package utils

import (
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	mimeType, data, err := DecodeDataURI("data:image/jpeg;base64," + payload)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mimeType)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestDecodeDataURIRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"image/jpeg;base64,Zm9v",
		"data:image/jpeg;base64",
		"data:image/jpeg;base64,%%%",
	}
	for _, in := range cases {
		if _, _, err := DecodeDataURI(in); err == nil {
			t.Errorf("DecodeDataURI(%q) should fail", in)
		}
	}
}
