package utils

import (
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func TestDecodePCM16RejectsOddLength(t *testing.T) {
	odd := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	if _, err := DecodePCM16(odd); err == nil {
		t.Error("odd-length payload must be rejected")
	}
}

func TestDecodePCM16RejectsBadBase64(t *testing.T) {
	if _, err := DecodePCM16("not base64!!!"); err == nil {
		t.Error("invalid base64 must be rejected")
	}
}

func TestWrapWAVHeader(t *testing.T) {
	pcm := make([]byte, 48000) // one second of mono 24kHz s16le
	wav := WrapWAV(pcm)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("wav length = %d, want %d", len(wav), 44+len(pcm))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != SpeechSampleRate {
		t.Errorf("sample rate = %d, want %d", rate, SpeechSampleRate)
	}
	if channels := binary.LittleEndian.Uint16(wav[22:24]); channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	if dataLen := binary.LittleEndian.Uint32(wav[40:44]); dataLen != uint32(len(pcm)) {
		t.Errorf("data length = %d, want %d", dataLen, len(pcm))
	}
}

func TestPCMBase64ToWAV(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte{0, 0, 255, 127})
	wav, err := PCMBase64ToWAV(b64)
	if err != nil {
		t.Fatalf("PCMBase64ToWAV: %v", err)
	}
	if len(wav) != 48 {
		t.Errorf("wav length = %d, want 48", len(wav))
	}
}
