package utils

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// Speech audio arrives as base64-encoded raw PCM: 16-bit little-endian
// signed samples, mono, 24 kHz.
const (
	SpeechSampleRate    = 24000
	speechChannels      = 1
	speechBitsPerSample = 16
)

// DecodePCM16 decodes the base64 speech payload and checks that it frames
// whole 16-bit samples.
func DecodePCM16(b64 string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, errors.New("pcm payload truncated mid-sample")
	}
	return raw, nil
}

// WrapWAV frames validated raw PCM as a playable WAV file.
func WrapWAV(pcm []byte) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(pcm))
	byteRate := uint32(SpeechSampleRate * speechChannels * speechBitsPerSample / 8)
	blockAlign := uint16(speechChannels * speechBitsPerSample / 8)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(speechChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(SpeechSampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(speechBitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)
	return buf.Bytes()
}

// PCMBase64ToWAV is the one-step path used when handing audio to a
// client: decode, validate framing, wrap.
func PCMBase64ToWAV(b64 string) ([]byte, error) {
	pcm, err := DecodePCM16(b64)
	if err != nil {
		return nil, err
	}
	return WrapWAV(pcm), nil
}
