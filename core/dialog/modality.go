package dialog

import (
	"errors"
	"fmt"
)

// Modality identifies the input channel of a conversation turn.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityVoice Modality = "voice"
)

// ErrInvalidModality is returned when a caller supplies a modality
// outside the closed text/image/voice set.
var ErrInvalidModality = errors.New("invalid modality")

// Valid reports whether the modality is one of the three supported channels.
func (m Modality) Valid() bool {
	switch m {
	case ModalityText, ModalityImage, ModalityVoice:
		return true
	default:
		return false
	}
}

func (m Modality) String() string {
	return string(m)
}

// ParseModality converts a raw string into a Modality, rejecting
// anything outside the enumeration.
func ParseModality(raw string) (Modality, error) {
	m := Modality(raw)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidModality, raw)
	}
	return m, nil
}
