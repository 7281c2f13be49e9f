package dialog

import (
	"errors"
	"time"
)

// AudioSource describes the audio a voice turn was transcribed from.
type AudioSource struct {
	Format         string `json:"format"`
	DurationMillis int64  `json:"duration_millis"`
}

// RecognitionResult carries the output of an external OCR or speech
// recognition pass. It is only valid on image and voice records; text
// records carry no recognition bundle. Audio is only valid on voice
// records.
type RecognitionResult struct {
	ExtractedText string       `json:"extracted_text"`
	Confidence    float64      `json:"confidence"`
	Languages     []string     `json:"languages,omitempty"`
	Engines       []string     `json:"engines,omitempty"`
	Audio         *AudioSource `json:"audio,omitempty"`
}

// ContextRecord is one stored interaction turn. Records are immutable
// after creation; a correction is a new record.
type ContextRecord struct {
	ID          string             `json:"id"`
	Modality    Modality           `json:"modality"`
	Content     string             `json:"content"`
	CreatedAt   time.Time          `json:"created_at"`
	Recognition *RecognitionResult `json:"recognition,omitempty"`
}

var (
	// ErrRecognitionOnText is returned when a text turn arrives with a
	// recognition bundle attached.
	ErrRecognitionOnText = errors.New("text records carry no recognition result")

	// ErrAudioOnImage is returned when an image turn carries an audio source.
	ErrAudioOnImage = errors.New("image records carry no audio source")
)

// NewContextRecord builds a validated record. The modality must be one
// of the enumerated channels and the recognition bundle must match the
// modality's shape.
func NewContextRecord(id string, modality Modality, content string, recognition *RecognitionResult, createdAt time.Time) (*ContextRecord, error) {
	if !modality.Valid() {
		return nil, ErrInvalidModality
	}
	if modality == ModalityText && recognition != nil {
		return nil, ErrRecognitionOnText
	}
	if modality == ModalityImage && recognition != nil && recognition.Audio != nil {
		return nil, ErrAudioOnImage
	}

	return &ContextRecord{
		ID:          id,
		Modality:    modality,
		Content:     content,
		CreatedAt:   createdAt,
		Recognition: recognition,
	}, nil
}

// ExtractedText returns the recognized text for image and voice
// records, or the empty string when no recognition result is present.
func (r *ContextRecord) ExtractedText() string {
	if r.Recognition == nil {
		return ""
	}
	return r.Recognition.ExtractedText
}

// DisplayText prefers recognized text over the raw content, falling
// back to the content when recognition produced nothing.
func (r *ContextRecord) DisplayText() string {
	if text := r.ExtractedText(); text != "" {
		return text
	}
	return r.Content
}
