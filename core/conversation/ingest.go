package conversation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adalundhe/weft/core/dialog"
)

// Ingestor normalizes incoming interactions into stored context
// records. Exactly one record is appended per call.
type Ingestor struct {
	store  *SessionStore
	clock  func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewIngestor creates an ingestor over the store.
func NewIngestor(store *SessionStore, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		store:  store,
		clock:  time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: logger,
	}
}

// AddContext validates the turn, builds a record, and appends it to
// the session's history under the session lock. The returned record is
// the one now referenced by the session's CurrentID.
func (in *Ingestor) AddContext(sessionID string, modality dialog.Modality, content string, recognition *dialog.RecognitionResult) (*dialog.ContextRecord, error) {
	record, err := dialog.NewContextRecord(in.newID(), modality, content, recognition, in.clock())
	if err != nil {
		return nil, fmt.Errorf("add context: %w", err)
	}

	state := in.store.acquire(sessionID)
	state.append(record, in.store.historyLimit())

	in.logger.Debug("context added",
		"session_id", sessionID,
		"record_id", record.ID,
		"modality", modality.String(),
	)
	return record, nil
}
