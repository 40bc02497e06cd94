package impl

import (
	"io"
	"log/slog"
	"testing"

	mockSvc "mesa/internal/mocks/service"
)

// newTestRecorder builds an AuditRecorder over a mocked publisher with a
// discarding logger, returning both for expectation setup.
func newTestRecorder(t *testing.T) (*AuditRecorder, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)
	recorder := NewAuditRecorder(AuditRecorderParams{
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return recorder, publisher
}
