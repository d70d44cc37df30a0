package nats

import (
	"testing"

	"notepad-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.NOTE_UPDATED", Subject(events.BaseEvent{Type: events.TypeNoteUpdated}))
}

func TestCloseWithoutConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}
