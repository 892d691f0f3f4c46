// SPDX-License-Identifier: AGPL-3.0-only
package webclient

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event is one analytics beacon. Fire-and-forget: nothing waits on the sink
// and a sink failure never disturbs a page load.
type Event struct {
	ID     uuid.UUID
	Name   string
	Params map[string]string
}

// Sink receives analytics events. The post helper takes one at construction
// so tests can swap in a no-op.
type Sink interface {
	Fire(event Event)
}

// LogSink writes events to the structured log, the stand-in for the tag
// manager data layer of the hosted page.
type LogSink struct{}

func (LogSink) Fire(event Event) {
	entry := log.Info().Str("event_id", event.ID.String()).Str("event", event.Name)
	for k, v := range event.Params {
		entry = entry.Str(k, v)
	}
	entry.Msg("analytics event")
}

// NoopSink drops every event.
type NoopSink struct{}

func (NoopSink) Fire(Event) {}
