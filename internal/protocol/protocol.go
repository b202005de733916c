// Package protocol defines the Socket.IO events and payloads exchanged
// between the grid server and its clients.
//
// Every request carries a client-chosen id which is echoed back in the
// matching result event, so a client may have several requests in flight
// on one connection.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Events sent by clients.
const (
	EventSet      = "set"
	EventGet      = "get"
	EventSnapshot = "snapshot"
)

// Events sent by the server.
const (
	// EventResult answers a single request.
	EventResult = "result"
	// EventChanged is broadcast to every client after an edit changed the
	// displayed value of at least one cell.
	EventChanged = "changed"
)

// Request is the payload of set, get and snapshot.
type Request struct {
	ID     string `json:"id"`
	Cell   string `json:"cell,omitempty"`
	Source string `json:"source,omitempty"`
}

// CellValue is one cell of a snapshot or change broadcast.
type CellValue struct {
	Cell   string `json:"cell"`
	Source string `json:"source,omitempty"`
	Value  string `json:"value"`
}

// Result is the payload of the result event.
type Result struct {
	ID    string      `json:"id"`
	OK    bool        `json:"ok"`
	Cell  string      `json:"cell,omitempty"`
	Value string      `json:"value,omitempty"`
	Cells []CellValue `json:"cells,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Changed is the payload of the changed broadcast.
type Changed struct {
	Cells []CellValue `json:"cells"`
}

// ErrNoPayload is returned when an event arrives without arguments.
var ErrNoPayload = errors.New("event has no payload")

// Decode converts the first event argument into v. Socket.IO hands event
// arguments over as generic JSON values, so they take a round trip through
// encoding/json to reach the typed payload.
func Decode(args []any, v any) error {
	if len(args) == 0 || args[0] == nil {
		return ErrNoPayload
	}

	raw, err := json.Marshal(args[0])
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
