// Package sse decodes Server-Sent Events streams.
package sse

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single field line.
const maxLineSize = 1 << 20

// Event is one dispatched server-sent event.
type Event struct {
	// Event is the event type from "event:". Empty for data-only events.
	Event string `json:"event,omitempty"`
	// Data is the payload. Multiple "data:" lines are joined with "\n".
	Data string `json:"data"`
	// ID is the last event ID from "id:".
	ID string `json:"id,omitempty"`
	// Retry is the reconnection time in milliseconds, 0 when unset.
	Retry int `json:"retry,omitempty"`
}

// Reader reads events one at a time.
type Reader struct {
	scanner *bufio.Scanner
	lastID  string
	first   bool
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{scanner: s, first: true}
}

// Next returns the next event, or io.EOF when the stream is exhausted.
func (r *Reader) Next() (Event, error) {
	var (
		ev      Event
		data    strings.Builder
		hasData bool
	)
	ev.ID = r.lastID

	for r.scanner.Scan() {
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if r.first {
			line = strings.TrimPrefix(line, "\ufeff")
			r.first = false
		}

		if line == "" {
			if hasData {
				ev.Data = data.String()
				return ev, nil
			}
			ev = Event{ID: r.lastID}
			continue
		}
		if line[0] == ':' {
			continue
		}

		field, value := splitField(line)
		switch field {
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "event":
			ev.Event = value
		case "id":
			if !strings.ContainsRune(value, 0) {
				r.lastID = value
				ev.ID = value
			}
		case "retry":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				ev.Retry = n
			}
		}
	}

	if err := r.scanner.Err(); err != nil {
		return Event{}, err
	}
	if hasData {
		ev.Data = data.String()
		return ev, nil
	}
	return Event{}, io.EOF
}

// ReadAll drains r and returns every event. It stops early with ctx.Err()
// when ctx is done.
func ReadAll(ctx context.Context, r io.Reader) ([]Event, error) {
	rd := NewReader(r)
	events := make([]Event, 0, 4)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := rd.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
}

func splitField(line string) (field, value string) {
	field, value, found := strings.Cut(line, ":")
	if !found {
		return line, ""
	}
	return field, strings.TrimPrefix(value, " ")
}
