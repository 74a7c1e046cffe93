package sse

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestReader_MultipleEvents(t *testing.T) {
	r := NewReader(strings.NewReader("data: first\n\ndata: second\n\n"))

	ev1, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev1.Data != "first" {
		t.Errorf("first event data = %q, want %q", ev1.Data, "first")
	}

	ev2, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev2.Data != "second" {
		t.Errorf("second event data = %q, want %q", ev2.Data, "second")
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReader_Fields(t *testing.T) {
	r := NewReader(strings.NewReader("event: update\nid: 42\nretry: 1500\ndata: hello\n\n"))
	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Event{Event: "update", ID: "42", Retry: 1500, Data: "hello"}
	if ev != want {
		t.Errorf("got %+v, want %+v", ev, want)
	}
}

func TestReader_MultiLineDataAndCRLF(t *testing.T) {
	r := NewReader(strings.NewReader("data: line1\r\ndata: line2\r\n\r\n"))
	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "line1\nline2" {
		t.Errorf("data = %q, want %q", ev.Data, "line1\nline2")
	}
}

func TestReader_CommentsAndBOMIgnored(t *testing.T) {
	r := NewReader(strings.NewReader("\ufeff: keepalive\ndata: x\n\n"))
	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "x" {
		t.Errorf("data = %q, want %q", ev.Data, "x")
	}
}

func TestReader_LastIDCarriesOver(t *testing.T) {
	r := NewReader(strings.NewReader("id: 7\ndata: a\n\ndata: b\n\n"))
	if _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != "7" {
		t.Errorf("expected id to carry over, got %q", ev.ID)
	}
}

func TestReader_EventWithoutDataIsDropped(t *testing.T) {
	r := NewReader(strings.NewReader("event: ping\n\ndata: real\n\n"))
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Event != "" || ev.Data != "real" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestReader_TrailingEventWithoutBlankLine(t *testing.T) {
	r := NewReader(strings.NewReader("data: tail"))
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Data != "tail" {
		t.Errorf("data = %q", ev.Data)
	}
}

func TestReadAll(t *testing.T) {
	events, err := ReadAll(context.Background(), strings.NewReader("data: 1\n\ndata: 2\n\ndata: 3\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 || events[2].Data != "3" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestReadAll_Empty(t *testing.T) {
	events, err := ReadAll(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestReadAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadAll(ctx, strings.NewReader("data: 1\n\n")); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
