package httpclient

import (
	"testing"
	"time"
)

func TestMetadata_WithCopies(t *testing.T) {
	base := Metadata{"a": 1}
	next := base.With("b", 2)
	if base.Has("b") {
		t.Error("With must not modify the receiver")
	}
	if !next.Has("a") || !next.Has("b") {
		t.Errorf("unexpected metadata %v", next)
	}

	var nilMeta Metadata
	if got := nilMeta.With("k", "v"); got["k"] != "v" {
		t.Error("With on nil metadata should allocate")
	}
}

func TestMetadata_MergeOtherWins(t *testing.T) {
	a := Metadata{"x": 1, "y": 1}
	b := Metadata{"y": 2, "z": 2}
	got := a.Merge(b)
	if got["x"] != 1 || got["y"] != 2 || got["z"] != 2 {
		t.Errorf("unexpected merge %v", got)
	}
	if a["y"] != 1 {
		t.Error("Merge must not modify the receiver")
	}
}

func TestMetadata_TypedReaders(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := Metadata{
		MetaSequenceNumber: int64(3),
		MetaTimestamp:      now,
		MetaResponseTimeMs: 12.5,
		MetaRequestID:      "req-1",
		"int":              5,
	}

	if n, ok := m.SequenceNumber(); !ok || n != 3 {
		t.Errorf("SequenceNumber = %d, %v", n, ok)
	}
	if ts, ok := m.Timestamp(); !ok || !ts.Equal(now) {
		t.Errorf("Timestamp = %v, %v", ts, ok)
	}
	if ms, ok := m.ResponseTimeMs(); !ok || ms != 12.5 {
		t.Errorf("ResponseTimeMs = %v, %v", ms, ok)
	}
	if id, ok := m.RequestID(); !ok || id != "req-1" {
		t.Errorf("RequestID = %q, %v", id, ok)
	}
	if n, ok := m.Int64("int"); !ok || n != 5 {
		t.Errorf("Int64 from int = %d, %v", n, ok)
	}
	if f, ok := m.Float64("int"); !ok || f != 5 {
		t.Errorf("Float64 from int = %v, %v", f, ok)
	}
	if _, ok := m.Int64(MetaRequestID); ok {
		t.Error("string value must not read as int64")
	}
	if _, ok := Metadata(nil).SequenceNumber(); ok {
		t.Error("nil metadata has no sequence number")
	}
}

func TestRequest_WithHeaderClones(t *testing.T) {
	r1 := Request{URL: "u"}.WithHeader("A", "1")
	r2 := r1.WithHeader("B", "2")
	if r1.Header.Get("B") != "" {
		t.Error("WithHeader must not modify the original header")
	}
	if r2.Header.Get("A") != "1" || r2.Header.Get("B") != "2" {
		t.Errorf("unexpected header %v", r2.Header)
	}
}

func TestRequest_WithMetadataAndURL(t *testing.T) {
	r := Request{URL: "a", Metadata: Metadata{}}
	r2 := r.WithMetadata("k", "v").WithURL("b")
	if r.Metadata.Has("k") || r.URL != "a" {
		t.Error("With* must not modify the receiver")
	}
	if r2.URL != "b" || r2.Metadata["k"] != "v" {
		t.Errorf("unexpected request %+v", r2)
	}
}

func TestRequest_WithQueryClones(t *testing.T) {
	r1 := Request{URL: "https://api.test/a"}.WithQuery("a", "1")
	r2 := r1.WithQuery("b", "2")
	if r1.Query.Get("b") != "" {
		t.Error("WithQuery must not modify the original query")
	}
	if r2.Query.Get("a") != "1" || r2.Query.Get("b") != "2" || r2.URL != r1.URL {
		t.Errorf("unexpected request %+v", r2)
	}
}

func TestResponse_StatusHelpers(t *testing.T) {
	tests := []struct {
		status           int
		success, failure bool
	}{
		{200, true, false},
		{299, true, false},
		{304, false, false},
		{404, false, true},
		{503, false, true},
	}
	for _, tt := range tests {
		r := Response{Status: tt.status}
		if r.IsSuccess() != tt.success || r.IsError() != tt.failure {
			t.Errorf("status %d: IsSuccess=%v IsError=%v", tt.status, r.IsSuccess(), r.IsError())
		}
	}
	if got := (Response{}).WithMetadata("k", 1); got.Metadata["k"] != 1 {
		t.Error("Response.WithMetadata should set the key")
	}
}
