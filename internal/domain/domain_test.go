package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRunSpec_JSONRoundTrip(t *testing.T) {
	want := RunSpec{
		ID:        SpecID("S1"),
		TestID:    "t1",
		Path:      "status",
		Query:     "deep",
		Match:     "ok",
		CreatedAt: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got RunSpec
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != want.ID || got.TestID != want.TestID || got.Path != want.Path ||
		got.Query != want.Query || got.Match != want.Match || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
}

func TestRunRecord_JSONRoundTrip(t *testing.T) {
	want := RunRecord{
		ID:         7,
		TestID:     "t1",
		Path:       "status",
		StartedMS:  1724932800000,
		Passed:     true,
		ResultKey:  "1724932800000_t1_PASS.txt",
		BodyBytes:  14,
		LatencyMS:  12.5,
		FinishedAt: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got RunRecord
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.TestID != want.TestID || got.Passed != want.Passed ||
		got.ResultKey != want.ResultKey || got.StartedMS != want.StartedMS ||
		!got.FinishedAt.Equal(want.FinishedAt) {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
}
