package metrics

import (
	"testing"
	"time"
)

func TestObserveAggregates(t *testing.T) {
	rec := NewRecorder("")

	rec.Observe("student_add", true, 4*time.Millisecond)
	rec.Observe("student_add", true, 6*time.Millisecond)
	rec.Observe("student_add", false, 2*time.Millisecond)

	snap := rec.Snapshot()
	if got := snap.DurationsMS["student_add"]; got != 12 {
		t.Fatalf("DurationsMS[student_add] = %v, want 12", got)
	}
	if got := snap.Results["student_add"]["success"]; got != 2 {
		t.Fatalf("success count = %d, want 2", got)
	}
	if got := snap.Results["student_add"]["error"]; got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
}

func TestObserveNilSafe(t *testing.T) {
	var rec *Recorder
	rec.Observe("student_add", true, time.Millisecond)

	rec = NewRecorder("")
	rec.Observe("", true, time.Millisecond)
	if len(rec.Snapshot().Results) != 0 {
		t.Fatalf("empty operation name must be ignored")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	rec := NewRecorder("")
	rec.Observe("fee_set_status", true, time.Millisecond)

	snap := rec.Snapshot()
	snap.Results["fee_set_status"]["success"] = 99

	if got := rec.Snapshot().Results["fee_set_status"]["success"]; got != 1 {
		t.Fatalf("snapshot mutation leaked into the recorder: %d", got)
	}
}
