package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/decision"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
	"github.com/loopmarket/match-canary/go-controller/internal/shadow"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func diffAt(runID string, at time.Time) shadow.DiffRecord {
	return shadow.DiffRecord{
		RunID:      runID,
		RecordedAt: at,
		Metrics:    &shadow.DiffMetrics{V1CandidateCycles: 3, V2CandidateCycles: 3, DeltaScoreSumScaled: 10},
	}
}

func TestRollbackStateEmptyDB(t *testing.T) {
	s := tempDB(t)

	st, err := s.GetRollbackState()
	if err != nil {
		t.Fatalf("GetRollbackState: %v", err)
	}
	if st.Active || st.ReasonCode != "" || len(st.RecentSamples) != 0 {
		t.Fatalf("expected zero state, got %+v", st)
	}
}

func TestRollbackStateRoundTrip(t *testing.T) {
	s := tempDB(t)

	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	in := rollback.State{
		Active:      true,
		ReasonCode:  rollback.ReasonErrorRate,
		ActivatedAt: &at,
		RunID:       "run-7",
		RecentSamples: []rollback.RunSample{
			{RunID: "run-6", RecordedAt: at, NonNegativeDelta: true},
			{RunID: "run-7", RecordedAt: at, Error: true},
		},
	}
	if err := s.PutRollbackState(in); err != nil {
		t.Fatalf("PutRollbackState: %v", err)
	}

	got, err := s.GetRollbackState()
	if err != nil {
		t.Fatalf("GetRollbackState: %v", err)
	}
	if !got.Active || got.ReasonCode != rollback.ReasonErrorRate || got.RunID != "run-7" {
		t.Fatalf("unexpected state %+v", got)
	}
	if got.ActivatedAt == nil || !got.ActivatedAt.Equal(at) {
		t.Fatalf("unexpected activation time %v", got.ActivatedAt)
	}
	if len(got.RecentSamples) != 2 || !got.RecentSamples[1].Error {
		t.Fatalf("samples did not survive the round trip: %+v", got.RecentSamples)
	}
}

func TestRollbackStateUpsertOverwrites(t *testing.T) {
	s := tempDB(t)

	if err := s.PutRollbackState(rollback.State{Active: true, ReasonCode: rollback.ReasonTimeoutRate}); err != nil {
		t.Fatalf("PutRollbackState: %v", err)
	}
	if err := s.PutRollbackState(rollback.State{}); err != nil {
		t.Fatalf("PutRollbackState second: %v", err)
	}

	got, err := s.GetRollbackState()
	if err != nil {
		t.Fatalf("GetRollbackState: %v", err)
	}
	if got.Active {
		t.Fatal("second put must overwrite the singleton row")
	}
}

func TestResetRollbackState(t *testing.T) {
	s := tempDB(t)

	if err := s.PutRollbackState(rollback.State{Active: true, ReasonCode: rollback.ReasonLimitedRate}); err != nil {
		t.Fatalf("PutRollbackState: %v", err)
	}
	if err := s.ResetRollbackState(); err != nil {
		t.Fatalf("ResetRollbackState: %v", err)
	}

	got, err := s.GetRollbackState()
	if err != nil {
		t.Fatalf("GetRollbackState: %v", err)
	}
	if got.Active || got.ReasonCode != "" {
		t.Fatalf("expected zero state after reset, got %+v", got)
	}
}

func TestResetOnEmptyDB(t *testing.T) {
	s := tempDB(t)
	if err := s.ResetRollbackState(); err != nil {
		t.Fatalf("ResetRollbackState on empty db: %v", err)
	}
}

func TestShadowDiffRoundTrip(t *testing.T) {
	s := tempDB(t)

	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	rec := diffAt("run-1", at)
	rec.V2SafetyTriggers = &shadow.SafetyTriggers{TimeoutReached: true}
	if err := s.PutShadowDiff(rec, 10); err != nil {
		t.Fatalf("PutShadowDiff: %v", err)
	}

	got, err := s.GetShadowDiff("run-1")
	if err != nil {
		t.Fatalf("GetShadowDiff: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.Metrics == nil || got.Metrics.DeltaScoreSumScaled != 10 {
		t.Fatalf("unexpected metrics %+v", got.Metrics)
	}
	if got.V2SafetyTriggers == nil || !got.V2SafetyTriggers.TimeoutReached {
		t.Fatalf("unexpected triggers %+v", got.V2SafetyTriggers)
	}
	if got.Err != nil {
		t.Fatalf("expected no error variant, got %+v", got.Err)
	}
}

func TestShadowDiffErrorVariant(t *testing.T) {
	s := tempDB(t)

	rec := shadow.DiffRecord{
		RunID:      "run-err",
		RecordedAt: time.Now().UTC(),
		Err:        &engine.Error{Code: "forced_error", Name: "ForcedEngineError", Message: "forced"},
	}
	if err := s.PutShadowDiff(rec, 10); err != nil {
		t.Fatalf("PutShadowDiff: %v", err)
	}

	got, err := s.GetShadowDiff("run-err")
	if err != nil {
		t.Fatalf("GetShadowDiff: %v", err)
	}
	if got.Metrics != nil {
		t.Fatal("error variant must not carry metrics")
	}
	if got.Err == nil || got.Err.Code != "forced_error" {
		t.Fatalf("unexpected error payload %+v", got.Err)
	}
}

func TestGetShadowDiffAbsent(t *testing.T) {
	s := tempDB(t)
	got, err := s.GetShadowDiff("nope")
	if err != nil {
		t.Fatalf("GetShadowDiff: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent record, got %+v", got)
	}
}

func TestShadowDiffPruneKeepsNewest(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := diffAt(fmt.Sprintf("run-%d", i), base.Add(time.Duration(i)*time.Second))
		if err := s.PutShadowDiff(rec, 3); err != nil {
			t.Fatalf("PutShadowDiff: %v", err)
		}
	}

	n, err := s.CountShadowDiffs()
	if err != nil {
		t.Fatalf("CountShadowDiffs: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 kept records, got %d", n)
	}

	// Oldest two evicted, newest three retained.
	for _, id := range []string{"run-0", "run-1"} {
		got, err := s.GetShadowDiff(id)
		if err != nil {
			t.Fatalf("GetShadowDiff %s: %v", id, err)
		}
		if got != nil {
			t.Fatalf("expected %s to be pruned", id)
		}
	}
	for _, id := range []string{"run-2", "run-3", "run-4"} {
		got, err := s.GetShadowDiff(id)
		if err != nil {
			t.Fatalf("GetShadowDiff %s: %v", id, err)
		}
		if got == nil {
			t.Fatalf("expected %s to survive pruning", id)
		}
	}
}

func TestShadowDiffPruneMixedSubSecondPrecision(t *testing.T) {
	s := tempDB(t)

	// A whole-second timestamp followed by a newer half-second one. The
	// ordering key must treat these chronologically; a trimmed-nanoseconds
	// text format would sort "...00.5Z" before "...00Z" and evict the wrong
	// record.
	whole := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	if err := s.PutShadowDiff(diffAt("run-whole", whole), 1); err != nil {
		t.Fatalf("PutShadowDiff: %v", err)
	}
	if err := s.PutShadowDiff(diffAt("run-half", half), 1); err != nil {
		t.Fatalf("PutShadowDiff: %v", err)
	}

	oldest, err := s.GetShadowDiff("run-whole")
	if err != nil {
		t.Fatalf("GetShadowDiff: %v", err)
	}
	if oldest != nil {
		t.Fatal("oldest record must be evicted")
	}
	newest, err := s.GetShadowDiff("run-half")
	if err != nil {
		t.Fatalf("GetShadowDiff: %v", err)
	}
	if newest == nil {
		t.Fatal("newest record must survive pruning")
	}
}

func TestListDecisionRecordsMixedSubSecondPrecision(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	stamps := map[string]time.Time{
		"run-whole": base,
		"run-half":  base.Add(500 * time.Millisecond),
		"run-next":  base.Add(time.Second),
	}
	for id, at := range stamps {
		if err := s.PutDecisionRecord(decision.Record{RunID: id, RecordedAt: at}); err != nil {
			t.Fatalf("PutDecisionRecord: %v", err)
		}
	}

	records, err := s.ListDecisionRecords(10)
	if err != nil {
		t.Fatalf("ListDecisionRecords: %v", err)
	}
	want := []string{"run-next", "run-half", "run-whole"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, id := range want {
		if records[i].RunID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, records[i].RunID)
		}
	}
}

func TestAltShadowDiffIndependentHistory(t *testing.T) {
	s := tempDB(t)

	at := time.Now().UTC()
	if err := s.PutShadowDiff(diffAt("run-main", at), 10); err != nil {
		t.Fatalf("PutShadowDiff: %v", err)
	}
	if err := s.PutAltShadowDiff(diffAt("run-alt", at), 10); err != nil {
		t.Fatalf("PutAltShadowDiff: %v", err)
	}

	if got, _ := s.GetShadowDiff("run-alt"); got != nil {
		t.Fatal("alt record leaked into the shadow history")
	}
	if got, _ := s.GetAltShadowDiff("run-main"); got != nil {
		t.Fatal("shadow record leaked into the alt history")
	}
	if got, _ := s.GetAltShadowDiff("run-alt"); got == nil {
		t.Fatal("expected alt record")
	}
	n, err := s.CountAltShadowDiffs()
	if err != nil {
		t.Fatalf("CountAltShadowDiffs: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 alt record, got %d", n)
	}
}

func TestDecisionRecordRoundTrip(t *testing.T) {
	s := tempDB(t)

	cycles := int64(4)
	delta := int64(-5)
	rec := decision.Record{
		RunID:          "run-dec",
		RecordedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Mode:           "shadow_rollout",
		ServedEngine:   engine.VersionV2,
		CanarySelected: true,
		Bucket:         42,
		Metrics: decision.Metrics{
			V1CandidateCycles:   3,
			V2CandidateCycles:   &cycles,
			DeltaScoreSumScaled: &delta,
		},
		Sample: &decision.SampleSummary{NonNegativeDelta: false},
	}
	if err := s.PutDecisionRecord(rec); err != nil {
		t.Fatalf("PutDecisionRecord: %v", err)
	}

	got, err := s.GetDecisionRecord("run-dec")
	if err != nil {
		t.Fatalf("GetDecisionRecord: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.ServedEngine != engine.VersionV2 || got.Bucket != 42 {
		t.Fatalf("unexpected record %+v", got)
	}
	if got.Metrics.DeltaScoreSumScaled == nil || *got.Metrics.DeltaScoreSumScaled != -5 {
		t.Fatalf("unexpected delta %v", got.Metrics.DeltaScoreSumScaled)
	}
	if got.Sample == nil || got.Sample.NonNegativeDelta {
		t.Fatalf("unexpected sample %+v", got.Sample)
	}
}

func TestGetDecisionRecordAbsent(t *testing.T) {
	s := tempDB(t)
	got, err := s.GetDecisionRecord("nope")
	if err != nil {
		t.Fatalf("GetDecisionRecord: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent record, got %+v", got)
	}
}

func TestListDecisionRecordsNewestFirst(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		rec := decision.Record{
			RunID:      fmt.Sprintf("run-%d", i),
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.PutDecisionRecord(rec); err != nil {
			t.Fatalf("PutDecisionRecord: %v", err)
		}
	}

	records, err := s.ListDecisionRecords(3)
	if err != nil {
		t.Fatalf("ListDecisionRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []string{"run-3", "run-2", "run-1"}
	for i, id := range want {
		if records[i].RunID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, records[i].RunID)
		}
	}
}

func TestNewStoreInvalidPath(t *testing.T) {
	_, err := NewStore(filepath.Join(string(os.PathSeparator), "nonexistent", "deep", "path", "test.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestNewStoreCorruptFile(t *testing.T) {
	// sql.Open succeeds lazily; the first PRAGMA fails and the handle is
	// closed before the error returns.
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "corrupt.db")
	if err := os.WriteFile(dbPath, []byte("not a sqlite database"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := NewStore(dbPath); err == nil {
		t.Fatal("expected error for corrupted DB file")
	}
}

func TestPutOnClosedDB(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.Close()

	if err := s.PutRollbackState(rollback.State{}); err == nil {
		t.Fatal("expected error on closed DB")
	}
	if err := s.PutShadowDiff(diffAt("r", time.Now().UTC()), 5); err == nil {
		t.Fatal("expected error on closed DB")
	}
	if err := s.PutDecisionRecord(decision.Record{RunID: "r"}); err == nil {
		t.Fatal("expected error on closed DB")
	}
}

func TestDBAccessor(t *testing.T) {
	s := tempDB(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil *sql.DB")
	}
}
