package snapshot_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"shophood/internal/snapshot"
	"shophood/internal/store"
)

func memStore(t *testing.T) *snapshot.Store {
	t.Helper()
	s, err := snapshot.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadWithoutSaveReturnsErrNoSnapshot(t *testing.T) {
	s := memStore(t)
	if _, err := s.Load(); !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Fatalf("want ErrNoSnapshot, got %v", err)
	}
}

func TestRoundTripPreservesStateAndTimestamps(t *testing.T) {
	s := memStore(t)
	orig := store.Seed()
	// a timestamp with sub-second precision must survive exactly
	orig.Messages[0].Timestamp = time.Date(2025, 6, 1, 12, 30, 45, 123_000_000, time.UTC)

	if err := s.Save(orig); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}

	for i := range orig.Messages {
		if !got.Messages[i].Timestamp.Equal(orig.Messages[i].Timestamp) {
			t.Fatalf("message %d timestamp drifted: %v != %v",
				i, got.Messages[i].Timestamp, orig.Messages[i].Timestamp)
		}
		if got.Messages[i].Timestamp.UnixNano() != orig.Messages[i].Timestamp.UnixNano() {
			t.Fatalf("message %d lost sub-second precision", i)
		}
	}

	a, _ := json.Marshal(orig)
	b, _ := json.Marshal(got)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("state did not round-trip:\n%s\n%s", a, b)
	}
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	s := memStore(t)
	st := store.Seed()
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}
	st = store.Apply(st, store.DeleteProduct{ID: "p1"})
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range got.Products {
		if p.ID == "p1" {
			t.Fatal("old snapshot contents survived an overwrite")
		}
	}
}

func TestBootstrapRestoresStoredState(t *testing.T) {
	s := memStore(t)
	st := store.Apply(store.Seed(), store.DeleteProduct{ID: "p1"})
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}
	got := s.Bootstrap()
	if len(got.Products) == 0 {
		t.Fatal("stored state not restored")
	}
	for _, p := range got.Products {
		if p.ID == "p1" {
			t.Fatal("bootstrap ignored the stored snapshot")
		}
	}
}

func TestBootstrapSeedsOnFirstRun(t *testing.T) {
	s := memStore(t)
	st := s.Bootstrap()
	if _, ok := st.UserByID("1"); !ok {
		t.Fatal("empty snapshot store must yield seed data")
	}
}

func TestBootstrapFallsBackToSeedOnCorruptSnapshot(t *testing.T) {
	s := memStore(t)
	if err := s.Save(store.Seed()); err != nil {
		t.Fatal(err)
	}
	s.CorruptForTest(t, `{"users": not-json`)
	st := s.Bootstrap()
	if _, ok := st.UserByID("1"); !ok {
		t.Fatal("corrupt snapshot must fall back to seed data")
	}
}

func TestBootstrapFallsBackToSeedOnReadError(t *testing.T) {
	s := memStore(t)
	if err := s.Save(store.Seed()); err != nil {
		t.Fatal(err)
	}
	// closed handle makes Load fail with a plain query error, not a sentinel
	s.Close()
	st := s.Bootstrap()
	if _, ok := st.UserByID("1"); !ok {
		t.Fatal("read failure must fall back to seed data, never be fatal")
	}
}

func TestCorruptPayloadReportsErrCorrupt(t *testing.T) {
	s := memStore(t)
	if err := s.Save(store.Seed()); err != nil {
		t.Fatal(err)
	}
	s.CorruptForTest(t, `{"users": not-json`)
	if _, err := s.Load(); !errors.Is(err, snapshot.ErrCorrupt) {
		t.Fatalf("want ErrCorrupt, got %v", err)
	}
}

func TestUnknownVersionReportsErrCorrupt(t *testing.T) {
	s := memStore(t)
	if err := s.Save(store.Seed()); err != nil {
		t.Fatal(err)
	}
	s.BumpVersionForTest(t, snapshot.SchemaVersion+1)
	if _, err := s.Load(); !errors.Is(err, snapshot.ErrCorrupt) {
		t.Fatalf("want ErrCorrupt, got %v", err)
	}
}
