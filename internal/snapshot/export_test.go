package snapshot

import "testing"

// test hooks for poking at the stored row directly

func (s *Store) CorruptForTest(t *testing.T, payload string) {
	t.Helper()
	if _, err := s.db.Exec(`UPDATE snapshots SET payload = ? WHERE id = 1`, payload); err != nil {
		t.Fatal(err)
	}
}

func (s *Store) BumpVersionForTest(t *testing.T, version int) {
	t.Helper()
	if _, err := s.db.Exec(`UPDATE snapshots SET version = ? WHERE id = 1`, version); err != nil {
		t.Fatal(err)
	}
}
