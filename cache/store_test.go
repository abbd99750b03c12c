package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openStore(t)
	now := time.Now()

	if err := s.Put("k", []byte(`[{"id":"1"}]`), time.Minute, now); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	payload, ok, err := s.Get("k", now)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("entry should be present")
	}
	if string(payload) != `[{"id":"1"}]` {
		t.Errorf("payload = %s", payload)
	}
}

func TestStore_MissingKey(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Get("missing", time.Now())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key should not be found")
	}
}

func TestStore_ExpiredEntryIsEvicted(t *testing.T) {
	s := openStore(t)
	now := time.Now()

	if err := s.Put("k", []byte(`old`), time.Minute, now); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	later := now.Add(2 * time.Minute)
	_, ok, err := s.Get("k", later)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expired entry should not be served")
	}

	// The expired row is gone even when asked at the original time.
	_, ok, err = s.Get("k", now)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expired entry should have been evicted")
	}
}

func TestStore_PutReplacesEntry(t *testing.T) {
	s := openStore(t)
	now := time.Now()

	if err := s.Put("k", []byte(`first`), time.Minute, now); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("k", []byte(`second`), time.Hour, now); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	payload, ok, err := s.Get("k", now.Add(30*time.Minute))
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(payload) != "second" {
		t.Errorf("payload = %s, want second", payload)
	}
}

func TestStore_Purge(t *testing.T) {
	s := openStore(t)
	now := time.Now()

	s.Put("fresh", []byte(`a`), time.Hour, now)
	s.Put("stale", []byte(`b`), time.Minute, now)

	if err := s.Purge(now.Add(30 * time.Minute)); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	if _, ok, _ := s.Get("fresh", now.Add(30 * time.Minute)); !ok {
		t.Error("fresh entry should survive a purge")
	}
	if _, ok, _ := s.Get("stale", now); ok {
		t.Error("stale entry should be purged")
	}
}
