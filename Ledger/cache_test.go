package Ledger

import (
	"path/filepath"
	"testing"

	"MissionControl/Models"
)

func TestBoltCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	if got := cache.Get(LedgerKey); got != nil {
		t.Fatalf("expected absent key, got %d bytes", len(got))
	}

	records := []Models.Assignment{testRecord("T1", "Deepak", Models.StatusPending, "2024-06-01T12:00:00Z")}
	if err := cache.Set(LedgerKey, encodeRecords(records)); err != nil {
		t.Fatalf("set: %v", err)
	}

	decoded := decodeRecords(cache.Get(LedgerKey))
	if len(decoded) != 1 || decoded[0].TaskID != "T1" {
		t.Fatalf("snapshot did not round-trip: %+v", decoded)
	}

	if err := cache.Remove(LedgerKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := cache.Get(LedgerKey); got != nil {
		t.Fatal("key present after remove")
	}
}

func TestDecodeRecordsMalformed(t *testing.T) {
	if got := decodeRecords([]byte("not json")); got != nil {
		t.Fatalf("malformed blob should decode to empty, got %+v", got)
	}
	if got := decodeRecords(nil); got != nil {
		t.Fatal("absent blob should decode to empty")
	}
	if got := decodeRecords([]byte(`{"taskId":"T1"}`)); got != nil {
		t.Fatalf("non-list blob should be discarded, got %+v", got)
	}
}
