package metrics

import "testing"

// TestMemoryCollector_Snapshot verifies a snapshot carries live values.
func TestMemoryCollector_Snapshot(t *testing.T) {
	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be non-zero in a running process")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be non-zero in a running process")
	}
}

// TestMemorySnapshot_Delta verifies growth computation and clamping.
func TestMemorySnapshot_Delta(t *testing.T) {
	t.Parallel()

	earlier := MemorySnapshot{HeapAlloc: 100, Sys: 1000, NumGC: 2, HeapObjects: 50}
	later := MemorySnapshot{HeapAlloc: 250, Sys: 1000, NumGC: 5, HeapObjects: 40}

	d := later.Delta(earlier)

	if d.HeapAlloc != 150 {
		t.Errorf("Delta HeapAlloc = %d, want 150", d.HeapAlloc)
	}
	if d.Sys != 0 {
		t.Errorf("Delta Sys = %d, want 0", d.Sys)
	}
	if d.NumGC != 3 {
		t.Errorf("Delta NumGC = %d, want 3", d.NumGC)
	}
	if d.HeapObjects != 0 {
		t.Errorf("Delta HeapObjects = %d, want 0 (clamped)", d.HeapObjects)
	}
}
