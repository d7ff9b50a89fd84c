package state_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/framed-app/framed/internal/state"
)

func TestRunLifecycle(t *testing.T) {
	store := state.NewStore()
	if got := store.Snapshot().Phase; got != state.IDLE {
		t.Fatalf("initial phase = %v", got)
	}

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.StartRun("run-1", start)
	store.SetTarget("iPhone", "ja")
	store.AddGenerated(100)
	store.AddGenerated(50)
	store.AddSkipped()
	store.AddFailed()
	store.FinishRun(start.Add(time.Second), nil)

	snap := store.Snapshot()
	if snap.Phase != state.DONE || snap.Run.ID != "run-1" || snap.Run.Language != "ja" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	want := state.Counters{Generated: 2, Skipped: 1, Failed: 1, Bytes: 150}
	if snap.Counters != want {
		t.Fatalf("counters = %+v, want %+v", snap.Counters, want)
	}

	store.StartRun("run-2", start)
	if got := store.Snapshot().Counters; got != (state.Counters{}) {
		t.Fatalf("counters not reset: %+v", got)
	}
	store.FinishRun(start, errors.New("bezel missing"))
	if snap := store.Snapshot(); snap.Phase != state.ERROR || snap.Run.Err != "bezel missing" {
		t.Fatalf("unexpected failed snapshot %+v", snap)
	}
}

func TestConcurrentPreviews(t *testing.T) {
	store := state.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddPreview()
		}()
	}
	wg.Wait()
	if got := store.Snapshot().Previews; got != 20 {
		t.Fatalf("previews = %d, want 20", got)
	}
	if state.RUNNING.String() != "running" {
		t.Fatalf("phase name = %q", state.RUNNING.String())
	}
}
