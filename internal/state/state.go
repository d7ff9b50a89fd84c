package state

import (
	"sync"
	"time"
)

type Phase int

const (
	IDLE Phase = iota
	RUNNING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case IDLE:
		return "idle"
	case RUNNING:
		return "running"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// RunInfo describes the current or last batch run.
type RunInfo struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Device    string
	Language  string
	Err       string
}

// Counters count the outcomes of one run.
type Counters struct {
	Generated int
	Skipped   int
	Failed    int
	Bytes     int64
}

type State struct {
	Phase    Phase
	Run      RunInfo
	Counters Counters
	Previews int // images rendered by the preview API since start
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// StartRun resets the counters and records a running run.
func (store *Store) StartRun(id string, at time.Time) {
	store.mu.Lock()
	store.state.Phase = RUNNING
	store.state.Run = RunInfo{ID: id, StartedAt: at}
	store.state.Counters = Counters{}
	store.mu.Unlock()
}

// FinishRun closes the run; a non-nil err marks it failed.
func (store *Store) FinishRun(at time.Time, err error) {
	store.mu.Lock()
	store.state.Run.EndedAt = at
	store.state.Phase = DONE
	if err != nil {
		store.state.Phase = ERROR
		store.state.Run.Err = err.Error()
	}
	store.mu.Unlock()
}

// SetTarget records the device and language being processed.
func (store *Store) SetTarget(device, language string) {
	store.mu.Lock()
	store.state.Run.Device = device
	store.state.Run.Language = language
	store.mu.Unlock()
}

func (store *Store) AddGenerated(bytes int64) {
	store.mu.Lock()
	store.state.Counters.Generated++
	store.state.Counters.Bytes += bytes
	store.mu.Unlock()
}

func (store *Store) AddSkipped() {
	store.mu.Lock()
	store.state.Counters.Skipped++
	store.mu.Unlock()
}

func (store *Store) AddFailed() {
	store.mu.Lock()
	store.state.Counters.Failed++
	store.mu.Unlock()
}

func (store *Store) AddPreview() {
	store.mu.Lock()
	store.state.Previews++
	store.mu.Unlock()
}
