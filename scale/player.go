package scale

import (
	"sync"
	"time"

	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/music"
	"github.com/robmorgan/cadence/sink"
	"github.com/robmorgan/cadence/timing"
)

const (
	// setPauseBeats stretches the pause at a set boundary relative to the
	// per-note interval.
	setPauseBeats = 4

	noteVolume = 0.5
)

// Player walks a built sequence one entry at a time, scheduling each advance
// after the appropriate delay: the note interval normally, the longer set
// interval after a boundary.
type Player struct {
	mu    sync.Mutex
	sched timing.Scheduler
	out   sink.Sink

	start     music.Note
	end       music.Note
	intervals []string
	direction Direction
	bpm       int

	playing bool
	entries []Entry
	idx     int
	gen     uint64
	handle  timing.Handle

	root       music.Note
	hasRoot    bool
	current    music.Note
	hasCurrent bool
}

// PlayerSnapshot is the read-only playback state exposed to the UI layer.
type PlayerSnapshot struct {
	Playing     bool
	Root        string
	CurrentNote string
	Index       int
	Length      int
}

// NewPlayer creates a stopped player over the default C4..C5 chromatic run.
func NewPlayer(sched timing.Scheduler, out sink.Sink) *Player {
	return &Player{
		sched:     sched,
		out:       out,
		start:     music.NewNote("C", 4),
		end:       music.NewNote("C", 5),
		intervals: []string{"1"},
		direction: Ascending,
		bpm:       120,
	}
}

// SetRange sets the start and end root notes for the next Play.
func (p *Player) SetRange(start, end music.Note) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start, p.end = start, end
}

// SetIntervals sets the interval symbols applied to each root. An empty
// list is kept as the bare root.
func (p *Player) SetIntervals(symbols []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(symbols) == 0 {
		symbols = []string{"1"}
	}
	p.intervals = append([]string(nil), symbols...)
}

// SetDirection sets the playback direction.
func (p *Player) SetDirection(d Direction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.direction = d
}

// SetBPM sets the pace. Out-of-range values are rejected silently; the
// note interval is one beat and the set interval four beats.
func (p *Player) SetBPM(bpm int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if bpm < 30 || bpm > 300 {
		return
	}
	p.bpm = bpm
}

// NoteInterval returns the delay between consecutive notes.
func (p *Player) NoteInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.noteIntervalLocked()
}

// SetInterval returns the longer delay applied at a set boundary.
func (p *Player) SetInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return setPauseBeats * p.noteIntervalLocked()
}

// Play builds the sequence from the current parameters and starts walking
// it; the first note sounds immediately. No-op when already playing.
func (p *Player) Play() {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return
	}
	p.entries = Build(p.start, p.end, p.intervals, p.direction)
	if len(p.entries) == 0 {
		p.mu.Unlock()
		return
	}
	p.playing = true
	p.idx = 0
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	logger.GetProjectLogger().Debugf("sequence playback started: %d entries at %d bpm", len(p.entries), p.bpm)
	p.advance(gen)
}

// Stop cancels any pending advance and discards the cursor and display
// state. Idempotent.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	if p.handle != nil {
		p.handle.Cancel()
	}
	p.finishLocked()
}

// Playing reports whether a run is in progress.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Snapshot returns the current playback state for display.
func (p *Player) Snapshot() PlayerSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := PlayerSnapshot{
		Playing: p.playing,
		Index:   p.idx,
		Length:  len(p.entries),
	}
	if p.hasRoot {
		snap.Root = p.root.String()
	}
	if p.hasCurrent {
		snap.CurrentNote = p.current.String()
	}
	return snap
}

func (p *Player) advance(gen uint64) {
	p.mu.Lock()
	if !p.playing || gen != p.gen {
		p.mu.Unlock()
		return
	}

	entry := p.entries[p.idx]
	var play *music.Note
	if !entry.IsBoundary() {
		note := entry.Note()
		// the first note of each interval group becomes the new root
		if p.idx == 0 || p.entries[p.idx-1].IsBoundary() {
			p.root = note
			p.hasRoot = true
		}
		p.current = note
		p.hasCurrent = true
		play = &note
	}

	p.idx++
	if p.idx < len(p.entries) {
		delay := p.noteIntervalLocked()
		if entry.IsBoundary() {
			delay = setPauseBeats * p.noteIntervalLocked()
		}
		p.handle = p.sched.ScheduleOnce(delay, func() {
			p.advance(gen)
		})
	} else {
		p.finishLocked()
	}

	out := p.out
	duration := p.noteIntervalLocked()
	p.mu.Unlock()

	if play != nil {
		out.Play(play.Frequency(), duration, sink.Decay(noteVolume))
	}
}

func (p *Player) finishLocked() {
	p.playing = false
	p.idx = 0
	p.gen++
	p.handle = nil
	p.hasRoot = false
	p.hasCurrent = false
	p.root = music.Note{}
	p.current = music.Note{}
}
