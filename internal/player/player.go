// Package player plays one track at a time through an Output and reports
// spectrum stats for whatever is currently audible.
package player

import (
	"errors"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/falling-circles/internal/audio"
	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

const (
	ringSize     = 8192
	seekCooldown = 50 * time.Millisecond
)

// ErrNoOutput is returned by Load on a player without an output.
var ErrNoOutput = errors.New("no audio output")

// Output is the sound device. Lock guards everything the output's own
// goroutine touches while streaming; Clear and Play lock by themselves.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Player owns the output. All methods must be called from one goroutine;
// state shared with the output goroutine is guarded by out.Lock.
type Player struct {
	out      Output
	track    *audio.Track
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *audio.Tap
	analyser *spectrum.Analyser

	initDone bool
	finished bool
	lastSeek time.Time
}

// New creates an idle player on out. A nil out gives a player that can
// never load anything.
func New(out Output) *Player {
	return &Player{out: out, analyser: spectrum.NewAnalyser()}
}

// OpenDialog asks the user for a file and plays it. It reports false when the
// dialog was cancelled.
func (p *Player) OpenDialog() (bool, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return false, err
	}
	log.Printf("player: selected %s", filename)
	return true, p.Load(filename)
}

// Load stops the current track, if any, and starts playing path.
func (p *Player) Load(path string) error {
	if p.out == nil {
		return ErrNoOutput
	}
	track, err := audio.Open(path)
	if err != nil {
		return err
	}

	bufferSize := track.Format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := p.out.Init(track.Format.SampleRate, bufferSize); err != nil {
			_ = track.Close()
			return err
		}
		p.initDone = true
	case p.format.SampleRate != track.Format.SampleRate:
		p.out.Clear()
		if err := p.out.Init(track.Format.SampleRate, bufferSize); err != nil {
			// The old track is no longer queued anywhere.
			p.release()
			_ = track.Close()
			return err
		}
	default:
		p.out.Clear()
	}

	p.release()
	p.tap = audio.NewTap(track.Streamer, ringSize)
	p.out.Lock()
	p.track = track
	p.format = track.Format
	p.ctrl = &beep.Ctrl{Streamer: p.tap}
	p.finished = false
	p.out.Unlock()
	p.analyser.Reset()

	p.out.Play(p.sequence())
	log.Printf("player: playing %s (%v, %d Hz)", track.Name, track.Duration().Round(time.Second), track.Format.SampleRate)
	return nil
}

func (p *Player) sequence() beep.Streamer {
	return beep.Seq(p.ctrl, beep.Callback(func() {
		// Runs on the output goroutine with the output lock held.
		p.finished = true
	}))
}

// release forgets the current track. The output must no longer be playing it.
func (p *Player) release() {
	if p.track != nil {
		_ = p.track.Close()
	}
	p.track = nil
	p.ctrl = nil
	p.tap = nil
}

// Loaded reports whether a track has been opened.
func (p *Player) Loaded() bool { return p.track != nil }

// Name is the current track's file name.
func (p *Player) Name() string {
	if p.track == nil {
		return ""
	}
	return p.track.Name
}

// Playing reports whether audio is currently audible.
func (p *Player) Playing() bool {
	if p.ctrl == nil {
		return false
	}
	p.out.Lock()
	defer p.out.Unlock()
	return !p.ctrl.Paused && !p.finished
}

// TogglePause pauses or resumes. A track that ran to its end starts over;
// one that was scrubbed after ending resumes from the scrubbed point.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}

	p.out.Lock()
	if p.finished {
		err := p.track.Streamer.Seek(p.track.ResumePosition())
		p.finished = false
		p.ctrl.Paused = false
		p.out.Unlock()
		if err != nil {
			log.Printf("player: resume: %v", err)
			return
		}
		p.tap.Reset()
		p.out.Play(p.sequence())
		return
	}
	p.ctrl.Paused = !p.ctrl.Paused
	p.out.Unlock()
}

// Seek jumps to fraction (0..1) of the track. Calls closer together than
// the seek cooldown are dropped.
func (p *Player) Seek(fraction float64) error {
	if p.track == nil {
		return nil
	}
	if time.Since(p.lastSeek) < seekCooldown {
		return nil
	}
	fraction = max(0, min(1, fraction))

	p.out.Lock()
	defer p.out.Unlock()

	n := p.track.Streamer.Len()
	pos := min(int(fraction*float64(n)), n-1)
	pos = max(pos, 0)
	if err := p.track.Streamer.Seek(pos); err != nil {
		return err
	}
	p.lastSeek = time.Now()
	return nil
}

// Position is how far into the track playback is.
func (p *Player) Position() time.Duration {
	if p.track == nil {
		return 0
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.format.SampleRate.D(p.track.Streamer.Position())
}

// Duration is the current track's length.
func (p *Player) Duration() time.Duration {
	if p.track == nil {
		return 0
	}
	return p.track.Duration()
}

// Stats analyses the most recently played samples, or returns the neutral
// snapshot when nothing is playing.
func (p *Player) Stats() spectrum.Stats {
	if !p.Playing() {
		return spectrum.Neutral()
	}
	return p.analyser.Stats(p.tap.Snapshot(spectrum.FFTSize))
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	if p.initDone {
		p.out.Clear()
	}
	p.release()
}
