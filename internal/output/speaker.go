// Package output sends audio to the system sound device through beep's speaker.
package output

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker is the process-wide beep speaker.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }

// Clear drops everything queued; it takes the speaker lock itself.
func (Speaker) Clear() { speaker.Clear() }

func (Speaker) Lock()   { speaker.Lock() }
func (Speaker) Unlock() { speaker.Unlock() }
