package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for files whose extension has no decoder.
var ErrUnsupported = errors.New("unsupported file type")

// Patterns lists the file patterns Open understands.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Track is an opened, decoded audio file.
type Track struct {
	Name     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format
}

// Open decodes path by extension. Closing the track closes the file.
func Open(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return &Track{
		Name:     filepath.Base(path),
		Streamer: &fileStreamer{StreamSeekCloser: streamer, f: f},
		Format:   format,
	}, nil
}

// Duration is the full length of the track.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.Streamer.Len())
}

// ResumePosition is where a finished track picks up again: the start when the
// stream ran to its end, otherwise the sample it was moved to since.
func (t *Track) ResumePosition() int {
	pos := t.Streamer.Position()
	if pos >= t.Streamer.Len() {
		return 0
	}
	return pos
}

// Close releases the decoder and the file.
func (t *Track) Close() error {
	return t.Streamer.Close()
}

// fileStreamer closes the underlying file along with the decoder. Some
// decoders close it themselves, so the second close error is ignored.
type fileStreamer struct {
	beep.StreamSeekCloser
	f *os.File
}

func (s *fileStreamer) Close() error {
	err := s.StreamSeekCloser.Close()
	_ = s.f.Close()
	return err
}
