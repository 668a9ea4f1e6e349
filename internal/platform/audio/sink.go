package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Sink consumes the sound tags of one tick.
type Sink interface {
	Play(sounds []core.Sound)
	Close()
}

// Nop discards every sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play([]core.Sound) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker mixes generated tones onto the default output device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *log.Logger
	closed bool
}

// OpenSpeaker initializes the output device. Callers fall back to Nop on error.
func OpenSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues one tone per distinct tag. Repeats within a tick are merged.
func (s *Speaker) Play(sounds []core.Sound) {
	if len(sounds) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	seen := make(map[core.Sound]bool, len(sounds))
	speaker.Lock()
	defer speaker.Unlock()
	for _, snd := range sounds {
		if seen[snd] {
			continue
		}
		seen[snd] = true
		v, ok := VoiceFor(snd)
		if !ok {
			s.logger.Debug("no voice for sound", "sound", snd)
			continue
		}
		s.mixer.Add(Tone(v, SampleRate))
	}
}

// Close silences the mixer.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
}
