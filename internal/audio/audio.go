package audio

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/sirupsen/logrus"

	"herd/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// maxVoices caps simultaneous effects; a stampede would otherwise clip.
const maxVoices = 4

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundHoof SoundKind = iota
	SoundBump
	SoundWhinny
	SoundRelease
)

// SoundFor maps a scene event to its effect. ok is false for silent events.
func SoundFor(t game.EventType) (kind SoundKind, ok bool) {
	switch t {
	case game.EventJump:
		return SoundHoof, true
	case game.EventCollision:
		return SoundBump, true
	case game.EventTrapped:
		return SoundWhinny, true
	case game.EventReleased:
		return SoundRelease, true
	}
	return 0, false
}

// System plays procedural effects through oto.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	active int32
	cache  map[SoundKind][]float64
	log    logrus.FieldLogger
}

func New(log logrus.FieldLogger) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	s := &System{
		ctx:    ctx,
		ready:  ready,
		volume: 0.58,
		cache:  make(map[SoundKind][]float64),
		log:    log,
	}
	for _, k := range []SoundKind{SoundHoof, SoundBump, SoundWhinny, SoundRelease} {
		s.cache[k] = render(k)
	}
	return s, nil
}

// Attach plays an effect for every audible event on bus, panned by the
// event's x position.
func (s *System) Attach(bus *game.EventBus) {
	bus.SubscribeAll(func(e game.Event) {
		if kind, ok := SoundFor(e.Type); ok {
			s.Play(kind, float64(e.X/game.FieldHalfSize))
		}
	})
}

// Play starts an effect in the background. It drops the effect while the
// device is not ready or too many voices are playing.
func (s *System) Play(kind SoundKind, pan float64) {
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.AddInt32(&s.active, 1) > maxVoices {
		atomic.AddInt32(&s.active, -1)
		return
	}
	samples := s.cache[kind]
	if len(samples) == 0 {
		atomic.AddInt32(&s.active, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&s.active, -1)
		reader := &soundReader{data: encodeStereo(samples, pan)}
		player := s.ctx.NewPlayer(reader)
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.log.WithError(err).Warn("closing audio player")
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
