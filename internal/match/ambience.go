package match

import (
	"context"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/google/uuid"
)

type Sound uint8

const (
	SoundCountdownTick Sound = iota + 1
	SoundFreeze
)

// Ambience plays music and cues, it never affects the game state.
type Ambience interface {
	PlaySong(listeners []uuid.UUID)
	AddListener(id uuid.UUID)
	StopSong()
	Lightning(at arena.Vec3)
	Sound(s Sound)
}

var _ Ambience = (*LogAmbience)(nil)

// NewLogAmbience returns an Ambience that picks a track from tracks and only logs the cues.
func NewLogAmbience(ctx context.Context, rnd random.Source, tracks ...string) *LogAmbience {
	return &LogAmbience{ctx: ctx, rnd: rnd, tracks: tracks}
}

type LogAmbience struct {
	ctx     context.Context
	rnd     random.Source
	tracks  []string
	playing string
}

func (a *LogAmbience) PlaySong(listeners []uuid.UUID) {
	logger := logging.FromContext(a.ctx).Named("match.PlaySong")
	if len(a.tracks) == 0 {
		logger.Warn("no songs loaded, skipping music")
		return
	}
	a.playing = a.tracks[random.Intn(a.rnd, len(a.tracks))]
	logger.Debugf("playing %s for %d listeners", a.playing, len(listeners))
}

func (a *LogAmbience) AddListener(id uuid.UUID) {
	if a.playing == "" {
		return
	}
	logging.FromContext(a.ctx).Named("match.AddListener").Debugf("%s joined song %s", id, a.playing)
}

func (a *LogAmbience) StopSong() {
	a.playing = ""
}

// Playing returns the current track, empty when silent.
func (a *LogAmbience) Playing() string {
	return a.playing
}

func (a *LogAmbience) Lightning(at arena.Vec3) {
	logging.FromContext(a.ctx).Named("match.Lightning").Debugf("lightning at %.1f %.1f %.1f", at.X, at.Y, at.Z)
}

func (a *LogAmbience) Sound(s Sound) {
	logging.FromContext(a.ctx).Named("match.Sound").Debugf("sound %d", s)
}
