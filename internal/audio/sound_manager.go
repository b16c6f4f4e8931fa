// internal/audio/sound_manager.go
package audio

import (
	"bytes"
	"log/slog"
	"math/rand"
	"time"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"zombie-shooter/internal/event"
)

// Минимальная пауза между повторами одного звука. Контактный урон приходит каждый тик.
var throttle = map[event.EventType]time.Duration{
	event.PlayerHit: 250 * time.Millisecond,
	event.EnemyHit:  40 * time.Millisecond,
	event.ShotFired: 30 * time.Millisecond,
}

func effects() map[event.EventType][]byte {
	return map[event.EventType][]byte{
		event.ShotFired:   Render(Tone{Freq: 800, Duration: 0.1, Volume: 0.05, Wave: Square}),
		event.EnemyHit:    Render(Tone{Freq: 200, Duration: 0.2, Volume: 0.03, Wave: Sawtooth}),
		event.EnemyKilled: Render(Tone{Freq: 150, Duration: 0.5, Volume: 0.08, Wave: Sawtooth}),
		event.BossSpawned: Render(Tone{Freq: 60, Duration: 1.0, Volume: 0.1, Wave: Sawtooth}),
		event.BossAttack:  Render(Tone{Freq: 90, Duration: 0.4, Volume: 0.06, Wave: Sawtooth}),
		event.BossKilled:  Render(Tone{Freq: 100, Duration: 0.8, Volume: 0.1, Wave: Sawtooth}),
		event.LevelComplete: Render(
			Tone{Freq: 440, Duration: 0.2, Volume: 0.1, Wave: Sine},
			Tone{Freq: 554, Duration: 0.2, Volume: 0.1, Wave: Sine, Delay: 0.2},
			Tone{Freq: 659, Duration: 0.3, Volume: 0.1, Wave: Sine, Delay: 0.4},
		),
		event.PlayerHit: Render(Tone{Freq: 300, Duration: 0.3, Volume: 0.05, Wave: Square}),
		event.GameOver:  Render(Tone{Freq: 110, Duration: 1.2, Volume: 0.1, Wave: Square}),
	}
}

var (
	backgroundTheme = Melody(Sine, 0.03,
		Note{220, 0.5}, Note{247, 0.5}, Note{277, 0.5}, Note{330, 0.5},
		Note{277, 0.5}, Note{247, 0.5}, Note{220, 1.0},
	)
	bossTheme = Melody(Sawtooth, 0.02,
		Note{110, 0.3}, Note{123, 0.3}, Note{139, 0.3}, Note{165, 0.3}, Note{185, 0.3}, Note{220, 0.3},
		Note{185, 0.3}, Note{165, 0.3}, Note{139, 0.3}, Note{123, 0.3}, Note{110, 0.6},
	)
)

// SoundManager озвучивает события игры. Все методы безопасны для nil,
// поэтому игра работает и без звукового устройства.
type SoundManager struct {
	ctx        *ebitenaudio.Context
	players    map[event.EventType]*ebitenaudio.Player
	growls     []*ebitenaudio.Player
	background *ebitenaudio.Player
	boss       *ebitenaudio.Player
	music      *ebitenaudio.Player // что играет сейчас
	muted      bool
	lastPlayed map[event.EventType]time.Time
	now        func() time.Time
}

// NewSoundManager создаёт аудиоконтекст. Ebiten разрешает только один контекст на процесс.
func NewSoundManager(muted bool) *SoundManager {
	ctx := ebitenaudio.NewContext(SampleRate)
	m := &SoundManager{
		ctx:        ctx,
		players:    make(map[event.EventType]*ebitenaudio.Player),
		muted:      muted,
		lastPlayed: make(map[event.EventType]time.Time),
		now:        time.Now,
	}
	for t, pcm := range effects() {
		m.players[t] = ctx.NewPlayerFromBytes(pcm)
	}
	// Рык — несколько вариантов высоты 80..120 Гц
	for i := 0; i < 4; i++ {
		freq := 80 + rand.Float64()*40
		m.growls = append(m.growls, ctx.NewPlayerFromBytes(Render(Tone{Freq: freq, Duration: 0.3, Volume: 0.02, Wave: Sawtooth})))
	}
	m.background = m.loop(backgroundTheme)
	m.boss = m.loop(bossTheme)
	return m
}

func (m *SoundManager) loop(tones []Tone) *ebitenaudio.Player {
	pcm := Render(tones...)
	p, err := m.ctx.NewPlayer(ebitenaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		slog.Warn("failed to create music player", "error", err)
		return nil
	}
	return p
}

// OnEvent реализует event.Listener.
func (m *SoundManager) OnEvent(e event.Event) {
	if m == nil {
		return
	}
	switch e.Type {
	case event.BossSpawned:
		m.switchMusic(m.boss)
	case event.LevelComplete, event.LevelStarted:
		m.switchMusic(m.background)
	case event.GameOver:
		m.switchMusic(nil)
	}
	if m.muted || !m.ready(e.Type) {
		return
	}
	if e.Type == event.ZombieGrowl {
		m.replay(m.growls[rand.Intn(len(m.growls))])
		return
	}
	if p, ok := m.players[e.Type]; ok {
		m.replay(p)
	}
}

// ready применяет throttle для частых событий.
func (m *SoundManager) ready(t event.EventType) bool {
	gap, ok := throttle[t]
	if !ok {
		return true
	}
	now := m.now()
	if now.Sub(m.lastPlayed[t]) < gap {
		return false
	}
	m.lastPlayed[t] = now
	return true
}

func (m *SoundManager) replay(p *ebitenaudio.Player) {
	if err := p.SetPosition(0); err != nil {
		slog.Warn("failed to rewind sound", "error", err)
		return
	}
	p.Play()
}

// StartMusic запускает фоновую тему новой игры.
func (m *SoundManager) StartMusic() {
	if m == nil {
		return
	}
	m.switchMusic(m.background)
}

func (m *SoundManager) switchMusic(next *ebitenaudio.Player) {
	if m.music == next && (next == nil || next.IsPlaying() || m.muted) {
		return
	}
	if m.music != nil {
		m.music.Pause()
	}
	m.music = next
	if next == nil {
		return
	}
	if err := next.SetPosition(0); err != nil {
		slog.Warn("failed to rewind music", "error", err)
	}
	if !m.muted {
		next.Play()
	}
}

// ToggleMute выключает или включает весь звук и возвращает новое состояние.
func (m *SoundManager) ToggleMute() bool {
	if m == nil {
		return true
	}
	m.muted = !m.muted
	if m.music != nil {
		if m.muted {
			m.music.Pause()
		} else {
			m.music.Play()
		}
	}
	slog.Debug("sound toggled", "muted", m.muted)
	return m.muted
}

func (m *SoundManager) Muted() bool {
	return m == nil || m.muted
}

// Pause останавливает музыку, например на экране паузы.
func (m *SoundManager) Pause() {
	if m == nil || m.music == nil {
		return
	}
	m.music.Pause()
}

// Resume продолжает музыку после паузы.
func (m *SoundManager) Resume() {
	if m == nil || m.music == nil || m.muted {
		return
	}
	m.music.Play()
}
