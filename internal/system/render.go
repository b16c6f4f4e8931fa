// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/utils"
)

const gridStep = 48

var (
	eyeColor      = color.RGBA{255, 0, 0, 255}
	healthLow     = color.RGBA{255, 71, 87, 255}
	healthMid     = color.RGBA{255, 209, 102, 255}
	zombieOutline = color.RGBA{0, 0, 0, 255}
)

// RenderSystem рисует мир по снимку: сетку, частицы, снаряды, зомби, босса и игрока.
// Интерфейс поверх мира рисует пакет ui.
type RenderSystem struct {
	gridStep float32
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{gridStep: gridStep}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, snap component.Snapshot) {
	s.drawGrid(screen)

	for _, p := range snap.Particles {
		clr := config.BloodColor
		clr.A = uint8(255 * ParticleAlpha(p.Life))
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 2, 2, premultiply(clr), false)
	}
	for _, b := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), config.BulletColor, true)
	}

	var target *component.Circle
	if snap.Player != nil {
		target = &snap.Player.Circle
	}
	for _, z := range snap.Zombies {
		drawZombie(screen, zombieBody{
			Circle: z.Circle,
			fill:   config.ZombieFills[z.Variant%len(config.ZombieFills)],
			stroke: config.ZombieStroke,
			walk:   z.WalkCycle,
			health: z.Health,
			max:    z.MaxHealth,
			hpBar:  true,
		}, target)
	}
	if b := snap.Boss; b != nil {
		drawZombie(screen, zombieBody{
			Circle: b.Circle,
			fill:   config.BossFill,
			stroke: config.BossStroke,
			walk:   b.WalkCycle,
		}, target)
		if b.Attacking {
			vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius+10), 3, config.BossAttackColor, true)
		}
	}
	if snap.Player != nil {
		drawPlayer(screen, *snap.Player)
	}
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	for i, x := 0, float32(0); x < w; i, x = i+1, x+s.gridStep {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor(i), false)
	}
	for i, y := 0, float32(0); y < h; i, y = i+1, y+s.gridStep {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor(i), false)
	}
}

func gridColor(i int) color.Color {
	if i%2 == 0 {
		return config.GridDarkColor
	}
	return config.GridLightColor
}

func drawPlayer(screen *ebiten.Image, p component.PlayerView) {
	r := p.Radius

	// Ствол в сторону прицела
	dir := utils.Normalize(p.AimX-p.X, p.AimY-p.Y)
	vector.StrokeLine(screen,
		float32(p.X), float32(p.Y),
		float32(p.X+dir.X*(r+10)), float32(p.Y+dir.Y*(r+10)),
		6, config.PlayerStroke, true)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), config.PlayerFill, true)
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r), 2, config.PlayerStroke, true)
}

type zombieBody struct {
	component.Circle
	fill, stroke color.RGBA
	walk         float64
	health, max  float64
	hpBar        bool
}

// drawZombie рисует тело, голову, руки и глаза, развёрнутые к цели.
func drawZombie(screen *ebiten.Image, z zombieBody, target *component.Circle) {
	r := z.Radius

	forward := utils.Vec2{X: 1}
	if target != nil {
		if d := utils.Normalize(target.X-z.X, target.Y-z.Y); d.Len() > 0 {
			forward = d
		}
	}
	side := utils.Vec2{X: -forward.Y, Y: forward.X}
	at := func(f, sd float64) (float32, float32) {
		return float32(z.X + forward.X*f + side.X*sd), float32(z.Y + forward.Y*f + side.Y*sd)
	}

	// Руки тянутся вперёд и раскачиваются при ходьбе
	bob := math.Sin(z.walk) * 3
	swing := math.Sin(z.walk*2) * 0.3 * r
	handR := float32(math.Max(4, r*0.2))
	for _, sign := range []float64{-1, 1} {
		sx, sy := at(0, sign*r*0.8)
		hx, hy := at(r*1.2+sign*swing, sign*(r*0.9)+bob)
		vector.StrokeLine(screen, sx, sy, hx, hy, handR, z.fill, true)
		vector.DrawFilledCircle(screen, hx, hy, handR, z.fill, true)
	}

	vector.DrawFilledCircle(screen, float32(z.X), float32(z.Y), float32(r), z.fill, true)
	vector.StrokeCircle(screen, float32(z.X), float32(z.Y), float32(r), 2, z.stroke, true)

	headR := r * 0.55
	hx, hy := at(r*0.3, 0)
	vector.DrawFilledCircle(screen, hx, hy, float32(headR), z.fill, true)
	vector.StrokeCircle(screen, hx, hy, float32(headR), 1, zombieOutline, true)
	eyeR := float32(math.Max(2, r*0.1))
	for _, sign := range []float64{-1, 1} {
		ex, ey := at(r*0.3+headR*0.4, sign*headR*0.35)
		vector.DrawFilledCircle(screen, ex, ey, eyeR, eyeColor, true)
	}

	// Полоска здоровья только у раненых
	if !z.hpBar || z.max <= 0 || z.health >= z.max {
		return
	}
	ratio := z.health / z.max
	bw, bh := float32(r*2), float32(4)
	bx, by := float32(z.X-r), float32(z.Y-r-10)
	vector.DrawFilledRect(screen, bx, by, bw, bh, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, bx, by, bw*float32(ratio), bh, HealthColor(ratio), false)
}

// ParticleAlpha — прозрачность частицы: последние ParticleFadeTime она гаснет.
func ParticleAlpha(remaining float64) float64 {
	return utils.Clamp(remaining/config.ParticleFadeTime.Seconds(), 0, 1)
}

// HealthColor выбирает цвет полоски здоровья по оставшейся доле.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return config.HPBarFillColor
	case ratio > 0.25:
		return healthMid
	default:
		return healthLow
	}
}

// premultiply: ebiten ожидает цвета с предумноженной альфой.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
