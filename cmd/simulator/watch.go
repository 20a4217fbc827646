package main

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/stronghold/internal/engine"
	"github.com/udisondev/stronghold/internal/model"
)

const (
	watchFrameInterval = 100 * time.Millisecond

	// hudRows is how many top rows the HUD occupies before the field starts.
	hudRows = 4
)

var (
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTower = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleBase  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
)

// runWatch renders the battlefield until the run stops or the viewer quits
// with q, Esc or Ctrl+C. Quitting the viewer stops the whole run.
func runWatch(ctx context.Context, eng *engine.Engine, waypoints []model.Point, stopRun context.CancelFunc) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	bounds := boundsFor(waypoints)

	ticker := time.NewTicker(watchFrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					stopRun()
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			drawFrame(screen, now, eng.Snapshot(now), waypoints, bounds)
		}
	}
}

// drawFrame projects world coordinates onto the cell grid: the HUD takes
// the top rows, the field scales into whatever space is left.
func drawFrame(screen tcell.Screen, now time.Time, snap engine.Snapshot, waypoints []model.Point, b fieldBounds) {
	screen.Clear()
	w, h := screen.Size()

	drawPath(screen, waypoints, b, w, h)

	if len(waypoints) > 0 {
		if x, y, ok := b.project(waypoints[0], w, h); ok {
			screen.SetContent(x, y, 'S', nil, styleDim)
		}
		if x, y, ok := b.project(waypoints[len(waypoints)-1], w, h); ok {
			screen.SetContent(x, y, '#', nil, styleBase)
		}
	}

	for _, t := range snap.Towers {
		if x, y, ok := b.project(t.Position, w, h); ok {
			screen.SetContent(x, y, markerRune(string(t.Type)), nil, styleTower)
		}
	}

	for _, e := range snap.Enemies {
		if x, y, ok := b.project(e.Position, w, h); ok {
			screen.SetContent(x, y, markerRune(string(e.Type)), nil, enemyStyle(e))
		}
	}

	drawHUD(screen, now, snap)
	screen.Show()
}

func drawHUD(screen tcell.Screen, now time.Time, snap engine.Snapshot) {
	wave := fmt.Sprintf("wave %d", snap.Wave)
	if snap.TotalWaves > 0 {
		wave = fmt.Sprintf("wave %d/%d", snap.Wave, snap.TotalWaves)
	}
	if snap.WaveComplete && snap.NextWaveTime.After(now) {
		wave += fmt.Sprintf("  next in %ds", int(snap.NextWaveTime.Sub(now).Seconds())+1)
	} else if snap.TotalInWave > 0 {
		wave += fmt.Sprintf("  spawned %d/%d", snap.SpawnedInWave, snap.TotalInWave)
	}

	drawText(screen, 0, 0, styleHUD, fmt.Sprintf("stronghold  %s  %s  elapsed %s",
		snap.State, wave, snap.Elapsed.Round(time.Second)))
	drawText(screen, 0, 1, styleHUD, fmt.Sprintf("base %d/%d  mana %d/%d  score %d  kills %d  breaches %d",
		snap.BaseHealth, snap.MaxBaseHealth, int(snap.Mana), int(snap.ManaCapacity),
		snap.Score, snap.Kills, snap.Breaches))
	drawText(screen, 0, 2, styleDim, "q quits")
}

func drawPath(screen tcell.Screen, waypoints []model.Point, b fieldBounds, w, h int) {
	const samplesPerSegment = 64
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		for s := 0; s <= samplesPerSegment; s++ {
			p := from.Lerp(to, float64(s)/samplesPerSegment)
			if x, y, ok := b.project(p, w, h); ok {
				screen.SetContent(x, y, '.', nil, stylePath)
			}
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// markerRune is the uppercased first letter of an archetype name.
func markerRune(name string) rune {
	if name == "" {
		return '?'
	}
	return unicode.ToUpper(rune(name[0]))
}

func enemyStyle(e model.EnemySnapshot) tcell.Style {
	switch e.Type {
	case model.EnemyRaider:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case model.EnemyStalker:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case model.EnemyBrute:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case model.EnemyWarbringer:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// fieldBounds is the world-space box the watcher projects onto the screen.
type fieldBounds struct {
	minX, minY, maxX, maxY float64
}

// boundsFor covers every waypoint plus a margin that keeps towers near the
// path edge on screen.
func boundsFor(points []model.Point) fieldBounds {
	if len(points) == 0 {
		return fieldBounds{maxX: 100, maxY: 100}
	}

	b := fieldBounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}

	const margin = 40
	b.minX -= margin
	b.minY -= margin
	b.maxX += margin
	b.maxY += margin
	return b
}

// project maps a world point to a cell below the HUD. ok is false when the
// point falls outside the screen.
func (b fieldBounds) project(p model.Point, w, h int) (int, int, bool) {
	fw := float64(w - 1)
	fh := float64(h - 1 - hudRows)
	if fw <= 0 || fh <= 0 {
		return 0, 0, false
	}

	spanX := b.maxX - b.minX
	if spanX <= 0 {
		spanX = 1
	}
	spanY := b.maxY - b.minY
	if spanY <= 0 {
		spanY = 1
	}

	x := int((p.X - b.minX) / spanX * fw)
	y := hudRows + int((p.Y-b.minY)/spanY*fh)
	if x < 0 || x >= w || y < hudRows || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
