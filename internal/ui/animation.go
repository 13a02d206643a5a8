// internal/ui/animation.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
)

const pulseDur = 450 * time.Millisecond // 动画时长

// pulse 一个格子发生变化后的扩散光圈
type pulse struct {
	change game.CellChange
	start  time.Time
}

func newPulse(ch game.CellChange, start time.Time) *pulse {
	return &pulse{change: ch, start: start}
}

// progress 0 → 1，超过 1 表示播放结束
func (p *pulse) progress(now time.Time) float64 {
	return float64(now.Sub(p.start)) / float64(pulseDur)
}

// diffCells 逐格比较两个局面，返回所有变化
func diffCells(before, after [game.BoardSize][game.BoardSize]game.CellState) []game.CellChange {
	var out []game.CellChange
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			if before[r][c] != after[r][c] {
				out = append(out, game.CellChange{
					At:   game.Coord{Row: r, Col: c},
					Prev: before[r][c],
					Next: after[r][c],
				})
			}
		}
	}
	return out
}

func (gs *GameScreen) prunePulses(now time.Time) {
	alive := gs.pulses[:0]
	for _, p := range gs.pulses {
		if p.progress(now) < 1 {
			alive = append(alive, p)
		}
	}
	gs.pulses = alive
}

// drawPulses 被移除的格子画红圈，新出现或变色的格子画金圈；半径放大、透明度衰减
func (gs *GameScreen) drawPulses(dst *ebiten.Image, now time.Time) {
	for _, p := range gs.pulses {
		t := p.progress(now)
		if t < 0 || t >= 1 {
			continue
		}
		clr := color.NRGBA{0xf1, 0xc4, 0x0f, uint8(255 * (1 - t))}
		if p.change.Next == game.Empty {
			clr = color.NRGBA{0xe7, 0x4c, 0x3c, uint8(255 * (1 - t))}
		}
		cx, cy := cellCenter(p.change.At.Row, p.change.At.Col)
		r := stoneRadius * float32(1+0.8*t)
		vector.StrokeCircle(dst, cx, cy, r, 3, clr, true)
	}
}
