// File ui/input.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/assets"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
)

type buttonKind int

const (
	btnSkill buttonKind = iota
	btnDifficulty
	btnRestart
)

// button 右侧面板上的一个矩形按钮
type button struct {
	x, y, w, h float32
	kind       buttonKind
	skill      game.SkillID
	difficulty game.Difficulty
	label      string
}

func (b button) contains(x, y float32) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

const (
	panelX     = 610
	panelW     = 280
	diffRowY   = 190
	skillRowY  = 240
	skillRowH  = 36
	skillGap   = 8
	restartRow = 590
)

// layoutButtons 难度三个、技能每行一个（经典模式没有）、底部重开
func layoutButtons(v game.Variant) []button {
	var out []button
	diffW := float32(panelW-2*skillGap) / 3
	for i, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		out = append(out, button{
			x: panelX + float32(i)*(diffW+skillGap), y: diffRowY, w: diffW, h: 32,
			kind: btnDifficulty, difficulty: d, label: d.String(),
		})
	}
	if v == game.Skill {
		for i, id := range game.AllSkills {
			out = append(out, button{
				x: panelX, y: skillRowY + float32(i)*(skillRowH+skillGap), w: panelW, h: skillRowH,
				kind: btnSkill, skill: id, label: id.String(),
			})
		}
	}
	out = append(out, button{x: panelX, y: restartRow, w: panelW, h: 40, kind: btnRestart, label: "Restart"})
	return out
}

// cellAt 把像素坐标吸附到最近的交叉点；离交叉点超过半格视为棋盘外
func cellAt(x, y float64) (game.Coord, bool) {
	col := int(math.Round((x - boardOriginX) / cellSize))
	row := int(math.Round((y - boardOriginY) / cellSize))
	if !game.InBounds(row, col) {
		return game.Coord{}, false
	}
	return game.Coord{Row: row, Col: col}, true
}

var skillKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

// handleInput 处理鼠标点击与快捷键，并播放对应音效
func (gs *GameScreen) handleInput() {
	mx, my := ebiten.CursorPosition()
	if c, ok := cellAt(float64(mx), float64(my)); ok {
		gs.hover = &c
	} else {
		gs.hover = nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		gs.restart()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		gs.session.SetDifficulty(game.Easy)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		gs.session.SetDifficulty(game.Medium)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		gs.session.SetDifficulty(game.Hard)
	}
	if gs.session.Config().Variant == game.Skill {
		for i, k := range skillKeys {
			if inpututil.IsKeyJustPressed(k) {
				gs.do(func(s *game.Session) game.Status { return s.ArmSkill(game.AllSkills[i]) })
				return
			}
		}
	}

	// 只在鼠标左键刚按下时响应
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	fx, fy := float32(mx), float32(my)
	for _, b := range gs.buttons {
		if !b.contains(fx, fy) {
			continue
		}
		switch b.kind {
		case btnRestart:
			gs.restart()
		case btnDifficulty:
			gs.session.SetDifficulty(b.difficulty)
			gs.audioManager.Play(assets.SoundSelect)
		case btnSkill:
			gs.do(func(s *game.Session) game.Status { return s.ArmSkill(b.skill) })
		}
		return
	}
	if gs.hover == nil {
		return
	}
	at := *gs.hover
	gs.do(func(s *game.Session) game.Status { return s.CellClicked(at.Row, at.Col) })
}

// do 执行一次玩家意图，并据前后快照触发动画与音效
func (gs *GameScreen) do(intent func(*game.Session) game.Status) {
	before := gs.session.Snapshot()
	st := intent(gs.session)
	gs.react(before, gs.session.Snapshot(), st, assets.SoundPlace)
}

func (gs *GameScreen) restart() {
	gs.session.Restart()
	gs.pulses = nil
	gs.aiDelayUntil = time.Time{}
	gs.audioManager.Play(assets.SoundSelect)
}

// soundForStatus 按结果提示语挑选音效；空串表示不出声
func soundForStatus(st game.Status) string {
	switch st {
	case game.StatusPlayerWins, game.StatusAiWins, game.StatusDraw:
		return assets.SoundGameOver
	case game.StatusAiThinking, game.StatusPlayerTurn:
		return assets.SoundPlace
	case game.StatusGameOver, game.StatusNotYourTurn, game.StatusOutOfBounds,
		game.StatusOccupied, game.StatusSkillsDisabled, game.StatusSkillUnavailable,
		game.StatusRelocateBadSource, game.StatusRelocateBadDest, game.StatusRemoveBadTarget,
		game.StatusAreaEmpty, game.StatusIllegalQueenPath:
		return assets.SoundInvalid
	case game.StatusRewound:
		return assets.SoundRewind
	case game.StatusRelocatePickSource, game.StatusRelocatePickDest, game.StatusRemovePickTarget,
		game.StatusAreaPickCenter, game.StatusQueenSelected, game.StatusQueenReleased,
		game.StatusSkillCancelled:
		return assets.SoundSelect
	}
	return assets.SoundSkill
}
