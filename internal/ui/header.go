package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
)

type headerUI struct{}

func newHeaderUI() *headerUI { return &headerUI{} }

var (
	colWhite    = color.White
	colDim      = color.RGBA{0x8a, 0x8f, 0x98, 0xff}
	colBtn      = color.RGBA{0x33, 0x36, 0x3d, 0xff}
	colBtnOff   = color.RGBA{0x2a, 0x2b, 0x2f, 0xff}
	colBtnArmed = color.RGBA{0x1f, 0x6f, 0x4a, 0xff}
	colHPBack   = color.RGBA{0x44, 0x22, 0x22, 0xff}
	colHPFill   = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
)

func (h *headerUI) draw(screen *ebiten.Image, snap *game.Snapshot) {
	// 第一行：对局信息
	x, y := 20, 28
	state := "ON GOING"
	if snap.GameOver {
		state = "OVER"
	}
	strs := []string{
		fmt.Sprintf("Mode | %s", snap.Variant),
		fmt.Sprintf("AI | %s", snap.Difficulty),
		fmt.Sprintf("Turn | %d", snap.TurnIndex),
		fmt.Sprintf("State | %s", state),
		fmt.Sprintf("Game | %s", snap.ID[:8]),
	}
	for _, s := range strs {
		text.Draw(screen, s, basicfont.Face7x13, x, y, colWhite)
		x += len(s)*7 + 30
	}

	// 第二行：提示语
	text.Draw(screen, snap.Message, basicfont.Face7x13, 20, 56, color.RGBA{0xf1, 0xc4, 0x0f, 0xff})
	if snap.SummonPending {
		text.Draw(screen, "Queen ready", basicfont.Face7x13, 460, 56, colQueen)
	}

	// 右侧：血量（经典模式不显示）
	if snap.Variant == game.Skill {
		h.drawHP(screen, "Player", snap.HP[game.Player], snap.MaxHP, 100)
		h.drawHP(screen, "Ai", snap.HP[game.Ai], snap.MaxHP, 140)
	}
	text.Draw(screen, "Difficulty  [E/M/H]", basicfont.Face7x13, panelX, diffRowY-8, colDim)
	if snap.Variant == game.Skill {
		text.Draw(screen, "Skills  [1-7]", basicfont.Face7x13, panelX, skillRowY-8, colDim)
	}
}

func (h *headerUI) drawHP(screen *ebiten.Image, who string, hp, maxHP int, y int) {
	label := fmt.Sprintf("%-6s %d/%d", who, hp, maxHP)
	text.Draw(screen, label, basicfont.Face7x13, panelX, y+12, colWhite)
	const barX, barW, barH = panelX + 100, panelW - 100, 14
	vector.DrawFilledRect(screen, barX, float32(y), barW, barH, colHPBack, false)
	if maxHP > 0 && hp > 0 {
		vector.DrawFilledRect(screen, barX, float32(y), barW*float32(hp)/float32(maxHP), barH, colHPFill, false)
	}
}

// drawButtons 难度按钮高亮当前难度；技能按钮按可用/待命着色，并显示次数与冷却
func drawButtons(screen *ebiten.Image, buttons []button, snap *game.Snapshot) {
	views := make(map[game.SkillID]game.SkillView, len(snap.Skills))
	for _, v := range snap.Skills {
		views[v.ID] = v
	}
	for _, b := range buttons {
		bg := colBtn
		label := b.label
		switch b.kind {
		case btnDifficulty:
			if b.difficulty == snap.Difficulty {
				bg = colBtnArmed
			}
		case btnSkill:
			v := views[b.skill]
			label = fmt.Sprintf("%d %-10s %s", skillIndex(b.skill), v.Name, skillUsage(v))
			switch {
			case v.Armed:
				bg = colBtnArmed
			case !v.Available:
				bg = colBtnOff
			}
		}
		vector.DrawFilledRect(screen, b.x, b.y, b.w, b.h, bg, false)
		var clr color.Color = colWhite
		if b.kind == btnSkill && !views[b.skill].Available && !views[b.skill].Armed {
			clr = colDim
		}
		text.Draw(screen, label, basicfont.Face7x13, int(b.x)+10, int(b.y+b.h/2)+4, clr)
	}
}

func skillIndex(id game.SkillID) int {
	for i, s := range game.AllSkills {
		if s == id {
			return i + 1
		}
	}
	return 0
}

// skillUsage 形如 "2/3" 或 "inf"，冷却中追加 "cd N"
func skillUsage(v game.SkillView) string {
	uses := fmt.Sprintf("%d/%d", v.UsesLeft, v.MaxUses)
	if v.Unlimited {
		uses = "inf"
	}
	if v.CooldownRemaining > 0 {
		return fmt.Sprintf("%s  cd %d", uses, v.CooldownRemaining)
	}
	return uses
}
