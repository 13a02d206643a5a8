// File /ui/screen.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/assets"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
)

const (
	// 窗口尺寸
	WindowWidth  = 920
	WindowHeight = 660

	// 棋盘：左上角交叉点与格距
	boardOriginX = 50
	boardOriginY = 100
	cellSize     = 36
)

// DefaultAIDelay AI 落子前的默认延时
const DefaultAIDelay = 250 * time.Millisecond

// Options 桌面壳的可调参数
type Options struct {
	// AIDelay AI 落子前的“思考”延时
	AIDelay time.Duration
}

// GameScreen 实现 ebiten.Game 接口，管理游戏主循环和渲染
type GameScreen struct {
	session      *game.Session
	opts         Options
	audioManager *assets.AudioManager // 可以为 nil（静音）
	header       *headerUI
	buttons      []button
	aiDelayUntil time.Time
	pulses       []*pulse // 正在播放的格子动画
	hover        *game.Coord
}

// NewGameScreen 构造并初始化游戏界面。audioManager 为 nil 时不播放音效。
func NewGameScreen(s *game.Session, am *assets.AudioManager, opts Options) *GameScreen {
	gs := &GameScreen{
		session:      s,
		opts:         opts,
		audioManager: am,
		header:       newHeaderUI(),
	}
	gs.buttons = layoutButtons(s.Config().Variant)
	return gs
}

// Update 每帧更新：先处理输入，再在延时结束后让 AI 落子
func (gs *GameScreen) Update() error {
	gs.audioManager.Update()
	gs.prunePulses(time.Now())
	gs.handleInput()

	if !gs.session.AiPending() {
		gs.aiDelayUntil = time.Time{}
		return nil
	}
	// AI 回合：延时未到先什么都不做
	now := time.Now()
	if gs.aiDelayUntil.IsZero() {
		gs.aiDelayUntil = now.Add(gs.opts.AIDelay)
		return nil
	}
	if now.Before(gs.aiDelayUntil) {
		return nil
	}
	gs.aiDelayUntil = time.Time{}

	before := gs.session.Snapshot()
	st := gs.session.RunAITurn()
	after := gs.session.Snapshot()
	gs.react(before, after, st, assets.SoundAiPlace)
	logging.Debugf("ai turn done: %s", st)
	return nil
}

// react 对比前后快照：为改动的格子加动画，并挑选音效
func (gs *GameScreen) react(before, after game.Snapshot, st game.Status, placeSound string) {
	now := time.Now()
	changes := diffCells(before.Cells, after.Cells)
	for _, ch := range changes {
		gs.pulses = append(gs.pulses, newPulse(ch, now))
	}

	var seq []string
	if key := soundForStatus(st); key != "" {
		if key == assets.SoundPlace {
			key = placeSound
			if len(changes) == 0 {
				key = assets.SoundInvalid
			}
		}
		seq = append(seq, key)
	}
	if after.HP[game.Player] < before.HP[game.Player] || after.HP[game.Ai] < before.HP[game.Ai] {
		seq = append(seq, assets.SoundHit)
	}
	if after.GameOver && !before.GameOver && (len(seq) == 0 || seq[0] != assets.SoundGameOver) {
		seq = append(seq, assets.SoundGameOver)
	}
	if len(seq) > 0 {
		gs.audioManager.PlaySequential(seq...)
	}
}

// Draw 每帧渲染：背景 → 棋盘 → 动画 → 面板
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x22, 0x24, 0x28, 0xff})

	snap := gs.session.Snapshot()
	drawBoard(screen, &snap, gs.hover)
	gs.drawPulses(screen, time.Now())
	gs.header.draw(screen, &snap)
	drawButtons(screen, gs.buttons, &snap)
}

// Layout 定义逻辑分辨率，窗口缩放由 ebiten 负责
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
