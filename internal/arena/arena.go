// Package arena 让两个 AI 难度在无界面的情况下对弈，用于比较策略强弱。
package arena

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
)

// MaxMoves 单局步数上限，超过按和棋计
const MaxMoves = game.BoardSize * game.BoardSize

// Match 一局对弈的设置。A 执 Player 方先手，B 执 Ai 方。
type Match struct {
	Variant game.Variant
	A, B    game.Difficulty
	Depth   int
	MaxHP   int
	Opening int // 开局双方各随机落几手
}

// Result 一局的结果
type Result struct {
	ID       uuid.UUID
	Winner   game.Outcome
	Moves    int
	HP       [2]int
	Duration time.Duration
	// CacheHitRate 搜索器评估缓存命中率(%)
	CacheHitRate float64
}

// Play 下完一局。双方都通过 Session.RunTurn 落子，规则结算与人机对局完全一致；
// 开局的 Opening 手按 Easy（候选点随机）走。整局的随机性只由 seed 决定。
func Play(m Match, seed int64) Result {
	start := time.Now()
	s := game.NewSession(game.Config{
		Variant:     m.Variant,
		Difficulty:  m.B,
		MaxHP:       m.MaxHP,
		SearchDepth: m.Depth,
		Seed:        seed,
	})
	res := Result{ID: s.ID}
	diff := [2]game.Difficulty{m.A, m.B}

	for !s.GameOver() && res.Moves < MaxMoves {
		side := s.Snapshot().Turn
		d := diff[side]
		if res.Moves < 2*m.Opening {
			d = game.Easy
		}
		s.RunTurn(side, d)
		res.Moves++
	}

	res.Winner = game.OutcomeDraw
	if s.GameOver() {
		res.Winner = s.Outcome()
	}
	res.HP = s.Snapshot().HP
	res.Duration = time.Since(start)
	_, _, res.CacheHitRate = s.Searcher().CacheStats()
	logging.Debugf("[%s] %s %s vs %s: %s in %d moves", res.ID.String()[:8],
		m.Variant, m.A, m.B, res.Winner, res.Moves)
	return res
}

// Tally 累计多局结果
type Tally struct {
	Games, AWins, BWins, Draws int
	Moves                      int
}

func (t *Tally) Add(r Result) {
	t.Games++
	t.Moves += r.Moves
	switch r.Winner {
	case game.OutcomePlayerWin:
		t.AWins++
	case game.OutcomeAiWin:
		t.BWins++
	default:
		t.Draws++
	}
}

func (t Tally) String() string {
	avg := 0.0
	if t.Games > 0 {
		avg = float64(t.Moves) / float64(t.Games)
	}
	return fmt.Sprintf("games=%d A=%d B=%d draw=%d avgMoves=%.1f", t.Games, t.AWins, t.BWins, t.Draws, avg)
}
