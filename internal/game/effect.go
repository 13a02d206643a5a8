package game

import "fmt"

// Effect 一次可逆的棋盘改动。每个变体携带恰好足够撤销自身的信息，
// 撤销是对记录的逆向重放，从不重新计算。
type Effect interface {
	// revert 把 s 恢复到该效果施加之前；记录与棋盘不一致时 panic
	revert(s *Session)
	// TurnEnding 是否结束本回合
	TurnEnding() bool
}

// PlaceEffect 落子（普通棋子或召唤出的皇后）
type PlaceEffect struct {
	Side    Side
	At      Coord
	Value   CellState
	Damage  int // 连线伤害
	HPLost  int // 对手实际扣除的血量（受 0 下限约束）
	Removed []CellChange
}

// MoveEffect 移动棋子：挪移技能（奖励行动）或皇后走子（结束回合）
type MoveEffect struct {
	Side     Side
	From, To Coord
	Moved    CellState
	Captured CellState
	Damage   int
	HPLost   int
	Removed  []CellChange
	EndsTurn bool
}

// RemoveEffect 强制移除单个棋子，不造成伤害
type RemoveEffect struct {
	At   Coord
	Prev CellState
}

// AreaClearEffect 3×3 爆破或全盘清除
type AreaClearEffect struct {
	Removed []CellChange
}

// ColorFlipEffect 全盘黑白反转
type ColorFlipEffect struct {
	Changed []CellChange
}

// SummonEffect 标记下一次普通落子改为放置皇后
type SummonEffect struct{}

func (e *PlaceEffect) TurnEnding() bool     { return true }
func (e *MoveEffect) TurnEnding() bool      { return e.EndsTurn }
func (e *RemoveEffect) TurnEnding() bool    { return false }
func (e *AreaClearEffect) TurnEnding() bool { return false }
func (e *ColorFlipEffect) TurnEnding() bool { return false }
func (e *SummonEffect) TurnEnding() bool    { return false }

func (e *PlaceEffect) revert(s *Session) {
	restoreCells(s.board, e.Removed)
	if got := s.board.Get(e.At.Row, e.At.Col); got != e.Value {
		panic(fmt.Sprintf("game: place record %v expects %v, board has %v", e.At, e.Value, got))
	}
	s.board.set(e.At.Row, e.At.Col, Empty)
	s.heal(e.Side.Opponent(), e.HPLost)
	if e.Value == Queen {
		s.summonPending = true
	}
}

func (e *MoveEffect) revert(s *Session) {
	restoreCells(s.board, e.Removed)
	if got := s.board.Get(e.To.Row, e.To.Col); got != e.Moved {
		panic(fmt.Sprintf("game: move record %v expects %v, board has %v", e.To, e.Moved, got))
	}
	if got := s.board.Get(e.From.Row, e.From.Col); got != Empty {
		panic(fmt.Sprintf("game: move record source %v not empty (%v)", e.From, got))
	}
	s.board.set(e.To.Row, e.To.Col, e.Captured)
	s.board.set(e.From.Row, e.From.Col, e.Moved)
	s.heal(e.Side.Opponent(), e.HPLost)
}

func (e *RemoveEffect) revert(s *Session) {
	restoreCells(s.board, []CellChange{{At: e.At, Prev: e.Prev, Next: Empty}})
}

func (e *AreaClearEffect) revert(s *Session) {
	restoreCells(s.board, e.Removed)
}

func (e *ColorFlipEffect) revert(s *Session) {
	restoreCells(s.board, e.Changed)
}

func (e *SummonEffect) revert(s *Session) {
	s.summonPending = false
}
