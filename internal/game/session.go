package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
)

// Outcome 终局结果
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomeAiWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "player"
	case OutcomeAiWin:
		return "ai"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

// Session 一局游戏的全部状态：棋盘、账本、技能、血量、回合与选中状态。
// 只有 Session 知道轮到谁、是否终局；所有意图都经由它分派。
type Session struct {
	ID  uuid.UUID
	cfg Config

	board     *Board
	ledger    Ledger
	skills    map[SkillID]*SkillState
	hp        [2]int
	turn      Side
	turnIndex int
	gameOver  bool
	outcome   Outcome
	status    Status

	// 交互选中状态：决定下一次点击落到哪种改动上
	armed         SkillID
	relocateFrom  *Coord
	queenSelected bool
	summonPending bool
	aiPending     bool

	searcher *Searcher
}

// NewSession 创建并初始化一局新游戏，玩家先手
func NewSession(cfg Config) *Session {
	s := &Session{cfg: cfg.normalized()}
	s.searcher = NewSearcher(s.cfg.Variant, s.cfg.SearchDepth, s.cfg.Seed)
	s.reset()
	return s
}

func (s *Session) reset() {
	s.ID = uuid.New()
	s.board = NewBoard()
	s.ledger.Clear()
	s.skills = newSkillStates()
	s.hp = [2]int{s.cfg.MaxHP, s.cfg.MaxHP}
	s.turn = Player
	s.turnIndex = 0
	s.gameOver = false
	s.outcome = OutcomeNone
	s.status = StatusPlayerTurn
	s.clearSelection()
	s.summonPending = false
	s.aiPending = false
	logging.Debugf("[%s] new game variant=%s difficulty=%s hp=%d",
		s.tag(), s.cfg.Variant, s.cfg.Difficulty, s.cfg.MaxHP)
}

// Restart 重开一局，保留配置
func (s *Session) Restart() Status {
	s.reset()
	return s.status
}

// SetDifficulty 切换 AI 难度，下一手生效
func (s *Session) SetDifficulty(d Difficulty) {
	s.cfg.Difficulty = d
}

func (s *Session) Config() Config { return s.cfg }

func (s *Session) tag() string { return s.ID.String()[:8] }

func (s *Session) clearSelection() {
	s.armed = SkillNone
	s.relocateFrom = nil
	s.queenSelected = false
}

// fail 把错误转成提示语，状态保持不变
func (s *Session) fail(err error) Status {
	s.status = statusFor(err)
	logging.Debugf("[%s] rejected: %v", s.tag(), err)
	return s.status
}

func (s *Session) requirePlayerTurn() error {
	switch {
	case s.gameOver:
		return ErrGameOver
	case s.aiPending:
		return ErrAiThinking
	case s.turn != Player:
		return ErrNotYourTurn
	}
	return nil
}

// ------------------------------------------------------------
// 入站意图
// ------------------------------------------------------------

// PlaceAt 玩家普通落子（召唤待生效时放置皇后），结束本回合
func (s *Session) PlaceAt(row, col int) Status {
	if err := s.placeStone(row, col); err != nil {
		return s.fail(err)
	}
	return s.status
}

// CellClicked 按当前选中状态路由一次棋盘点击
func (s *Session) CellClicked(row, col int) Status {
	if err := s.requirePlayerTurn(); err != nil {
		return s.fail(err)
	}
	if !InBounds(row, col) {
		return s.fail(ErrOutOfBounds)
	}
	var err error
	switch s.armed {
	case SkillRelocate:
		err = s.relocateClick(Coord{row, col})
	case SkillRemove:
		err = s.removeAt(Coord{row, col})
	case SkillAreaClear:
		err = s.areaClearAt(Coord{row, col})
	default:
		switch {
		case s.queenSelected:
			err = s.queenMove(Coord{row, col})
		case s.board.Get(row, col) == Queen:
			s.queenSelected = true
			s.status = StatusQueenSelected
		default:
			err = s.placeStone(row, col)
		}
	}
	if err != nil {
		return s.fail(err)
	}
	return s.status
}

// RunAITurn 轮到 AI 时计算并落下一手。调度（思考延时）由调用方负责。
func (s *Session) RunAITurn() Status {
	return s.RunTurn(Ai, s.cfg.Difficulty)
}

// RunTurn 由搜索器以难度 d 替 side 走完一个回合（只落子，不用技能），
// 伤害、终局与换手和玩家落子走同一套结算。不是 side 的回合时什么都不做。
// 无界面对弈让双方都走这里。
func (s *Session) RunTurn(side Side, d Difficulty) Status {
	if s.gameOver || s.turn != side {
		return s.status
	}
	s.aiPending = false
	mv, ok := s.searcher.Choose(s.board, side, d)
	if !ok {
		s.finish(OutcomeDraw)
		return s.status
	}
	e, won := s.applyPlacement(side, mv, side.Stone())
	s.commit(e, SkillNone)
	logging.Debugf("[%s] %s %s at %v dmg=%d", s.tag(), side, d, mv, e.Damage)
	s.endTurn(side, won)
	return s.status
}

// ------------------------------------------------------------
// 落子 / 移动 / 结算
// ------------------------------------------------------------

func (s *Session) placeStone(row, col int) error {
	if err := s.requirePlayerTurn(); err != nil {
		return err
	}
	if !InBounds(row, col) {
		return fmt.Errorf("place %v: %w", Coord{row, col}, ErrOutOfBounds)
	}
	if s.board.Get(row, col) != Empty {
		return fmt.Errorf("place %v: %w", Coord{row, col}, ErrOccupied)
	}
	v := PlayerStone
	if s.summonPending {
		v = Queen
		s.summonPending = false
	}
	e, won := s.applyPlacement(Player, Coord{row, col}, v)
	s.commit(e, SkillNone)
	logging.Debugf("[%s] player %v at %v dmg=%d", s.tag(), v, e.At, e.Damage)
	s.endTurn(Player, won)
	return nil
}

// applyPlacement 落子并结算连线。经典模式返回是否成五；技能模式转为对手扣血。
func (s *Session) applyPlacement(side Side, at Coord, v CellState) (*PlaceEffect, bool) {
	s.board.set(at.Row, at.Col, v)
	e := &PlaceEffect{Side: side, At: at, Value: v}
	if s.cfg.Variant == Classic {
		return e, IsWinningMove(s.board, at.Row, at.Col, side)
	}
	dmg := ApplyLineDamage(s.board, at.Row, at.Col, side)
	e.Damage = dmg.Dealt
	e.Removed = dmg.Removed
	e.HPLost = s.hit(side.Opponent(), dmg.Dealt)
	return e, false
}

// applyMove 把 from 的棋子移到 to（to 上原有的棋子被吃掉），并在落点结算连线
func (s *Session) applyMove(side Side, from, to Coord, endsTurn bool) *MoveEffect {
	e := &MoveEffect{
		Side:     side,
		From:     from,
		To:       to,
		Moved:    s.board.Get(from.Row, from.Col),
		Captured: s.board.Get(to.Row, to.Col),
		EndsTurn: endsTurn,
	}
	s.board.set(from.Row, from.Col, Empty)
	s.board.set(to.Row, to.Col, e.Moved)
	dmg := ApplyLineDamage(s.board, to.Row, to.Col, side)
	e.Damage = dmg.Dealt
	e.Removed = dmg.Removed
	e.HPLost = s.hit(side.Opponent(), dmg.Dealt)
	return e
}

// hit 扣血，不低于 0，返回实际扣除量
func (s *Session) hit(victim Side, dmg int) int {
	lost := min(dmg, s.hp[victim])
	s.hp[victim] -= lost
	return lost
}

// heal 撤销时回血，不超过上限
func (s *Session) heal(victim Side, amount int) {
	s.hp[victim] = min(s.hp[victim]+amount, s.cfg.MaxHP)
}

// commit 记账：技能扣次数/记冷却，结束回合的动作推进回合序号
func (s *Session) commit(e Effect, skill SkillID) {
	s.ledger.Push(LedgerEntry{Effect: e, Skill: skill, Turn: s.turnIndex})
	if skill != SkillNone {
		s.skills[skill].consume(s.turnIndex)
	}
	if e.TurnEnding() {
		s.turnIndex++
	}
}

// endTurn 结束 side 的回合：判定终局，否则交换行棋方
func (s *Session) endTurn(side Side, won bool) {
	s.clearSelection()
	if won {
		if side == Player {
			s.finish(OutcomePlayerWin)
		} else {
			s.finish(OutcomeAiWin)
		}
		return
	}
	if s.checkTerminal() {
		return
	}
	s.turn = side.Opponent()
	if s.turn == Ai {
		s.aiPending = true
		s.status = StatusAiThinking
	} else {
		s.status = StatusPlayerTurn
	}
}

// checkTerminal 任一方血量归零即终局
func (s *Session) checkTerminal() bool {
	switch {
	case s.hp[Ai] <= 0:
		s.finish(OutcomePlayerWin)
	case s.hp[Player] <= 0:
		s.finish(OutcomeAiWin)
	}
	return s.gameOver
}

func (s *Session) finish(o Outcome) {
	s.gameOver = true
	s.outcome = o
	s.aiPending = false
	s.clearSelection()
	switch o {
	case OutcomePlayerWin:
		s.status = StatusPlayerWins
	case OutcomeAiWin:
		s.status = StatusAiWins
	default:
		s.status = StatusDraw
	}
	logging.Debugf("[%s] game over: %s at turn %d", s.tag(), o, s.turnIndex)
}

// ------------------------------------------------------------
// 出站查询
// ------------------------------------------------------------

// SkillView 单个技能在 UI 上的展示状态
type SkillView struct {
	ID                SkillID
	Name              string
	UsesLeft          int
	MaxUses           int
	Unlimited         bool
	CooldownRemaining int
	Available         bool
	Armed             bool
}

// Snapshot 一次完整的可观测状态（值拷贝）
type Snapshot struct {
	ID             string
	Variant        Variant
	Difficulty     Difficulty
	Cells          [BoardSize][BoardSize]CellState
	HP             [2]int
	MaxHP          int
	Turn           Side
	TurnIndex      int
	GameOver       bool
	Outcome        Outcome
	Status         Status
	Message        string
	Skills         []SkillView
	SummonPending  bool
	QueenSelected  bool
	RelocateSource *Coord
	AiPending      bool
	LedgerLen      int
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:            s.ID.String(),
		Variant:       s.cfg.Variant,
		Difficulty:    s.cfg.Difficulty,
		Cells:         s.board.Cells(),
		HP:            s.hp,
		MaxHP:         s.cfg.MaxHP,
		Turn:          s.turn,
		TurnIndex:     s.turnIndex,
		GameOver:      s.gameOver,
		Outcome:       s.outcome,
		Status:        s.status,
		Message:       s.status.String(),
		SummonPending: s.summonPending,
		QueenSelected: s.queenSelected,
		AiPending:     s.aiPending,
		LedgerLen:     s.ledger.Len(),
	}
	if s.relocateFrom != nil {
		src := *s.relocateFrom
		snap.RelocateSource = &src
	}
	if s.cfg.Variant == Skill {
		for _, id := range AllSkills {
			st := s.skills[id]
			snap.Skills = append(snap.Skills, SkillView{
				ID:                id,
				Name:              id.String(),
				UsesLeft:          st.UsesLeft,
				MaxUses:           st.MaxUses,
				Unlimited:         st.Unlimited(),
				CooldownRemaining: st.CooldownRemaining(s.turnIndex),
				Available:         s.IsSkillAvailable(id),
				Armed:             s.armed == id,
			})
		}
	}
	return snap
}

// AiPending AI 是否在等待落子（“思考中”）
func (s *Session) AiPending() bool { return s.aiPending }

func (s *Session) GameOver() bool { return s.gameOver }

func (s *Session) Outcome() Outcome { return s.outcome }

func (s *Session) Searcher() *Searcher { return s.searcher }
