package game

import (
	"fmt"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
)

// IsSkillAvailable 技能当前能否发动
func (s *Session) IsSkillAvailable(id SkillID) bool {
	st, ok := s.skills[id]
	if !ok || s.cfg.Variant != Skill {
		return false
	}
	if s.gameOver {
		if id != SkillTimeRewind {
			return false
		}
	} else if s.aiPending || s.turn != Player {
		return false
	}
	if !st.ready(s.turnIndex) {
		return false
	}
	switch id {
	case SkillSummonQueen:
		_, hasQueen := s.board.FindQueen()
		return !hasQueen && !s.summonPending
	case SkillTimeRewind:
		return s.turnIndex >= 2
	case SkillClearAll:
		return !s.board.IsEmpty()
	}
	return true
}

// ArmSkill 按下技能按钮：再次按下同一技能取消；无目标技能立即生效
func (s *Session) ArmSkill(id SkillID) Status {
	if err := s.armSkill(id); err != nil {
		return s.fail(err)
	}
	return s.status
}

func (s *Session) armSkill(id SkillID) error {
	spec, ok := skillSpecs[id]
	if !ok {
		return fmt.Errorf("skill %d: %w", id, ErrSkillUnavailable)
	}
	if s.cfg.Variant != Skill {
		return ErrSkillsDisabled
	}
	if id != SkillTimeRewind || !s.gameOver {
		if err := s.requirePlayerTurn(); err != nil {
			return err
		}
	}
	if s.armed == id {
		s.clearSelection()
		s.status = StatusSkillCancelled
		return nil
	}
	if !s.IsSkillAvailable(id) {
		return fmt.Errorf("%s: %w", spec.name, ErrSkillUnavailable)
	}
	s.clearSelection()
	if spec.needsTarget {
		s.armed = id
		s.status = spec.prompt
		return nil
	}
	switch id {
	case SkillClearAll:
		s.clearAll()
	case SkillColorFlip:
		s.colorFlip()
	case SkillSummonQueen:
		s.summonQueen()
	case SkillTimeRewind:
		s.rewind()
	}
	s.status = spec.prompt
	return nil
}

// bonusAction 技能改动入账后：不推进回合，但可能因伤害直接终局
func (s *Session) bonusAction(e Effect, id SkillID) {
	s.commit(e, id)
	s.clearSelection()
	s.status = skillSpecs[id].prompt
	logging.Debugf("[%s] skill %s at turn %d", s.tag(), id, s.turnIndex)
	s.checkTerminal()
}

// ------------------------------------------------------------
// 需要目标的技能
// ------------------------------------------------------------

// relocateClick 两次点击：先选己方普通棋子，再选上下左右相邻的空格
func (s *Session) relocateClick(at Coord) error {
	v := s.board.Get(at.Row, at.Col)
	if s.relocateFrom == nil {
		if v != PlayerStone {
			return fmt.Errorf("relocate source %v: %w", at, ErrBadSource)
		}
		s.relocateFrom = &at
		s.status = StatusRelocatePickDest
		return nil
	}
	from := *s.relocateFrom
	switch {
	case at == from:
		s.relocateFrom = nil
		s.status = StatusRelocatePickSource
		return nil
	case v == PlayerStone:
		s.relocateFrom = &at
		s.status = StatusRelocatePickDest
		return nil
	case v != Empty || abs(at.Row-from.Row)+abs(at.Col-from.Col) != 1:
		return fmt.Errorf("relocate %v->%v: %w", from, at, ErrBadDestination)
	}
	e := s.applyMove(Player, from, at, false)
	s.bonusAction(e, SkillRelocate)
	if !s.gameOver {
		s.status = StatusRelocated
	}
	return nil
}

// removeAt 移除一颗 AI 棋子，不造成伤害
func (s *Session) removeAt(at Coord) error {
	prev := s.board.Get(at.Row, at.Col)
	if !Ai.Owns(prev) {
		return fmt.Errorf("remove %v: %w", at, ErrInvalidTarget)
	}
	s.board.set(at.Row, at.Col, Empty)
	s.bonusAction(&RemoveEffect{At: at, Prev: prev}, SkillRemove)
	s.status = StatusRemoved
	return nil
}

// areaClearAt 清空以 at 为中心的 3×3（边缘裁剪），不分敌我
func (s *Session) areaClearAt(at Coord) error {
	var removed []CellChange
	for r := at.Row - 1; r <= at.Row+1; r++ {
		for c := at.Col - 1; c <= at.Col+1; c++ {
			if !InBounds(r, c) || s.board.cells[r][c] == Empty {
				continue
			}
			removed = append(removed, CellChange{At: Coord{r, c}, Prev: s.board.cells[r][c], Next: Empty})
			s.board.set(r, c, Empty)
		}
	}
	if len(removed) == 0 {
		return fmt.Errorf("blast %v: %w", at, ErrNothingToClear)
	}
	s.bonusAction(&AreaClearEffect{Removed: removed}, SkillAreaClear)
	s.status = StatusAreaCleared
	return nil
}

// ------------------------------------------------------------
// 无目标技能
// ------------------------------------------------------------

func (s *Session) clearAll() {
	var removed []CellChange
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if v := s.board.cells[r][c]; v != Empty {
				removed = append(removed, CellChange{At: Coord{r, c}, Prev: v, Next: Empty})
				s.board.set(r, c, Empty)
			}
		}
	}
	s.bonusAction(&AreaClearEffect{Removed: removed}, SkillClearAll)
}

// colorFlip 所有棋子归属互换；皇后变成 AI 普通棋子
func (s *Session) colorFlip() {
	var changed []CellChange
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			v := s.board.cells[r][c]
			var next CellState
			switch v {
			case Empty:
				continue
			case PlayerStone, Queen:
				next = AiStone
			case AiStone:
				next = PlayerStone
			}
			changed = append(changed, CellChange{At: Coord{r, c}, Prev: v, Next: next})
			s.board.set(r, c, next)
		}
	}
	s.bonusAction(&ColorFlipEffect{Changed: changed}, SkillColorFlip)
}

func (s *Session) summonQueen() {
	s.summonPending = true
	s.bonusAction(&SummonEffect{}, SkillSummonQueen)
}

// rewindTarget 回退两个回合，并向下取整到玩家回合（偶数序号）
func (s *Session) rewindTarget() int {
	target := s.turnIndex - 2
	if target%2 != 0 {
		target--
	}
	return max(target, 0)
}

// rewind 弹出并逆向重放目标回合之后的全部记录，然后按剩余账本重建技能状态
func (s *Session) rewind() {
	target := s.rewindTarget()
	undone := 0
	for {
		last, ok := s.ledger.Last()
		if !ok || last.Turn < target {
			break
		}
		s.ledger.Pop()
		last.Effect.revert(s)
		undone++
	}
	s.turnIndex = target
	replaySkills(s.skills, s.ledger.All())
	s.skills[SkillTimeRewind].consume(target)

	s.gameOver = false
	s.outcome = OutcomeNone
	s.turn = Player
	s.aiPending = false
	s.clearSelection()
	logging.Debugf("[%s] rewind to turn %d (%d records undone)", s.tag(), target, undone)
}

// ------------------------------------------------------------
// 皇后走子
// ------------------------------------------------------------

// queenMove 直线或斜线任意距离，途经格必须为空；落点为空或 AI 棋子（吃掉）。结束回合。
func (s *Session) queenMove(to Coord) error {
	from, ok := s.board.FindQueen()
	if !ok {
		s.queenSelected = false
		return fmt.Errorf("queen move: %w", ErrIllegalQueenPath)
	}
	if to == from {
		s.queenSelected = false
		s.status = StatusQueenReleased
		return nil
	}
	if !queenPathClear(s.board, from, to) {
		return fmt.Errorf("queen %v->%v: %w", from, to, ErrIllegalQueenPath)
	}
	e := s.applyMove(Player, from, to, true)
	s.commit(e, SkillNone)
	logging.Debugf("[%s] queen %v->%v captured=%v dmg=%d", s.tag(), from, to, e.Captured, e.Damage)
	s.endTurn(Player, false)
	return nil
}

func queenPathClear(b *Board, from, to Coord) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}
	if dest := b.Get(to.Row, to.Col); dest != Empty && dest != AiStone {
		return false
	}
	stepR, stepC := sign(dr), sign(dc)
	for r, c := from.Row+stepR, from.Col+stepC; r != to.Row || c != to.Col; r, c = r+stepR, c+stepC {
		if b.cells[r][c] != Empty {
			return false
		}
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
