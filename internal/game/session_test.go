package game

import "testing"

func findStone(s *Session, v CellState) (Coord, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if s.board.Get(r, c) == v {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

// playRound 玩家落子后让 AI 应一手
func playRound(t *testing.T, s *Session, row, col int) {
	t.Helper()
	if got := s.PlaceAt(row, col); got != StatusAiThinking {
		t.Fatalf("落子 (%d,%d) 后状态 %q", row, col, got)
	}
	if got := s.RunAITurn(); got != StatusPlayerTurn {
		t.Fatalf("AI 落子后状态 %q", got)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()
	snap := s.Snapshot()
	if snap.Turn != Player || snap.TurnIndex != 0 || snap.GameOver {
		t.Errorf("开局状态错误：%+v", snap)
	}
	if snap.HP != [2]int{3, 3} || snap.Status != StatusPlayerTurn {
		t.Errorf("开局血量或提示错误：%v %q", snap.HP, snap.Status)
	}
	if len(snap.Skills) != len(AllSkills) {
		t.Errorf("技能模式应展示全部 %d 个技能", len(AllSkills))
	}
}

func TestPlaceAndAiReply(t *testing.T) {
	s := newTestSession()
	playRound(t, s, 7, 7)
	if s.turnIndex != 2 || s.ledger.Len() != 2 {
		t.Errorf("一轮后 turnIndex=%d ledger=%d", s.turnIndex, s.ledger.Len())
	}
	if s.board.Count(PlayerStone) != 1 || s.board.Count(AiStone) != 1 {
		t.Errorf("棋盘上应各有一子")
	}
}

func TestOccupiedCellLeavesStateUnchanged(t *testing.T) {
	s := newTestSession()
	layStones(s, AiStone, Coord{7, 7})
	before := s.Snapshot()
	if got := s.CellClicked(7, 7); got != StatusOccupied {
		t.Fatalf("期望 %q，实际 %q", StatusOccupied, got)
	}
	after := s.Snapshot()
	if after.Cells != before.Cells || after.TurnIndex != before.TurnIndex || after.LedgerLen != before.LedgerLen {
		t.Errorf("非法落子不应改动状态")
	}
}

func TestOutOfBoundsClick(t *testing.T) {
	s := newTestSession()
	if got := s.CellClicked(-1, 3); got != StatusOutOfBounds {
		t.Errorf("期望 %q，实际 %q", StatusOutOfBounds, got)
	}
}

func TestPlayerCannotActDuringAiTurn(t *testing.T) {
	s := newTestSession()
	s.PlaceAt(7, 7)
	if got := s.PlaceAt(0, 0); got != StatusAiThinking {
		t.Errorf("AI 思考中落子应被拒绝，实际 %q", got)
	}
	if got := s.ArmSkill(SkillTimeRewind); got != StatusAiThinking {
		t.Errorf("AI 思考中倒流应被拒绝，实际 %q", got)
	}
	if s.board.Get(0, 0) != Empty {
		t.Errorf("被拒绝的落子不应生效")
	}
}

func TestAiLineDamagesPlayer(t *testing.T) {
	s := newTestSession()
	layStones(s, AiStone, Coord{3, 3}, Coord{3, 4}, Coord{3, 5}, Coord{3, 6})
	s.PlaceAt(14, 14)
	if got := s.RunAITurn(); got != StatusPlayerTurn {
		t.Fatalf("AI 落子后状态 %q", got)
	}
	if s.hp[Player] != 2 || s.hp[Ai] != 3 {
		t.Errorf("AI 成五后血量应为 [2 3]，实际 %v", s.hp)
	}
	if s.board.Count(AiStone) != 0 {
		t.Errorf("成五的棋子应被移除，剩余 %d", s.board.Count(AiStone))
	}
}

func TestPlayerWinsWhenAiHPReachesZero(t *testing.T) {
	s := newTestSession(func(c *Config) { c.MaxHP = 1 })
	layStones(s, PlayerStone, Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3})
	if got := s.PlaceAt(0, 4); got != StatusPlayerWins {
		t.Fatalf("期望 %q，实际 %q", StatusPlayerWins, got)
	}
	if !s.GameOver() || s.Outcome() != OutcomePlayerWin {
		t.Errorf("应当终局且玩家胜")
	}
	if got := s.PlaceAt(7, 7); got != StatusGameOver {
		t.Errorf("终局后落子应被拒绝，实际 %q", got)
	}
}

// ------------------------------------------------------------
// 技能
// ------------------------------------------------------------

func TestArmSameSkillTwiceCancels(t *testing.T) {
	s := newTestSession()
	if got := s.ArmSkill(SkillRemove); got != StatusRemovePickTarget {
		t.Fatalf("期望 %q，实际 %q", StatusRemovePickTarget, got)
	}
	if got := s.ArmSkill(SkillRemove); got != StatusSkillCancelled {
		t.Fatalf("期望 %q，实际 %q", StatusSkillCancelled, got)
	}
	if s.armed != SkillNone || s.skills[SkillRemove].UsesLeft != 2 {
		t.Errorf("取消不应消耗次数")
	}
}

func TestRemoveRejectsPlayerStone(t *testing.T) {
	s := newTestSession()
	layStones(s, PlayerStone, Coord{5, 5})
	s.ArmSkill(SkillRemove)
	if got := s.CellClicked(5, 5); got != StatusRemoveBadTarget {
		t.Fatalf("期望 %q，实际 %q", StatusRemoveBadTarget, got)
	}
	if s.armed != SkillRemove || s.board.Get(5, 5) != PlayerStone {
		t.Errorf("无效目标后技能应保持待命、棋盘不变")
	}
}

func TestAreaClearRejectsEmptyArea(t *testing.T) {
	s := newTestSession()
	layStones(s, AiStone, Coord{10, 10})
	s.ArmSkill(SkillAreaClear)
	if got := s.CellClicked(2, 2); got != StatusAreaEmpty {
		t.Fatalf("期望 %q，实际 %q", StatusAreaEmpty, got)
	}
	if s.skills[SkillAreaClear].UsesLeft != 1 {
		t.Errorf("空区域不应消耗次数")
	}
}

func TestRelocateFlow(t *testing.T) {
	s := newTestSession()
	layStones(s, PlayerStone, Coord{7, 7})

	if got := s.ArmSkill(SkillRelocate); got != StatusRelocatePickSource {
		t.Fatalf("期望 %q，实际 %q", StatusRelocatePickSource, got)
	}
	if got := s.CellClicked(7, 9); got != StatusRelocateBadSource {
		t.Fatalf("空格不能作为源：%q", got)
	}
	if got := s.CellClicked(7, 7); got != StatusRelocatePickDest {
		t.Fatalf("期望 %q，实际 %q", StatusRelocatePickDest, got)
	}
	// 斜向不算相邻
	if got := s.CellClicked(8, 8); got != StatusRelocateBadDest {
		t.Fatalf("期望 %q，实际 %q", StatusRelocateBadDest, got)
	}
	if s.armed != SkillRelocate || s.relocateFrom == nil || s.skills[SkillRelocate].UsesLeft != 3 {
		t.Fatalf("无效落点后应保持选中源且不扣次数")
	}
	if got := s.CellClicked(7, 8); got != StatusRelocated {
		t.Fatalf("期望 %q，实际 %q", StatusRelocated, got)
	}
	if s.board.Get(7, 7) != Empty || s.board.Get(7, 8) != PlayerStone {
		t.Errorf("棋子没有移动")
	}
	// 奖励行动：不换手
	if s.turn != Player || s.turnIndex != 0 {
		t.Errorf("挪移不应结束回合")
	}
	if s.skills[SkillRelocate].UsesLeft != 2 || s.IsSkillAvailable(SkillRelocate) {
		t.Errorf("挪移后应扣次数并进入冷却")
	}

	// 冷却 2 按玩家回合计：AI 回合不算数
	playRound(t, s, 0, 0)
	if s.IsSkillAvailable(SkillRelocate) || s.skills[SkillRelocate].CooldownRemaining(s.turnIndex) != 1 {
		t.Errorf("一个玩家回合后应还剩 1，实际 %d", s.skills[SkillRelocate].CooldownRemaining(s.turnIndex))
	}
	playRound(t, s, 0, 1)
	if !s.IsSkillAvailable(SkillRelocate) {
		t.Errorf("两个玩家回合后冷却应结束，剩余 %d", s.skills[SkillRelocate].CooldownRemaining(s.turnIndex))
	}
}

// 冷却只数玩家回合：用掉后经过 n 个完整回合（2n 个序号）剩余 Cooldown−n
func TestCooldownCountsPlayerTurns(t *testing.T) {
	st := newSkillState(SkillSummonQueen) // 冷却 4
	st.consume(2)
	for turn, want := range map[int]int{2: 4, 3: 4, 4: 3, 6: 2, 8: 1, 9: 1, 10: 0, 30: 0} {
		if got := st.CooldownRemaining(turn); got != want {
			t.Errorf("turn %d：剩余 %d，期望 %d", turn, got, want)
		}
	}
	if !st.ready(10) || st.ready(9) {
		t.Errorf("应在第 4 个玩家回合后恢复")
	}
}

// 对弈器让搜索器替玩家一方落子，结算与 AI 回合一致
func TestRunTurnForPlayerSide(t *testing.T) {
	s := newTestSession()
	if got := s.RunTurn(Ai, Hard); got != StatusPlayerTurn || s.ledger.Len() != 0 {
		t.Fatalf("不是 AI 的回合时应原样返回，实际 %q", got)
	}
	if got := s.RunTurn(Player, Medium); got != StatusAiThinking {
		t.Fatalf("期望 %q，实际 %q", StatusAiThinking, got)
	}
	if s.board.Count(PlayerStone) != 1 || s.turnIndex != 1 || !s.AiPending() {
		t.Fatalf("玩家一方应落下一子并交给 AI：turnIndex=%d", s.turnIndex)
	}
	if e, ok := s.ledger.Last(); !ok || e.Skill != SkillNone || e.Turn != 0 {
		t.Errorf("账本应记一条普通落子：%+v", e)
	}
	if got := s.RunTurn(Ai, Easy); got != StatusPlayerTurn || s.board.Count(AiStone) != 1 || s.turnIndex != 2 {
		t.Errorf("AI 一方应落子并换手：%q turnIndex=%d", got, s.turnIndex)
	}
}

// 双方都由搜索器驱动时，连五照样按血量结算
func TestRunTurnLineDamage(t *testing.T) {
	s := newTestSession(func(c *Config) { c.MaxHP = 1 })
	layStones(s, PlayerStone, Coord{7, 3}, Coord{7, 4}, Coord{7, 5}, Coord{7, 6})
	if got := s.RunTurn(Player, Medium); got != StatusPlayerWins {
		t.Fatalf("期望 %q，实际 %q", StatusPlayerWins, got)
	}
	if s.hp[Ai] != 0 || s.Outcome() != OutcomePlayerWin {
		t.Errorf("hp=%v outcome=%v", s.hp, s.Outcome())
	}
}

func TestClearAllNeedsStones(t *testing.T) {
	s := newTestSession()
	if s.IsSkillAvailable(SkillClearAll) {
		t.Errorf("空棋盘不能全盘清除")
	}
	layStones(s, AiStone, Coord{1, 1})
	if got := s.ArmSkill(SkillClearAll); got != StatusBoardCleared {
		t.Fatalf("期望 %q，实际 %q", StatusBoardCleared, got)
	}
	if !s.board.IsEmpty() {
		t.Errorf("棋盘应被清空")
	}
	if !s.skills[SkillClearAll].Unlimited() || s.skills[SkillClearAll].CooldownRemaining(s.turnIndex) != 12 {
		t.Errorf("全盘清除应无限次数、冷却 12")
	}
}

func TestSummonQueen(t *testing.T) {
	s := newTestSession()
	playRound(t, s, 7, 7)

	if got := s.ArmSkill(SkillSummonQueen); got != StatusSummonReady {
		t.Fatalf("期望 %q，实际 %q", StatusSummonReady, got)
	}
	if s.IsSkillAvailable(SkillSummonQueen) {
		t.Errorf("召唤待生效时不能再次召唤")
	}
	if s.turnIndex != 2 {
		t.Errorf("召唤不应结束回合")
	}
	s.PlaceAt(0, 0)
	if s.board.Get(0, 0) != Queen || s.summonPending {
		t.Fatalf("召唤后的下一手应放置皇后")
	}
	s.RunAITurn()
	if s.IsSkillAvailable(SkillSummonQueen) {
		t.Errorf("场上已有皇后时不能召唤")
	}
}

func TestQueenMovement(t *testing.T) {
	s := newTestSession()
	layStones(s, Queen, Coord{0, 0})
	layStones(s, AiStone, Coord{0, 3}, Coord{5, 5})
	layStones(s, PlayerStone, Coord{3, 0})

	if got := s.CellClicked(0, 0); got != StatusQueenSelected {
		t.Fatalf("期望 %q，实际 %q", StatusQueenSelected, got)
	}
	for _, to := range []Coord{
		{1, 2}, // 非直线
		{0, 5}, // 途经 (0,3) 被挡
		{3, 0}, // 落点是己方棋子
	} {
		if got := s.CellClicked(to.Row, to.Col); got != StatusIllegalQueenPath {
			t.Errorf("%v：期望 %q，实际 %q", to, StatusIllegalQueenPath, got)
		}
	}
	if !s.queenSelected {
		t.Fatalf("非法路径后皇后应保持选中")
	}
	// 再点一次皇后取消选中
	if got := s.CellClicked(0, 0); got != StatusQueenReleased || s.queenSelected {
		t.Fatalf("期望取消选中，实际 %q", got)
	}

	s.CellClicked(0, 0)
	if got := s.CellClicked(5, 5); got != StatusAiThinking {
		t.Fatalf("皇后吃子后应轮到 AI，实际 %q", got)
	}
	if s.board.Get(5, 5) != Queen || s.board.Get(0, 0) != Empty || s.turnIndex != 1 {
		t.Errorf("皇后没有正确移动")
	}
}

// ------------------------------------------------------------
// 时光倒流
// ------------------------------------------------------------

func TestRewindUnavailableEarly(t *testing.T) {
	s := newTestSession()
	if got := s.ArmSkill(SkillTimeRewind); got != StatusSkillUnavailable {
		t.Errorf("开局倒流应不可用，实际 %q", got)
	}
}

func TestRewindRestoresTwoTurns(t *testing.T) {
	s := newTestSession()
	playRound(t, s, 7, 7)
	saved := captureState(s)

	aiStone, ok := findStone(s, AiStone)
	if !ok {
		t.Fatalf("AI 没有落子")
	}
	s.ArmSkill(SkillRemove)
	if got := s.CellClicked(aiStone.Row, aiStone.Col); got != StatusRemoved {
		t.Fatalf("期望 %q，实际 %q", StatusRemoved, got)
	}
	playRound(t, s, 0, 0)
	if s.skills[SkillRemove].UsesLeft != 1 {
		t.Fatalf("移除应已扣次数")
	}

	if got := s.ArmSkill(SkillTimeRewind); got != StatusRewound {
		t.Fatalf("期望 %q，实际 %q", StatusRewound, got)
	}
	if captureState(s) != saved {
		t.Errorf("倒流后棋盘/血量应回到两回合前")
	}
	if s.turnIndex != 2 || s.turn != Player || s.ledger.Len() != 2 {
		t.Errorf("turnIndex=%d turn=%v ledger=%d", s.turnIndex, s.turn, s.ledger.Len())
	}
	if st := s.skills[SkillRemove]; st.UsesLeft != 2 || st.LastUsed != -1 {
		t.Errorf("被撤销的技能应返还次数并清除冷却：%+v", st)
	}
	if s.skills[SkillTimeRewind].UsesLeft != 1 {
		t.Errorf("倒流自身应扣一次")
	}
}

func TestRewindAfterGameOver(t *testing.T) {
	s := newTestSession(func(c *Config) { c.MaxHP = 1 })
	playRound(t, s, 7, 7)
	layStones(s, PlayerStone, Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3})
	if got := s.PlaceAt(0, 4); got != StatusPlayerWins {
		t.Fatalf("期望 %q，实际 %q", StatusPlayerWins, got)
	}
	if !s.IsSkillAvailable(SkillTimeRewind) || s.IsSkillAvailable(SkillRemove) {
		t.Fatalf("终局后只有倒流可用")
	}

	if got := s.ArmSkill(SkillTimeRewind); got != StatusRewound {
		t.Fatalf("期望 %q，实际 %q", StatusRewound, got)
	}
	if s.GameOver() || s.Outcome() != OutcomeNone {
		t.Errorf("倒流应撤销终局")
	}
	if s.turnIndex != 0 || s.ledger.Len() != 0 || s.hp != [2]int{1, 1} {
		t.Errorf("应回到开局：turnIndex=%d ledger=%d hp=%v", s.turnIndex, s.ledger.Len(), s.hp)
	}
	// 棋盘外手工摆放的四子不在账本里，应当保留；连线被撤销后 (0,0)..(0,3) 恢复
	for col := 0; col < 4; col++ {
		if s.board.Get(0, col) != PlayerStone {
			t.Errorf("(0,%d) 应恢复为玩家棋子", col)
		}
	}
	if s.board.Get(0, 4) != Empty || s.board.Count(AiStone) != 0 {
		t.Errorf("倒流范围内的落子应被撤销")
	}
}

func TestRestartKeepsConfig(t *testing.T) {
	s := newTestSession(func(c *Config) { c.MaxHP = 5 })
	id := s.ID
	playRound(t, s, 7, 7)
	s.Restart()
	if s.ID == id || !s.board.IsEmpty() || s.hp != [2]int{5, 5} || s.ledger.Len() != 0 {
		t.Errorf("重开后应为新对局并保留配置")
	}
}

// ------------------------------------------------------------
// 经典模式
// ------------------------------------------------------------

func TestClassicFiveWins(t *testing.T) {
	s := newTestSession(func(c *Config) { c.Variant = Classic })
	layStones(s, PlayerStone, Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3})
	if got := s.PlaceAt(0, 4); got != StatusPlayerWins {
		t.Fatalf("期望 %q，实际 %q", StatusPlayerWins, got)
	}
	if s.board.Count(PlayerStone) != 5 {
		t.Errorf("经典模式成五不移除棋子")
	}
}

func TestClassicDisablesSkills(t *testing.T) {
	s := newTestSession(func(c *Config) { c.Variant = Classic })
	for _, id := range AllSkills {
		if s.IsSkillAvailable(id) {
			t.Errorf("%s 在经典模式下应不可用", id)
		}
	}
	if got := s.ArmSkill(SkillRelocate); got != StatusSkillsDisabled {
		t.Errorf("期望 %q，实际 %q", StatusSkillsDisabled, got)
	}
	if len(s.Snapshot().Skills) != 0 {
		t.Errorf("经典模式不展示技能")
	}
}

func TestFullBoardIsDraw(t *testing.T) {
	s := newTestSession()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			s.board.set(r, c, CellState(1+(r+c)%2))
		}
	}
	s.turn = Ai
	s.aiPending = true
	if got := s.RunAITurn(); got != StatusDraw || s.Outcome() != OutcomeDraw {
		t.Errorf("满盘应判和，实际 %q", got)
	}
}
