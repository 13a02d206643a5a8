package game

// SkillID 技能编号
type SkillID int

const (
	SkillNone SkillID = iota
	SkillRelocate
	SkillRemove
	SkillAreaClear
	SkillClearAll
	SkillColorFlip
	SkillSummonQueen
	SkillTimeRewind
)

// Unlimited 表示无限次数
const Unlimited = -1

// AllSkills 按按钮顺序列出全部技能
var AllSkills = []SkillID{
	SkillRelocate,
	SkillRemove,
	SkillAreaClear,
	SkillClearAll,
	SkillColorFlip,
	SkillSummonQueen,
	SkillTimeRewind,
}

type skillSpec struct {
	name        string
	maxUses     int
	cooldown    int
	needsTarget bool
	prompt      Status
}

var skillSpecs = map[SkillID]skillSpec{
	SkillRelocate:    {"Relocate", 3, 2, true, StatusRelocatePickSource},
	SkillRemove:      {"Remove", 2, 3, true, StatusRemovePickTarget},
	SkillAreaClear:   {"Blast", 1, 0, true, StatusAreaPickCenter},
	SkillClearAll:    {"Clear All", Unlimited, 12, false, StatusBoardCleared},
	SkillColorFlip:   {"Flip", 1, 0, false, StatusColorsFlipped},
	SkillSummonQueen: {"Queen", 2, 4, false, StatusSummonReady},
	SkillTimeRewind:  {"Rewind", 2, 0, false, StatusRewound},
}

func (id SkillID) String() string {
	if spec, ok := skillSpecs[id]; ok {
		return spec.name
	}
	return "None"
}

// SkillState 单个技能的次数与冷却。Cooldown 以玩家自己的回合计：
// turnIndex 每方一回合加一，玩家回合总在偶数序号上，所以两个序号才算一次。
type SkillState struct {
	MaxUses  int // Unlimited 表示无限
	UsesLeft int
	Cooldown int // 玩家回合数
	LastUsed int // 最近一次使用时的回合序号，-1 表示未用过
}

func newSkillState(id SkillID) *SkillState {
	spec := skillSpecs[id]
	return &SkillState{
		MaxUses:  spec.maxUses,
		UsesLeft: spec.maxUses,
		Cooldown: spec.cooldown,
		LastUsed: -1,
	}
}

func newSkillStates() map[SkillID]*SkillState {
	m := make(map[SkillID]*SkillState, len(AllSkills))
	for _, id := range AllSkills {
		m[id] = newSkillState(id)
	}
	return m
}

func (st *SkillState) Unlimited() bool { return st.MaxUses == Unlimited }

// CooldownRemaining 距离可再次使用还差几个玩家回合
func (st *SkillState) CooldownRemaining(turn int) int {
	if st.LastUsed < 0 {
		return 0
	}
	if left := st.Cooldown - (turn-st.LastUsed)/2; left > 0 {
		return left
	}
	return 0
}

func (st *SkillState) ready(turn int) bool {
	if !st.Unlimited() && st.UsesLeft <= 0 {
		return false
	}
	return st.CooldownRemaining(turn) == 0
}

// consume 成功施放：扣次数并记下回合序号
func (st *SkillState) consume(turn int) {
	if !st.Unlimited() {
		st.UsesLeft--
	}
	st.LastUsed = turn
}

// replaySkills 从头重放账本，重建除时光倒流外所有技能的状态
func replaySkills(states map[SkillID]*SkillState, entries []LedgerEntry) {
	for id := range states {
		if id == SkillTimeRewind {
			continue
		}
		states[id] = newSkillState(id)
	}
	for _, e := range entries {
		if e.Skill == SkillNone || e.Skill == SkillTimeRewind {
			continue
		}
		states[e.Skill].consume(e.Turn)
	}
}
