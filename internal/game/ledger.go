package game

// LedgerEntry 一条历史记录：效果、触发它的技能（普通落子为 SkillNone）及所在回合
type LedgerEntry struct {
	Effect Effect
	Skill  SkillID
	Turn   int
}

// Ledger 只追加的历史，仅时光倒流会从尾部弹出
type Ledger struct {
	entries []LedgerEntry
}

func (l *Ledger) Clear() {
	l.entries = nil
}

func (l *Ledger) Push(e LedgerEntry) {
	l.entries = append(l.entries, e)
}

// Pop 弹出最后一条
func (l *Ledger) Pop() (LedgerEntry, bool) {
	if len(l.entries) == 0 {
		return LedgerEntry{}, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return last, true
}

func (l *Ledger) Last() (LedgerEntry, bool) {
	if len(l.entries) == 0 {
		return LedgerEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) All() []LedgerEntry {
	return append([]LedgerEntry(nil), l.entries...)
}
