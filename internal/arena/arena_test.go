package arena

import (
	"testing"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
)

func TestClassicGreedyBeatsRandom(t *testing.T) {
	m := Match{Variant: game.Classic, A: game.Medium, B: game.Easy, Depth: 1, MaxHP: 1, Opening: 1}
	var tally Tally
	for i := 0; i < 6; i++ {
		tally.Add(Play(m, int64(i+1)))
	}
	if tally.Games != 6 || tally.AWins+tally.BWins+tally.Draws != 6 {
		t.Fatalf("计数错误：%s", tally)
	}
	if tally.AWins <= tally.BWins {
		t.Errorf("贪心应当明显强于随机：%s", tally)
	}
}

func TestSkillGameEndsWithHPZero(t *testing.T) {
	m := Match{Variant: game.Skill, A: game.Medium, B: game.Easy, Depth: 1, MaxHP: 2}
	res := Play(m, 1)
	switch res.Winner {
	case game.OutcomePlayerWin:
		if res.HP[game.Ai] != 0 {
			t.Errorf("A 获胜时 B 血量应为 0：%v", res.HP)
		}
	case game.OutcomeAiWin:
		if res.HP[game.Player] != 0 {
			t.Errorf("B 获胜时 A 血量应为 0：%v", res.HP)
		}
	case game.OutcomeDraw:
		if res.Moves == 0 {
			t.Errorf("和棋也应当至少下过一手")
		}
	default:
		t.Fatalf("结果未结算：%v", res.Winner)
	}
	if res.Moves > MaxMoves {
		t.Errorf("步数 %d 超过上限", res.Moves)
	}
}

func TestPlayIsDeterministicForSeed(t *testing.T) {
	m := Match{Variant: game.Classic, A: game.Easy, B: game.Easy, Depth: 1, MaxHP: 1, Opening: 2}
	a := Play(m, 3)
	b := Play(m, 3)
	if a.Winner != b.Winner || a.Moves != b.Moves {
		t.Errorf("相同种子应得到相同对局：%v/%d vs %v/%d", a.Winner, a.Moves, b.Winner, b.Moves)
	}
}
