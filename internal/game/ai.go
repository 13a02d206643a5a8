// game/ai.go
package game

import (
	"math"
	"math/rand"
	"time"
)

// Difficulty 选择 AI 策略
type Difficulty int

const (
	Easy   Difficulty = iota // 随机
	Medium                   // 一层贪心
	Hard                     // α-β 极小化极大
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	}
	return "hard"
}

// Searcher 持有 AI 的随机源与评估缓存。不可在多个 goroutine 间共享。
type Searcher struct {
	rng     *rand.Rand
	cache   *evalCache
	depth   int
	fastWin bool // 经典规则：成五即终局，搜索可以提前返回 ±FiveScore
}

// NewSearcher 创建搜索器；seed 为 0 时按时间播种
func NewSearcher(variant Variant, depth int, seed int64) *Searcher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if depth < 1 {
		depth = 1
	}
	return &Searcher{
		rng:     rand.New(rand.NewSource(seed)),
		cache:   newEvalCache(),
		depth:   depth,
		fastWin: variant == Classic,
	}
}

// CacheStats 返回评估缓存 查询次数、命中次数与命中率(%)
func (s *Searcher) CacheStats() (lookups, hits uint64, hitRate float64) {
	return s.cache.stats()
}

// Choose 按难度为 me 选一手。没有候选点时返回 false（和棋）。
func (s *Searcher) Choose(b *Board, me Side, d Difficulty) (Coord, bool) {
	switch d {
	case Easy:
		return s.RandomMove(b)
	case Medium:
		return s.GreedyMove(b, me)
	}
	return s.MinimaxMove(b, me)
}

// RandomMove 在候选点中均匀随机
func (s *Searcher) RandomMove(b *Board) (Coord, bool) {
	cands := CandidateMoves(b)
	if len(cands) == 0 {
		return Coord{}, false
	}
	return cands[s.rng.Intn(len(cands))], true
}

// GreedyMove 对每个候选点：己方占据后的己方分 + 0.8 × 对方占据后的对方分，取最大；同分取先遇到的
func (s *Searcher) GreedyMove(b *Board, me Side) (Coord, bool) {
	cands := CandidateMoves(b)
	if len(cands) == 0 {
		return Coord{}, false
	}
	opp := me.Opponent()
	best := cands[0]
	bestScore := math.Inf(-1)
	for _, c := range cands {
		u := makePlacement(b, c, me.Stone())
		mine := s.cache.evaluate(b, me)
		b.unmake(u)

		u = makePlacement(b, c, opp.Stone())
		theirs := s.cache.evaluate(b, opp)
		b.unmake(u)

		if score := mine + denyWeight*theirs; score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, true
}

// MinimaxMove 固定深度 α-β 搜索
func (s *Searcher) MinimaxMove(b *Board, me Side) (Coord, bool) {
	mv, _, ok := s.bestMinimax(b, me, s.depth, true)
	return mv, ok
}

// bestMinimax 根节点：逐个候选点落子 → 对手极小化 → 回溯，取最大（同分取先遇到的）。
// prune=false 时退化为朴素极小化极大，用来对照剪枝结果。
func (s *Searcher) bestMinimax(b *Board, me Side, depth int, prune bool) (Coord, float64, bool) {
	cands := CandidateMoves(b)
	if len(cands) == 0 {
		return Coord{}, 0, false
	}
	best := cands[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, c := range cands {
		u := makePlacement(b, c, me.Stone())
		var score float64
		if s.fastWin && IsWinningMove(b, c.Row, c.Col, me) {
			score = FiveScore
		} else {
			score = s.alphaBeta(b, me, depth-1, false, alpha, beta, prune)
		}
		b.unmake(u)

		if score > bestScore {
			bestScore = score
			best = c
		}
		if prune && score > alpha {
			alpha = score
		}
	}
	return best, bestScore, true
}

// alphaBeta 以 me 为极大方。每次假想落子都在返回前撤销。
func (s *Searcher) alphaBeta(b *Board, me Side, depth int, maximizing bool, alpha, beta float64, prune bool) float64 {
	if depth <= 0 {
		return s.evaluate(b, me)
	}
	cands := CandidateMoves(b)
	if len(cands) == 0 {
		return 0
	}

	if maximizing {
		// === MAX 节点 ===
		bestScore := math.Inf(-1)
		for _, c := range cands {
			u := makePlacement(b, c, me.Stone())
			if s.fastWin && IsWinningMove(b, c.Row, c.Col, me) {
				b.unmake(u)
				return FiveScore
			}
			score := s.alphaBeta(b, me, depth-1, false, alpha, beta, prune)
			b.unmake(u)

			bestScore = math.Max(bestScore, score)
			alpha = math.Max(alpha, score)
			if prune && alpha >= beta {
				break
			}
		}
		return bestScore
	}

	// === MIN 节点 ===
	opp := me.Opponent()
	bestScore := math.Inf(1)
	for _, c := range cands {
		u := makePlacement(b, c, opp.Stone())
		if s.fastWin && IsWinningMove(b, c.Row, c.Col, opp) {
			b.unmake(u)
			return -FiveScore
		}
		score := s.alphaBeta(b, me, depth-1, true, alpha, beta, prune)
		b.unmake(u)

		bestScore = math.Min(bestScore, score)
		beta = math.Min(beta, score)
		if prune && alpha >= beta {
			break
		}
	}
	return bestScore
}

// evaluate 叶节点评估：己方 − 1.1 × 对方（走缓存）
func (s *Searcher) evaluate(b *Board, me Side) float64 {
	return boardScore(s.cache.evaluate(b, me), s.cache.evaluate(b, me.Opponent()))
}

// ------------------------------------------------------------
// 假想落子 / 撤销
// ------------------------------------------------------------

type undoCell struct {
	at   Coord
	prev CellState
}

func makePlacement(b *Board, at Coord, v CellState) undoCell {
	u := undoCell{at: at, prev: b.cells[at.Row][at.Col]}
	b.set(at.Row, at.Col, v)
	return u
}

func (b *Board) unmake(u undoCell) {
	b.set(u.at.Row, u.at.Col, u.prev)
}
