package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/arena"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
)

func main() {
	// ───── 参数 ─────
	numGames := flag.Int("n", 100, "总对局数")
	workers := flag.Int("workers", runtime.NumCPU(), "并行 worker 数")
	variantName := flag.String("variant", "classic", "规则：skill / classic")
	aName := flag.String("a", "hard", "先手难度：easy / medium / hard")
	bName := flag.String("b", "medium", "后手难度：easy / medium / hard")
	depth := flag.Int("depth", 2, "极小化极大搜索深度")
	hp := flag.Int("hp", 3, "技能模式血量")
	opening := flag.Int("opening", 1, "开局双方各随机落几手")
	seed := flag.Int64("seed", 0, "随机种子，0 表示按时间")
	outFile := flag.String("out", "", "结果 CSV 文件，留空则只打印汇总")
	flag.BoolVar(&logging.Debug, "debug", false, "打印每局详情")
	flag.Parse()

	variant, err := game.ParseVariant(*variantName)
	if err != nil {
		log.Fatal(err)
	}
	a, err := game.ParseDifficulty(*aName)
	if err != nil {
		log.Fatal(err)
	}
	b, err := game.ParseDifficulty(*bName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	m := arena.Match{Variant: variant, A: a, B: b, Depth: *depth, MaxHP: *hp, Opening: *opening}

	// ───── 结果文件 + Writer + 互斥锁 ─────
	var (
		w   *csv.Writer
		wMu sync.Mutex
	)
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("open csv: %v", err)
		}
		defer f.Close()
		w = csv.NewWriter(f)
		w.Write([]string{"id", "variant", "a", "b", "winner", "moves", "hp_a", "hp_b", "ms", "cache_hit"})
		defer w.Flush()
	}

	// ───── 并发 worker 池 ─────
	if *workers < 1 {
		*workers = 1
	}
	log.Printf("CPU=%d，启动 %d 个 worker：%s %s vs %s，共 %d 局",
		runtime.NumCPU(), *workers, variant, a, b, *numGames)

	jobs := make(chan int, *workers*2)
	var (
		wg    sync.WaitGroup
		tMu   sync.Mutex
		tally arena.Tally
	)
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				res := arena.Play(m, *seed+int64(id)+1) // 每局独立种子，与 worker 无关

				tMu.Lock()
				tally.Add(res)
				tMu.Unlock()

				if w == nil {
					continue
				}
				wMu.Lock()
				w.Write([]string{
					res.ID.String(), variant.String(), a.String(), b.String(),
					res.Winner.String(), strconv.Itoa(res.Moves),
					strconv.Itoa(res.HP[game.Player]), strconv.Itoa(res.HP[game.Ai]),
					strconv.FormatInt(res.Duration.Milliseconds(), 10),
					fmt.Sprintf("%.1f", res.CacheHitRate),
				})
				w.Flush()
				wMu.Unlock()
			}
		}()
	}

	// ───── 投任务 ─────
	for g := 0; g < *numGames; g++ {
		jobs <- g
		if (g+1)%50 == 0 {
			log.Printf("投放进度 %d/%d", g+1, *numGames)
		}
	}
	close(jobs)
	wg.Wait()

	log.Printf("%s vs %s: %s", a, b, tally)
}

// go build -ldflags="-s -w" -o arena ./cmd/arena
