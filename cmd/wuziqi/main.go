package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/assets"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/logging"
	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/ui"
)

func main() {
	cfg := game.DefaultConfig()
	variantName := flag.String("variant", cfg.Variant.String(), "规则：skill / classic")
	difficultyName := flag.String("difficulty", cfg.Difficulty.String(), "AI 难度：easy / medium / hard")
	flag.IntVar(&cfg.MaxHP, "hp", cfg.MaxHP, "技能模式双方血量")
	flag.IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "困难 AI 的搜索深度")
	flag.Int64Var(&cfg.Seed, "seed", 0, "AI 随机种子，0 表示按时间")
	delay := flag.Duration("delay", ui.DefaultAIDelay, "AI 落子前的延时")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.BoolVar(&logging.Debug, "debug", false, "打印调试日志")
	flag.Parse()

	var err error
	if cfg.Variant, err = game.ParseVariant(*variantName); err != nil {
		log.Fatal(err)
	}
	if cfg.Difficulty, err = game.ParseDifficulty(*difficultyName); err != nil {
		log.Fatal(err)
	}

	var am *assets.AudioManager
	if !*mute {
		ctx := audio.NewContext(assets.SampleRate)
		if am, err = assets.NewAudioManager(ctx); err != nil {
			log.Fatal(err)
		}
	}

	session := game.NewSession(cfg)
	log.Printf("new game %s: variant=%s difficulty=%s hp=%d", session.ID, cfg.Variant, cfg.Difficulty, cfg.MaxHP)

	screen := ui.NewGameScreen(session, am, ui.Options{AIDelay: *delay})
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Skill WuZiQi")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}

// go build -ldflags="-s -w" -o wuziqi ./cmd/wuziqi
