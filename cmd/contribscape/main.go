package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/contribscape/contribscape/internal/config"
	"github.com/contribscape/contribscape/internal/render"
	"github.com/contribscape/contribscape/pkg/activity"
	"github.com/contribscape/contribscape/pkg/gen"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.User, "user", cfg.User, "identity the seed derives from")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "rendering mode, part of the seed identity")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "explicit seed (0 = derive from user+mode)")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "palette name")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "intensity scale: 10 or 100")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "activity calendar JSON path")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "SVG output path (- for stdout)")
	cfgPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *cfgPath != "" {
		fromFile, err := config.LoadFile(*cfgPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	scale := gen.Scale10
	if cfg.Scale == 100 {
		scale = gen.Scale100
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = gen.SeedFromString(cfg.User + ":" + cfg.Mode)
	}

	data, err := os.Open(cfg.DataPath)
	if err != nil {
		log.Error("open activity data", "error", err)
		os.Exit(1)
	}
	cal, err := activity.Load(data)
	data.Close()
	if err != nil {
		log.Error("load activity data", "error", err)
		os.Exit(1)
	}
	stats := activity.ComputeStats(cal)

	scene := gen.BuildScene(cal, stats, seed, gen.DefaultOptions(scale))

	log.Info("scene generated",
		"weeks", len(cal.Weeks),
		"seed", seed,
		"total", stats.Total,
		"assets", len(scene.Assets),
		"landmarks", len(scene.Buildings),
	)

	theme, ok := render.ThemeByName(cfg.Theme)
	if !ok {
		log.Warn("unknown theme, using default", "theme", cfg.Theme)
		theme = render.DefaultTheme()
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			log.Error("create output", "error", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := render.New(theme).Render(out, scene); err != nil {
		log.Error("render", "error", err)
		os.Exit(1)
	}
}
