package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/magic-mana-engine/internal/config"
	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
	"github.com/KirkDiggler/magic-mana-engine/internal/services"
)

const usage = `usage: manactl [-actor ID] [-user NAME] [-gm] [-metrics] <command> [args]

commands:
  state                       show the pool
  visuals [COLOR=ICON ...]    print how each bar is drawn, as JSON
  config                      show slot capacities
  configure COLOR=N ...       set slot capacities (other colors keep theirs)
  toggle COLOR INDEX          flip one slot
  lock COLOR on|off           lock or unlock a bar (GM only)
  slotlock COLOR INDEX on|off lock or unlock one slot (GM only)
  activate COLOR              turn on the next free slot
  deactivate COLOR            turn off the last active slot
  spend COLOR AMOUNT          spend mana
  card SUIT VALUE [NAME]      play a card and pay for it
  rest                        regenerate one slot per bar
  list                        list every stored character
  purge                       delete the character's pool (GM only)
`

func main() {
	actorID := flag.String("actor", "", "character ID")
	userName := flag.String("user", "manactl", "name of the caller")
	privileged := flag.Bool("gm", false, "act as the GM")
	showMetrics := flag.Bool("metrics", false, "print operation counters after the command")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	notifier, err := newNotifier(cfg)
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	registry := prometheus.NewRegistry()
	provider := services.NewProvider(&services.ProviderConfig{
		PoolRepository: repo,
		Notifier:       notifier,
		Metrics:        metrics.NewRecorder(registry),
		MaxCapacity:    cfg.Mana.MaxCapacity,
	})

	caller := mana.Player(*userName)
	if *privileged {
		caller = mana.GM(*userName)
	}

	cli := &app{
		svc:     provider.ManaService,
		repo:    provider.PoolRepository,
		out:     os.Stdout,
		actorID: *actorID,
		caller:  caller,
	}

	err = cli.run(ctx, flag.Args())
	if *showMetrics {
		if merr := printMetrics(os.Stdout, registry); merr != nil {
			log.Printf("Failed to print metrics: %v", merr)
		}
	}
	if err != nil {
		stop()
		_ = closeRepo()
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}
