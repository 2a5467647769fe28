// ticklist-ops bundles small operational helpers that don't belong in the
// server binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ticklist/internal/config"
	"ticklist/internal/seed"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "seedcheck":
		if err := cmdSeedCheck(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "seedcheck failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

// cmdSeedCheck fetches and validates the seed endpoint without touching a
// running server, so a bad endpoint shows up before a deploy does.
func cmdSeedCheck(args []string) error {
	fs := flag.NewFlagSet("seedcheck", flag.ContinueOnError)
	cfgPath := fs.String("config", "ticklist.yml", "path to config file")
	urlOverride := fs.String("url", "", "seed URL (overrides config)")
	timeout := fs.Duration("timeout", 10*time.Second, "fetch timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	url := cfg.Seed.URL
	if *urlOverride != "" {
		url = *urlOverride
	}

	f := seed.NewFetcher(url, *timeout, log.New(io.Discard, "", 0))
	tasks, err := f.Fetch(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("seed endpoint OK: %s\n", url)
	fmt.Printf("%d task(s):\n", len(tasks))
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %d  %s\n", mark, t.ID, t.Title)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: ticklist-ops <command> [flags]

commands:
  seedcheck   fetch and validate the seed endpoint`)
}
