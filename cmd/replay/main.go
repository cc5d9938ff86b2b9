package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/replay"
)

// #region main

func main() {
	fixture := flag.String("fixture", "", "path to a JSON file of recorded interactions")
	cfgPath := flag.String("config", "", "optional YAML config; defaults otherwise")
	jsonOut := flag.Bool("json", false, "output per-run results as JSON")
	flag.Parse()

	if *fixture == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture interactions.json [--config canary.yaml] [--json]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read fixture: %v\n", err)
		os.Exit(1)
	}
	var interactions []replay.Interaction
	if err := json.Unmarshal(raw, &interactions); err != nil {
		fmt.Fprintf(os.Stderr, "parse fixture: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}

	results, summary := replay.Replay(interactions, cfg)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Results []replay.Result `json:"results"`
			Summary replay.Summary  `json:"summary"`
		}{results, summary}); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, r := range results {
		status := "skip"
		if r.Selected {
			status = "canary"
		}
		extra := ""
		if r.Fallback {
			extra = " fallback=" + r.FallbackReason
		}
		if r.Triggered {
			extra += " ROLLBACK-TRIGGERED"
		}
		fmt.Printf("%-24s %-7s served=%s%s\n", r.RunID, status, r.ServedEngine, extra)
	}
	fmt.Printf("\n%d runs, %d selected, %d fallbacks\n", summary.Total, summary.Selected, summary.Fallbacks)
	if summary.Latched {
		fmt.Printf("window latched at run %s: reason=%s\n", summary.LatchedAtRun, summary.FinalState.ReasonCode)
	} else {
		fmt.Println("window stayed healthy")
	}
}

// #endregion main
