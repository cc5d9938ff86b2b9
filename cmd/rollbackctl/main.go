package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
	"github.com/loopmarket/match-canary/go-controller/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

// rollbackctl is the operator tool for the rollback latch. The latch never
// clears itself; --reset here is the only Latched-to-Clear path.
func main() {
	dbPath := flag.String("db", "", "path to match_canary.db")
	reset := flag.Bool("reset", false, "reset the rollback state to its initial empty form")
	jsonOut := flag.Bool("json", false, "output status as JSON")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rollbackctl --db path/to/match_canary.db [--reset] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctrl := rollback.NewController(st)

	if *reset {
		state, err := ctrl.Current()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read state: %v\n", err)
			os.Exit(1)
		}
		if err := ctrl.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "reset: %v\n", err)
			os.Exit(1)
		}
		if state.Active {
			fmt.Printf("rollback cleared (was latched: reason=%s run=%s)\n", state.ReasonCode, state.RunID)
		} else {
			fmt.Println("rollback state reset (was already clear)")
		}
		return
	}

	state, err := ctrl.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read state: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if state.Active {
		fmt.Printf("LATCHED  reason=%s run=%s at=%v\n", state.ReasonCode, state.RunID, state.ActivatedAt)
	} else {
		fmt.Println("clear")
	}
	fmt.Printf("window: %d samples\n", len(state.RecentSamples))
	for _, s := range state.RecentSamples {
		fmt.Printf("  %s error=%v timeout=%v limited=%v non_negative_delta=%v\n",
			s.RunID, s.Error, s.Timeout, s.Limited, s.NonNegativeDelta)
	}
}

// #endregion main
