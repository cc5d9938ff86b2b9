package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/loopmarket/match-canary/go-controller/internal/decision"
	"github.com/loopmarket/match-canary/go-controller/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to match_canary.db")
	last := flag.Int("last", 20, "show N most recent decision records")
	runID := flag.String("run", "", "show single run detail")
	diffs := flag.Bool("diffs", false, "include shadow/alt-shadow diffs in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/match_canary.db [--last N] [--run id] [--diffs] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *runID != "" {
		if err := runDetailMode(st, *runID, *diffs, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store, last int, jsonOut bool) error {
	records, err := st.ListDecisionRecords(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no decision records found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Printf("%-36s  %-15s  %-6s  %-8s  %-10s  %s\n",
		"RUN", "MODE", "SERVED", "FALLBACK", "SELECTED", "ROLLBACK")
	for _, rec := range records {
		rb := "clear"
		if rec.RollbackAfter.Active {
			rb = "latched:" + rec.RollbackAfter.ReasonCode
		}
		fmt.Printf("%-36s  %-15s  %-6s  %-8v  %-10v  %s\n",
			rec.RunID, rec.Mode, rec.ServedEngine, rec.Fallback, rec.CanarySelected, rb)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(st *store.Store, runID string, diffs, jsonOut bool) error {
	rec, err := st.GetDecisionRecord(runID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	detail := struct {
		Decision *decision.Record `json:"decision"`
		Shadow   interface{}      `json:"shadow_diff,omitempty"`
		Alt      interface{}      `json:"alt_shadow_diff,omitempty"`
	}{Decision: rec}

	if diffs {
		sd, err := st.GetShadowDiff(runID)
		if err != nil {
			return err
		}
		ad, err := st.GetAltShadowDiff(runID)
		if err != nil {
			return err
		}
		if sd != nil {
			detail.Shadow = sd
		}
		if ad != nil {
			detail.Alt = ad
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	fmt.Printf("run:            %s\n", rec.RunID)
	fmt.Printf("recorded_at:    %s\n", rec.RecordedAt)
	fmt.Printf("mode:           %s\n", rec.Mode)
	fmt.Printf("served_engine:  %s\n", rec.ServedEngine)
	fmt.Printf("fallback:       %v (%s)\n", rec.Fallback, rec.FallbackReason)
	fmt.Printf("selected:       %v (%s)\n", rec.CanarySelected, rec.SkippedReason)
	fmt.Printf("bucket:         %d / rollout_bps=%d\n", rec.Bucket, rec.Canary.RolloutBps)
	fmt.Printf("rollback:       before=%+v after=%+v triggered=%v\n",
		rec.RollbackBefore, rec.RollbackAfter, rec.RollbackTriggered)
	if rec.Sample != nil {
		fmt.Printf("sample:         %+v\n", *rec.Sample)
	} else {
		fmt.Println("sample:         (not canary-selected)")
	}
	if detail.Shadow != nil {
		raw, _ := json.Marshal(detail.Shadow)
		fmt.Printf("shadow_diff:    %s\n", raw)
	}
	if detail.Alt != nil {
		raw, _ := json.Marshal(detail.Alt)
		fmt.Printf("alt_shadow:     %s\n", raw)
	}
	return nil
}

// #endregion detail-mode
