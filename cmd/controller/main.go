package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
	"github.com/loopmarket/match-canary/go-controller/internal/pipeline"
	"github.com/loopmarket/match-canary/go-controller/internal/publish"
	"github.com/loopmarket/match-canary/go-controller/internal/store"
)

// #region main
func main() {
	dbPath := envOr("CANARY_DB", "match_canary.db")
	v1Addr := envOr("ENGINE_V1_ADDR", "localhost:50061")
	v2Addr := envOr("ENGINE_V2_ADDR", "localhost:50062")
	altAddr := os.Getenv("ENGINE_V2ALT_ADDR")
	cfgPath := os.Getenv("CANARY_CONFIG")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	cfg := config.Default()
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Fatalf("failed to load config %s: %v", cfgPath, err)
		}
	}

	v1, err := engine.NewClient(v1Addr, engine.VersionV1)
	if err != nil {
		log.Fatalf("failed to connect to v1 engine at %s: %v", v1Addr, err)
	}
	defer v1.Close()

	v2, err := engine.NewClient(v2Addr, engine.VersionV2)
	if err != nil {
		log.Fatalf("failed to connect to v2 engine at %s: %v", v2Addr, err)
	}
	defer v2.Close()

	var alt engine.Runner
	if altAddr != "" {
		altClient, err := engine.NewClient(altAddr, engine.VersionV2Alt)
		if err != nil {
			log.Fatalf("failed to connect to v2alt engine at %s: %v", altAddr, err)
		}
		defer altClient.Close()
		alt = altClient
	}

	var pub publish.Publisher
	if brokers := os.Getenv("CANARY_KAFKA_BROKERS"); brokers != "" {
		topic := envOr("CANARY_KAFKA_TOPIC", "match-canary-decisions")
		kp := publish.NewKafkaPublisher(strings.Split(brokers, ","), topic)
		defer kp.Close()
		pub = kp
	}

	p := pipeline.New(pipeline.Static{Config: cfg}, st, v1, v2, alt, pub)

	fmt.Println("Match canary controller ready.")
	fmt.Printf("  DB: %s | v1: %s | v2: %s\n", dbPath, v1Addr, v2Addr)
	fmt.Println("One JSON run request per line:")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req pipeline.RunRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.Printf("bad request: %v", err)
			continue
		}

		report, err := p.Process(context.Background(), req)
		if err != nil {
			log.Printf("run failed: %v", err)
			continue
		}

		fmt.Printf("[%s] served=%s selected=%v fallback=%v rollback_active=%v\n",
			report.RunID,
			report.Decision.ServedEngine,
			report.Decision.CanarySelected,
			report.Decision.Fallback,
			report.Decision.RollbackAfter.Active,
		)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
