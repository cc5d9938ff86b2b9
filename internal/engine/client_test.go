package engine

import (
	"context"
	"errors"
	"testing"

	pb "github.com/loopmarket/match-canary/go-controller/gen/matchpb"
	"google.golang.org/grpc"
)

// #region mock
type mockEngineService struct {
	pb.MatchEngineClient

	resp    *pb.MatchResponse
	err     error
	lastReq *pb.MatchRequest
}

func (m *mockEngineService) RunMatch(_ context.Context, req *pb.MatchRequest, _ ...grpc.CallOption) (*pb.MatchResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

// #endregion mock

func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockEngineService{}, VersionV2)
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	// Close on an injected client must be a no-op.
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestRunSuccess(t *testing.T) {
	mock := &mockEngineService{
		resp: &pb.MatchResponse{
			EngineVersion: "v2",
			Stats: &pb.MatchStats{
				CandidateCycles:          12,
				ExecutedCycles:           3,
				ScoreSumScaled:           45000,
				CycleEnumerationTimedOut: true,
			},
			CyclesJson: `[{"cycle":["a","b"]}]`,
		},
	}
	c := NewClientWithService(mock, VersionV2)

	res, err := c.Run(context.Background(), Input{
		Intents: []TradeIntent{{ID: "i1", ActorID: "a1", OfferAsset: "X", WantAsset: "Y", Quantity: 2}},
		AssetValuesUSD: map[string]float64{
			"Y": 5.0,
			"X": 1.5,
		},
		EdgeIntents: []EdgeIntent{{IntentID: "i1", FromAsset: "X", ToAsset: "Y"}},
		NowISO:      "2026-08-30T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EngineVersion != VersionV2 {
		t.Fatalf("expected v2, got %s", res.EngineVersion)
	}
	if res.Stats.CandidateCycles != 12 || res.Stats.ScoreSumScaled != 45000 {
		t.Fatalf("unexpected stats %+v", res.Stats)
	}
	if !res.Stats.TimedOut {
		t.Fatal("expected timed-out flag carried over")
	}

	if mock.lastReq.GetEngineVersion() != "v2" {
		t.Fatalf("expected engine_version v2, got %q", mock.lastReq.GetEngineVersion())
	}
	if len(mock.lastReq.GetIntents()) != 1 || mock.lastReq.GetIntents()[0].GetId() != "i1" {
		t.Fatalf("unexpected intents %+v", mock.lastReq.GetIntents())
	}
	// Asset values are sorted for a deterministic wire order.
	vals := mock.lastReq.GetAssetValuesUsd()
	if len(vals) != 2 || vals[0].GetAsset() != "X" || vals[1].GetAsset() != "Y" {
		t.Fatalf("expected sorted asset values, got %+v", vals)
	}
}

func TestRunError(t *testing.T) {
	mock := &mockEngineService{err: errors.New("rpc failed")}
	c := NewClientWithService(mock, VersionV1)

	if _, err := c.Run(context.Background(), Input{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunNilStats(t *testing.T) {
	mock := &mockEngineService{resp: &pb.MatchResponse{EngineVersion: "v1"}}
	c := NewClientWithService(mock, VersionV1)

	res, err := c.Run(context.Background(), Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", res.Stats)
	}
}
