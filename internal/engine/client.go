package engine

import (
	"context"
	"fmt"
	"sort"

	pb "github.com/loopmarket/match-canary/go-controller/gen/matchpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct

// Client wraps the gRPC connection to one engine deployment and implements
// Runner against it.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.MatchEngineClient
	version Version
}

// #endregion client-struct

// #region constructor

// NewClient connects to an engine deployment serving the given version.
func NewClient(addr string, version Version) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewMatchEngineClient(conn),
		version: version,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.MatchEngineClient, version Version) *Client {
	return &Client{client: svc, version: version}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region run

// Run executes one match over this client's engine deployment.
func (c *Client) Run(ctx context.Context, in Input) (Result, error) {
	resp, err := c.client.RunMatch(ctx, toRequest(c.version, in))
	if err != nil {
		return Result{}, fmt.Errorf("run match rpc (%s): %w", c.version, err)
	}
	return fromResponse(resp), nil
}

// #endregion run

// #region conversion

func toRequest(version Version, in Input) *pb.MatchRequest {
	req := &pb.MatchRequest{
		EngineVersion: string(version),
		NowIso:        in.NowISO,
		ConfigJson:    in.ConfigJSON,
	}
	for _, it := range in.Intents {
		req.Intents = append(req.Intents, &pb.TradeIntent{
			Id:         it.ID,
			ActorId:    it.ActorID,
			OfferAsset: it.OfferAsset,
			WantAsset:  it.WantAsset,
			Quantity:   it.Quantity,
		})
	}
	// Deterministic wire order so identical inputs produce identical requests.
	assets := make([]string, 0, len(in.AssetValuesUSD))
	for asset := range in.AssetValuesUSD {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	for _, asset := range assets {
		req.AssetValuesUsd = append(req.AssetValuesUsd, &pb.AssetValue{
			Asset: asset,
			Usd:   in.AssetValuesUSD[asset],
		})
	}
	for _, e := range in.EdgeIntents {
		req.EdgeIntents = append(req.EdgeIntents, &pb.EdgeIntent{
			IntentId:  e.IntentID,
			FromAsset: e.FromAsset,
			ToAsset:   e.ToAsset,
		})
	}
	return req
}

func fromResponse(resp *pb.MatchResponse) Result {
	res := Result{
		EngineVersion: Version(resp.GetEngineVersion()),
		CyclesJSON:    resp.GetCyclesJson(),
	}
	if s := resp.GetStats(); s != nil {
		res.Stats = Stats{
			CandidateCycles: s.GetCandidateCycles(),
			ExecutedCycles:  s.GetExecutedCycles(),
			ScoreSumScaled:  s.GetScoreSumScaled(),
			TimedOut:        s.GetCycleEnumerationTimedOut(),
			Limited:         s.GetCycleEnumerationLimited(),
		}
	}
	return res
}

// #endregion conversion
