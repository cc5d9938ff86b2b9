// Package bucket maps a request identity to a deterministic position in the
// 0-9999 rollout space. The assignment must be reproducible across processes
// so that canary membership can be replayed and tested.
package bucket

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// #region constants

const (
	// Space is the number of buckets; rollout thresholds are basis points.
	Space = 10000

	// hexPrefixLen is how many hex digits of the digest feed the bucket.
	hexPrefixLen = 8

	unknownActor = "unknown"
	noKey        = "none"
)

// #endregion constants

// #region assign

// Assign returns the bucket in [0, Space) for a request identity.
// Missing actor fields normalize to "unknown", a missing idempotency key to
// "none". The function is pure and never fails: any malformed input lands in
// bucket 0, which keeps the request out of the canary at rollout_bps 0 and
// always-in at 10000, the safe ends of the range.
func Assign(salt, actorType, actorID, idempotencyKey, requestedAt string) int {
	if actorType == "" {
		actorType = unknownActor
	}
	if actorID == "" {
		actorID = unknownActor
	}
	if idempotencyKey == "" {
		idempotencyKey = noKey
	}

	joined := strings.Join([]string{salt, actorType, actorID, idempotencyKey, requestedAt}, "|")
	sum := sha256.Sum256([]byte(joined))
	prefix := hex.EncodeToString(sum[:])[:hexPrefixLen]

	n, err := strconv.ParseUint(prefix, 16, 64)
	if err != nil {
		return 0
	}
	return int(n % Space)
}

// #endregion assign

// #region in-rollout

// InRollout reports whether a bucket falls inside the configured rollout
// threshold, expressed in basis points of the bucket space.
func InRollout(bucket, rolloutBps int) bool {
	return bucket < rolloutBps
}

// #endregion in-rollout
