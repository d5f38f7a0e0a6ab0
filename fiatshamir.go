package zksk

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"math/big"
)

// NITranscript is a non-interactive proof produced by the
// Fiat–Shamir transform. The commitment is deliberately omitted: the
// verifier recomputes it from the challenge and response via
// recomputeCommitment and feeds that recomputed value back into the
// hash, rather than trusting a transmitted one.
type NITranscript struct {
	StatementHash []byte
	Precommitment any
	Challenge     *big.Int
	Response      any
}

// deriveChallenge computes c = H(statementHash || commitment ||
// precommitment || message), reduced into [0, 2^ChallengeBits). The
// statement hash binds the challenge to exactly one relation; the
// commitment and precommitment binding is what makes the transform
// sound without an interactive verifier.
func deriveChallenge(statementHash []byte, commitment, precommitment any, message []byte) (*big.Int, error) {
	h := sha256.New()
	h.Write(statementHash)

	commitBytes, err := json.Marshal(commitment)
	if err != nil {
		return nil, err
	}
	h.Write(commitBytes)

	if precommitment != nil {
		preBytes, err := json.Marshal(precommitment)
		if err != nil {
			return nil, err
		}
		h.Write(preBytes)
	}

	h.Write(message)
	digest := h.Sum(nil)
	c := new(big.Int).SetBytes(digest)
	return c.Mod(c, challengeModulus), nil
}

// deepEqualJSON reports whether a and b marshal to identical JSON. It
// stands in for a structural equality check across the `any`-typed
// commitment/response trees, whose concrete leaf types (group
// elements, nested And/Or shapes) already marshal canonically.
func deepEqualJSON(a, b any) bool {
	aBytes, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bBytes, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aBytes, bBytes)
}
