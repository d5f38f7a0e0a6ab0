package zksk

import (
	"crypto/sha256"
	"encoding/json"
)

// prehashStatement derives a canonical digest of a proof tree's
// relation (its generators and left-hand sides), independent of any
// witness or randomness. Every Fiat–Shamir challenge is bound to this
// digest, so a transcript proved for one statement can never be
// replayed as a proof of another. Mirrors zksk's original
// prehash_statement.
func prehashStatement(n node) ([]byte, error) {
	encoded, err := json.Marshal(n.proofID())
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(encoded)
	return sum[:], nil
}
