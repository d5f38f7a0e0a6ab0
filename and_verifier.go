package zksk

import "math/big"

// andVerifierNode drives verification for a conjunction: each child
// checks its own commitment against the shared global challenge, and
// a Secret shared across children must resolve to the same response
// everywhere, which checkResponseConsistency enforces.
type andVerifierNode struct {
	children []verifierNode
}

func (v *andVerifierNode) recomputeCommitment(challenge *big.Int, response any) (any, error) {
	resp, ok := response.(andResponse)
	if !ok || len(resp.Responses) != len(v.children) {
		return nil, ErrMalformedResponse
	}
	out := make([]any, len(v.children))
	for i, c := range v.children {
		commitment, err := c.recomputeCommitment(challenge, resp.Responses[i])
		if err != nil {
			return nil, err
		}
		out[i] = commitment
	}
	return out, nil
}

func (v *andVerifierNode) checkResponseConsistency(response any, dict WitnessMap) bool {
	resp, ok := response.(andResponse)
	if !ok || len(resp.Responses) != len(v.children) {
		return false
	}
	for i, c := range v.children {
		if !c.checkResponseConsistency(resp.Responses[i], dict) {
			return false
		}
	}
	return true
}

func (v *andVerifierNode) processPrecommitment(precommitment any) {
	if precommitment == nil {
		return
	}
	pcs, ok := precommitment.([]any)
	if !ok || len(pcs) != len(v.children) {
		return
	}
	for i, c := range v.children {
		c.processPrecommitment(pcs[i])
	}
}

func (v *andVerifierNode) checkAdequateLHS() bool {
	for _, c := range v.children {
		if !c.checkAdequateLHS() {
			return false
		}
	}
	return true
}
