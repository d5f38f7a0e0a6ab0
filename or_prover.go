package zksk

import "math/big"

// orProverNode drives Or's three-move protocol. Exactly one child,
// chosenIndex, is proved honestly with chosenProver; every other
// child is presimulated at commit time under an independently drawn
// subchallenge. At respond time the chosen child's subchallenge is
// fixed as whatever residual makes all subchallenges sum to the
// global challenge, matching zksk's original find_residual_chal.
type orProverNode struct {
	children     []node
	chosenIndex  int
	chosenProver proverNode

	subchallenges []*big.Int
	simResponses  []any
}

func (p *orProverNode) precommit() any {
	// None of this module's leaves implement a Sigma protocol needing
	// a round-zero precommitment, and an Or can't honestly produce one
	// for its simulated branches without already knowing their
	// subchallenge, so Or does not support precommitting children.
	return nil
}

// commit presimulates every branch but the chosen one under a freshly
// drawn subchallenge, and builds the chosen branch's commitment for
// real. randomizers is honored for the chosen branch only: the Or
// flaw check guarantees no Secret inside this Or occurs anywhere else
// in the statement, so no other branch could have a pre-fixed entry
// worth honoring.
func (p *orProverNode) commit(randomizers WitnessMap) any {
	p.subchallenges = make([]*big.Int, len(p.children))
	p.simResponses = make([]any, len(p.children))
	commitments := make([]any, len(p.children))
	for i, c := range p.children {
		if i == p.chosenIndex {
			continue
		}
		sub := randomChallenge()
		t, err := c.simulate(sub, nil)
		if err != nil {
			// Simulation of a well-formed, already-validated subtree
			// cannot fail; a failure here means the tree was mutated
			// after And/Or validation, which is a programming error.
			panic("zksk: simulate failed for validated Or branch: " + err.Error())
		}
		p.subchallenges[i] = sub
		p.simResponses[i] = t.Response
		commitments[i] = t.Commitment
	}
	commitments[p.chosenIndex] = p.chosenProver.commit(randomizers)
	return commitments
}

func (p *orProverNode) respond(challenge *big.Int) any {
	others := make([]*big.Int, 0, len(p.subchallenges)-1)
	for i, s := range p.subchallenges {
		if i != p.chosenIndex {
			others = append(others, s)
		}
	}
	residual := residualChallenge(others, challenge)
	p.subchallenges[p.chosenIndex] = residual
	p.simResponses[p.chosenIndex] = p.chosenProver.respond(residual)

	return orResponse{
		Subchallenges: p.subchallenges,
		Responses:     p.simResponses,
	}
}
