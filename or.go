package zksk

import (
	"math/big"

	"github.com/Tiphu68/zksk/group"
)

// buildOr combines two or more nodes into a disjunction: the prover
// knows a witness for at least one child and proves that child
// honestly while simulating the rest, such that a verifier learns
// nothing about which child was real. Or(Or(a, b), c) is flattened the
// same way And flattens nested Ands. Or is subject to the same
// group-order coherence requirement as And.
func buildOr(nodes ...node) (node, error) {
	if len(nodes) < 2 {
		return nil, &ConstructionError{Kind: "Or", Got: len(nodes)}
	}
	var children []node
	for _, n := range nodes {
		if o, ok := n.(*orNode); ok {
			children = append(children, o.children...)
		} else {
			children = append(children, n)
		}
	}
	on := &orNode{children: children}
	if err := checkFamilyCoherence(on); err != nil {
		return nil, err
	}
	if err := checkGroupCoherence(on); err != nil {
		return nil, err
	}
	if err := validateOrFlaws(on); err != nil {
		return nil, err
	}
	return on, nil
}

// orNode is the internal node for a disjunction of subproofs.
type orNode struct {
	children []node
}

// orProofID is the canonical, serializable descriptor of an Or node's
// relation, used when deriving the statement hash.
type orProofID struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children"`
}

func (n *orNode) secrets() []*Secret {
	var out []*Secret
	for _, c := range n.children {
		out = append(out, c.secrets()...)
	}
	return out
}

func (n *orNode) generators() []group.Element {
	var out []group.Element
	for _, c := range n.children {
		out = append(out, c.generators()...)
	}
	return out
}

func (n *orNode) proofID() any {
	ids := make([]any, len(n.children))
	for i, c := range n.children {
		ids[i] = c.proofID()
	}
	return orProofID{Kind: "or", Children: ids}
}

func (n *orNode) families() map[group.Family]bool {
	fams := make(map[group.Family]bool)
	for _, c := range n.children {
		for f := range c.families() {
			fams[f] = true
		}
	}
	return fams
}

// checkOrFlaw first checks this Or's own secrets against the whole
// statement's occurrence counts, then recurses into children so a
// nested Or is checked against the same global counts.
func (n *orNode) checkOrFlaw(all map[*Secret]int) error {
	own := countSecrets(n.secrets())
	for s, c := range own {
		if all[s] > c {
			return &OrFlawError{Secret: s}
		}
	}
	for _, c := range n.children {
		if err := c.checkOrFlaw(all); err != nil {
			return err
		}
	}
	return nil
}

func (n *orNode) buildProver(witness WitnessMap) (proverNode, bool) {
	var candidates []int
	provers := make([]proverNode, len(n.children))
	for i, c := range n.children {
		if p, ok := c.buildProver(witness); ok {
			provers[i] = p
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	chosen := candidates[uniformIndex(len(candidates))]
	return &orProverNode{
		children:     n.children,
		chosenIndex:  chosen,
		chosenProver: provers[chosen],
	}, true
}

func (n *orNode) buildVerifier() verifierNode {
	verifiers := make([]verifierNode, len(n.children))
	for i, c := range n.children {
		verifiers[i] = c.buildVerifier()
	}
	return &orVerifierNode{children: verifiers}
}

// simulate presimulates every child independently under freshly drawn
// subchallenges that sum to the overall challenge, exactly as a real
// Or proof would look to a verifier, but without designating any
// child as the real one. Matches zksk's original OrProof.simulate_proof,
// which calls each subproof's own simulate with no shared responses
// map: an Or never threads responses across its children.
func (n *orNode) simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error) {
	if challenge == nil {
		challenge = randomChallenge()
	}
	subchallenges := make([]*big.Int, len(n.children))
	commitments := make([]any, len(n.children))
	respOut := make([]any, len(n.children))
	for i := 0; i < len(n.children)-1; i++ {
		subchallenges[i] = randomChallenge()
	}
	last := len(n.children) - 1
	subchallenges[last] = residualChallenge(subchallenges[:last], challenge)
	for i, c := range n.children {
		t, err := c.simulate(subchallenges[i], nil)
		if err != nil {
			return SimulationTranscript{}, err
		}
		commitments[i] = t.Commitment
		respOut[i] = t.Response
	}
	return SimulationTranscript{
		Challenge:  challenge,
		Commitment: commitments,
		Response:   orResponse{Subchallenges: subchallenges, Responses: respOut},
	}, nil
}
