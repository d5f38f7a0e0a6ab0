package zksk

import (
	"math/big"

	"github.com/Tiphu68/zksk/group"
)

// buildAnd combines two or more nodes into a conjunction: every child
// shares the same global challenge, and a Secret reoccurring across
// children shares exactly one randomizer and therefore one response.
// And(And(a, b), c) is flattened into a single three-child And, the
// same normalization zksk's original AndProof constructor performs.
func buildAnd(nodes ...node) (node, error) {
	if len(nodes) < 2 {
		return nil, &ConstructionError{Kind: "And", Got: len(nodes)}
	}
	var children []node
	for _, n := range nodes {
		if a, ok := n.(*andNode); ok {
			children = append(children, a.children...)
		} else {
			children = append(children, n)
		}
	}
	an := &andNode{children: children}
	if err := checkFamilyCoherence(an); err != nil {
		return nil, err
	}
	if err := checkGroupCoherence(an); err != nil {
		return nil, err
	}
	if err := validateOrFlaws(an); err != nil {
		return nil, err
	}
	return an, nil
}

// andNode is the internal node for a conjunction of subproofs.
type andNode struct {
	children []node
}

// andProofID is the canonical, serializable descriptor of an And
// node's relation, used when deriving the statement hash.
type andProofID struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children"`
}

func (n *andNode) secrets() []*Secret {
	var out []*Secret
	for _, c := range n.children {
		out = append(out, c.secrets()...)
	}
	return out
}

func (n *andNode) generators() []group.Element {
	var out []group.Element
	for _, c := range n.children {
		out = append(out, c.generators()...)
	}
	return out
}

func (n *andNode) proofID() any {
	ids := make([]any, len(n.children))
	for i, c := range n.children {
		ids[i] = c.proofID()
	}
	return andProofID{Kind: "and", Children: ids}
}

func (n *andNode) families() map[group.Family]bool {
	fams := make(map[group.Family]bool)
	for _, c := range n.children {
		for f := range c.families() {
			fams[f] = true
		}
	}
	return fams
}

func (n *andNode) checkOrFlaw(all map[*Secret]int) error {
	for _, c := range n.children {
		if err := c.checkOrFlaw(all); err != nil {
			return err
		}
	}
	return nil
}

func (n *andNode) buildProver(witness WitnessMap) (proverNode, bool) {
	provers := make([]proverNode, len(n.children))
	for i, c := range n.children {
		p, ok := c.buildProver(witness)
		if !ok {
			return nil, false
		}
		provers[i] = p
	}
	return &andProverNode{children: provers}, true
}

func (n *andNode) buildVerifier() verifierNode {
	verifiers := make([]verifierNode, len(n.children))
	for i, c := range n.children {
		verifiers[i] = c.buildVerifier()
	}
	return &andVerifierNode{children: verifiers}
}

// simulate draws one shared randomizer per distinct Secret in the
// subtree (honoring any already present in responses) and
// hands every child the same challenge and shared response map, so a
// reoccurring Secret simulates to one consistent response everywhere.
// Each draw is uniform over that Secret's own generator's group order,
// matching the distribution a real response (z = r + c·x mod order)
// has — not the narrower ChallengeBits-wide challenge domain, which
// would make a simulated branch distinguishable from a real one by
// response magnitude alone.
func (n *andNode) simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error) {
	if challenge == nil {
		challenge = randomChallenge()
	}
	shared := responses.clone()
	sg := collectSecretGenerators(n)
	for _, s := range n.secrets() {
		if _, ok := shared[s]; !ok {
			shared[s] = randomScalar(sg[s][0].GroupOrder())
		}
	}
	commitments := make([]any, len(n.children))
	responsesOut := make([]any, len(n.children))
	for i, c := range n.children {
		t, err := c.simulate(challenge, shared)
		if err != nil {
			return SimulationTranscript{}, err
		}
		commitments[i] = t.Commitment
		responsesOut[i] = t.Response
	}
	return SimulationTranscript{
		Challenge:  challenge,
		Commitment: commitments,
		Response:   andResponse{Responses: responsesOut},
	}, nil
}
