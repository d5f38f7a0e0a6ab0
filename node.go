package zksk

import (
	"math/big"

	"github.com/Tiphu68/zksk/group"
)

// node is the internal representation of one expression-tree node: a
// leaf wrapping a Leaf, or an And/Or composite over child nodes. It
// mirrors spec.md §3's "Expression node" and is never exposed
// directly; callers build and hold a *Statement.
type node interface {
	secrets() []*Secret
	generators() []group.Element
	proofID() any
	families() map[group.Family]bool
	buildProver(witness WitnessMap) (proverNode, bool)
	buildVerifier() verifierNode
	simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error)
	// checkOrFlaw reports whether any Or node in this subtree binds a
	// Secret that also occurs, somewhere in the whole statement, more
	// often than it occurs inside that Or's own subtree. all is the
	// per-Secret occurrence count across the whole statement.
	checkOrFlaw(all map[*Secret]int) error
}

// proverNode drives the three-move protocol for one node in a single
// interactive (or soon-to-be-Fiat–Shamir'd) run.
type proverNode interface {
	// precommit returns this node's round-zero precommitment, or nil
	// if nothing under it needs one.
	precommit() any
	// commit builds this node's commitment. randomizers is the
	// shared randomizer map for the whole subtree (pre-filled slots
	// from an outer And are honored; missing ones are drawn here).
	commit(randomizers WitnessMap) any
	// respond computes this node's response to the global challenge.
	respond(challenge *big.Int) any
}

// verifierNode drives the verification side for one node.
type verifierNode interface {
	// recomputeCommitment reconstructs the commitment a prover should
	// have sent, from a challenge and the matching response.
	recomputeCommitment(challenge *big.Int, response any) (any, error)
	// checkResponseConsistency records this node's per-secret
	// responses into dict, returning false on a contradiction.
	checkResponseConsistency(response any, dict WitnessMap) bool
	// processPrecommitment distributes a received precommitment to
	// whatever in the subtree needs one.
	processPrecommitment(precommitment any)
	// checkAdequateLHS consults every leaf's optional adequacy check.
	checkAdequateLHS() bool
}

// leafNode adapts a Leaf into a node.
type leafNode struct {
	leaf Leaf
}

func newLeafNode(l Leaf) *leafNode { return &leafNode{leaf: l} }

func (n *leafNode) secrets() []*Secret          { return n.leaf.Secrets() }
func (n *leafNode) generators() []group.Element { return n.leaf.Generators() }
func (n *leafNode) proofID() any                      { return n.leaf.ProofID() }
func (n *leafNode) checkOrFlaw(map[*Secret]int) error { return nil }

func (n *leafNode) families() map[group.Family]bool {
	fams := make(map[group.Family]bool, 1)
	for _, g := range n.generators() {
		fams[g.Family()] = true
	}
	return fams
}

func (n *leafNode) buildProver(witness WitnessMap) (proverNode, bool) {
	filtered := witness.filter(n.secrets())
	p, ok := n.leaf.BuildProver(filtered)
	if !ok {
		return nil, false
	}
	return &leafProverNode{leaf: n.leaf, prover: p}, true
}

func (n *leafNode) buildVerifier() verifierNode {
	return &leafVerifierNode{leaf: n.leaf, verifier: n.leaf.BuildVerifier()}
}

func (n *leafNode) simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error) {
	if challenge == nil {
		challenge = randomChallenge()
	}
	return n.leaf.Simulate(challenge, responses)
}

type leafProverNode struct {
	leaf   Leaf
	prover LeafProver
}

func (p *leafProverNode) precommit() any {
	if pc, ok := p.prover.(precommitter); ok {
		return pc.Precommit()
	}
	return nil
}

func (p *leafProverNode) commit(randomizers WitnessMap) any {
	return p.prover.Commit(randomizers)
}

func (p *leafProverNode) respond(challenge *big.Int) any {
	return p.prover.Respond(challenge)
}

type leafVerifierNode struct {
	leaf     Leaf
	verifier LeafVerifier
}

func (v *leafVerifierNode) recomputeCommitment(challenge *big.Int, response any) (any, error) {
	return v.leaf.RecomputeCommitment(challenge, response)
}

func (v *leafVerifierNode) checkResponseConsistency(response any, dict WitnessMap) bool {
	return v.leaf.CheckResponseConsistency(response, dict)
}

func (v *leafVerifierNode) processPrecommitment(precommitment any) {
	if precommitment == nil {
		return
	}
	v.verifier.ProcessPrecommitment(precommitment)
}

func (v *leafVerifierNode) checkAdequateLHS() bool {
	if lc, ok := v.verifier.(lhsChecker); ok {
		return lc.CheckAdequateLHS()
	}
	if lc, ok := v.leaf.(lhsChecker); ok {
		return lc.CheckAdequateLHS()
	}
	return true
}
