package zksk

import (
	"math/big"

	"github.com/Tiphu68/zksk/group"
)

// Leaf is the contract a concrete Sigma protocol must satisfy to be
// used at the leaves of a composite proof. The engine never inspects
// a leaf's relation; it only drives this interface. Commitment,
// response and precommitment values are carried as `any` because
// their shape is leaf-specific (a DL-rep leaf's commitment is a
// single group.Element; other relations may need a tuple).
type Leaf interface {
	// Secrets returns the ordered bag of secret variables this leaf's
	// relation is stated over, with multiplicity.
	Secrets() []*Secret
	// Generators returns the ordered bag of generators paired 1:1
	// with Secrets.
	Generators() []group.Element
	// ProofID returns a canonical, serializable descriptor of this
	// leaf's relation (its bases and left-hand side), used to derive
	// the statement hash. Two leaves describing the same relation
	// must produce equal (by reflect.DeepEqual / encoding) ProofIDs.
	ProofID() any

	// BuildProver returns a prover for this leaf given a witness map
	// restricted to (a subset of) its own secrets. ok is false if a
	// required secret is missing from witness: this is how
	// MissingWitness is signalled, never as an error.
	BuildProver(witness WitnessMap) (prover LeafProver, ok bool)
	// BuildVerifier returns a fresh verifier for this leaf.
	BuildVerifier() LeafVerifier

	// Simulate produces a transcript for this leaf without a witness,
	// for the given challenge (never nil: the engine draws one before
	// calling Simulate when its own caller supplied none) and an
	// optional map of enforced responses (for secrets reoccurring
	// under an enclosing And). When responses supplies a value for one
	// of this leaf's secrets, the simulated response for that secret
	// must equal it.
	Simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error)
	// RecomputeCommitment reconstructs the commitment a verifier
	// should have received, from a challenge and the matching
	// response, so it can be compared against the one actually
	// received.
	RecomputeCommitment(challenge *big.Int, response any) (commitment any, err error)

	// DecodeResponse parses this leaf's response from its wire JSON
	// encoding. The engine only ever sees a leaf's response as `any`;
	// this is how it recovers a concrete value from bytes without
	// needing to know the leaf's response type.
	DecodeResponse(data []byte) (any, error)

	// CheckResponseConsistency records this leaf's per-secret entries
	// from response into dict (keyed by Secret identity), and reports
	// false if a secret already present in dict disagrees with the
	// value this leaf just produced.
	CheckResponseConsistency(response any, dict WitnessMap) bool
}

// LeafProver drives the three-move protocol for one leaf instance
// carrying a witness. A leaf whose relation needs a round-zero
// precommitment additionally implements precommitter; the engine
// checks for it via type assertion rather than requiring it here.
type LeafProver interface {
	// Commit builds the leaf's commitment. randomizers supplies a
	// pre-drawn value for any of this leaf's secrets that an
	// enclosing And has already fixed; the leaf must draw the rest
	// itself and must not overwrite supplied entries.
	Commit(randomizers WitnessMap) any
	// Respond computes the leaf's response to challenge.
	Respond(challenge *big.Int) any
}

// LeafVerifier drives the verification side for one leaf instance.
type LeafVerifier interface {
	// ProcessPrecommitment receives this leaf's precommitment, if the
	// leaf's protocol has one, and may use it to finalize its
	// statement (e.g. an auxiliary base derived from the
	// precommitment).
	ProcessPrecommitment(precommitment any)
}

// precommitter is implemented by leaves whose protocol needs a
// round-zero precommitment before proving begins. Leaves without one
// simply don't implement it; the engine checks via type assertion.
type precommitter interface {
	Precommit() any
}

// lhsChecker is implemented by leaves whose left-hand side can encode
// an inadequate (e.g. self-contradictory) statement that should fail
// verification outright without running the proof equations. Leaves
// that always have an adequate LHS don't implement it; absence means
// "adequate".
type lhsChecker interface {
	CheckAdequateLHS() bool
}
