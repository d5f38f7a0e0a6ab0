package zksk

import (
	"bytes"
	"math/big"
)

// Statement is a proof expression: a single Leaf relation or an
// And/Or composition of Leaves, ready to be proved, verified, or
// simulated. The zero value is not usable; build one with
// NewStatement, And, or Or.
type Statement struct {
	root node
}

// NewStatement lifts a single Leaf relation into a Statement.
func NewStatement(l Leaf) *Statement {
	return &Statement{root: newLeafNode(l)}
}

// And combines statements into a conjunction: the prover must know a
// witness for every child, and a Secret reoccurring across children
// resolves to one shared response. Nested Ands are flattened.
func And(stmts ...*Statement) (*Statement, error) {
	nodes := make([]node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s.root
	}
	root, err := buildAnd(nodes...)
	if err != nil {
		return nil, err
	}
	return &Statement{root: root}, nil
}

// Or combines statements into a disjunction: the prover need only
// know a witness for one child, and the resulting proof reveals
// nothing about which. Nested Ors are flattened.
func Or(stmts ...*Statement) (*Statement, error) {
	nodes := make([]node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s.root
	}
	root, err := buildOr(nodes...)
	if err != nil {
		return nil, err
	}
	return &Statement{root: root}, nil
}

// Prove runs the full non-interactive protocol: precommit, commit,
// Fiat–Shamir challenge derivation bound to message and this
// Statement's relation, and response. ok is false if witness is
// missing a Secret this Statement needs for any branch it could use —
// this is MissingWitness, signalled by the bool, never by err.
func (s *Statement) Prove(witness WitnessMap, message []byte) (transcript *NITranscript, ok bool, err error) {
	prover, ok := s.root.buildProver(witness)
	if !ok {
		return nil, false, nil
	}

	statementHash, err := prehashStatement(s.root)
	if err != nil {
		return nil, true, err
	}

	precommitment := prover.precommit()
	commitment := prover.commit(make(WitnessMap))
	challenge, err := deriveChallenge(statementHash, commitment, precommitment, message)
	if err != nil {
		return nil, true, err
	}
	response := prover.respond(challenge)

	return &NITranscript{
		StatementHash: statementHash,
		Precommitment: precommitment,
		Challenge:     challenge,
		Response:      response,
	}, true, nil
}

// Verify checks a non-interactive transcript against this Statement
// and message. Per spec, the transcript carries no commitment: Verify
// recomputes one from the challenge and response, then recomputes the
// challenge from that and compares against the one in the transcript.
// A false result with a nil error is an ordinary proof rejection
// (inconsistent responses, a recomputed challenge mismatch); a
// non-nil error means the transcript could not even be evaluated
// against this Statement (wrong relation entirely).
func (s *Statement) Verify(transcript *NITranscript, message []byte) (bool, error) {
	statementHash, err := prehashStatement(s.root)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(statementHash, transcript.StatementHash) {
		return false, &StatementMismatchError{}
	}

	verifier := s.root.buildVerifier()
	verifier.processPrecommitment(transcript.Precommitment)

	if !verifier.checkAdequateLHS() {
		return false, nil
	}

	if !verifier.checkResponseConsistency(transcript.Response, make(WitnessMap)) {
		return false, nil
	}

	recomputed, err := verifier.recomputeCommitment(transcript.Challenge, transcript.Response)
	if err != nil {
		return false, nil
	}

	expectedChallenge, err := deriveChallenge(statementHash, recomputed, transcript.Precommitment, message)
	if err != nil {
		return false, err
	}
	return expectedChallenge.Cmp(transcript.Challenge) == 0, nil
}

// Simulate produces a full simulation transcript for this Statement
// without any witness, for an optionally supplied challenge (drawn
// uniformly if nil). Unlike Prove, the commitment is carried in the
// result rather than omitted, since the result is not a wire-format
// NI proof: it exists to let VerifySimulationConsistency check HVZK
// directly, not to be verified via Fiat–Shamir against a message.
func (s *Statement) Simulate(challenge *big.Int) (*SimulationTranscript, error) {
	t, err := s.root.simulate(challenge, make(WitnessMap))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AsNITranscript reinterprets a simulation transcript as a wire-shaped
// NI transcript bound to this Statement, dropping its commitment (an
// NI transcript never carries one — see NITranscript). It exists to
// probe the Fiat–Shamir boundary directly: a simulated transcript's
// challenge was drawn independently of H(statement‖commitment‖...),
// so feeding the result to Verify is expected to reject it, even
// though the same transcript satisfies VerifySimulationConsistency.
func (s *Statement) AsNITranscript(t *SimulationTranscript) (*NITranscript, error) {
	statementHash, err := prehashStatement(s.root)
	if err != nil {
		return nil, err
	}
	return &NITranscript{
		StatementHash: statementHash,
		Precommitment: t.Precommitment,
		Challenge:     t.Challenge,
		Response:      t.Response,
	}, nil
}

// VerifySimulationConsistency checks that a transcript's response
// recomputes to its commitment under its own challenge, without
// checking Fiat–Shamir binding to any message. This is the HVZK
// property itself: a simulated transcript must satisfy the same
// verification equations a real one does.
func (s *Statement) VerifySimulationConsistency(transcript *SimulationTranscript) (bool, error) {
	verifier := s.root.buildVerifier()
	verifier.processPrecommitment(transcript.Precommitment)
	recomputed, err := verifier.recomputeCommitment(transcript.Challenge, transcript.Response)
	if err != nil {
		return false, nil
	}
	return deepEqualJSON(recomputed, transcript.Commitment), nil
}

