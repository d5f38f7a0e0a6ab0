package zksk

import (
	"crypto/rand"
	"encoding/json"
	"math/big"

	"github.com/Tiphu68/zksk/group"
)

// testRelation is a minimal single-base Schnorr leaf (y = x*G) used
// only by this package's white-box tests, so the AND/OR/transcript
// machinery can be exercised without depending on primitives/dlrep
// (which imports this package, so it cannot be imported back).
type testRelation struct {
	grp    group.Group
	y      group.Element
	secret *Secret
	base   group.Element
}

func newTestRelation(grp group.Group, secret *Secret, value *big.Int) *testRelation {
	base := grp.Random()
	y := grp.Element().Scale(base, value)
	return &testRelation{grp: grp, y: y, secret: secret, base: base}
}

func (r *testRelation) Secrets() []*Secret          { return []*Secret{r.secret} }
func (r *testRelation) Generators() []group.Element { return []group.Element{r.base} }

type testRelationID struct {
	Y    group.Element `json:"y"`
	Base group.Element `json:"base"`
}

func (r *testRelation) ProofID() any {
	return testRelationID{Y: r.y, Base: r.base}
}

func (r *testRelation) BuildProver(witness WitnessMap) (LeafProver, bool) {
	v, ok := witness[r.secret]
	if !ok {
		return nil, false
	}
	return &testProver{relation: r, value: v}, true
}

func (r *testRelation) BuildVerifier() LeafVerifier { return &testVerifier{relation: r} }

func (r *testRelation) Simulate(challenge *big.Int, responses WitnessMap) (SimulationTranscript, error) {
	z, ok := responses[r.secret]
	if !ok {
		var err error
		z, err = rand.Int(rand.Reader, r.grp.N())
		if err != nil {
			return SimulationTranscript{}, err
		}
	}
	commitment, err := r.RecomputeCommitment(challenge, z)
	if err != nil {
		return SimulationTranscript{}, err
	}
	return SimulationTranscript{Challenge: challenge, Commitment: commitment, Response: z}, nil
}

func (r *testRelation) RecomputeCommitment(challenge *big.Int, response any) (any, error) {
	z, ok := response.(*big.Int)
	if !ok {
		return nil, ErrMalformedResponse
	}
	t := r.grp.Element().Scale(r.base, z)
	cY := r.grp.Element().Scale(r.y, challenge)
	return r.grp.Element().Subtract(t, cY), nil
}

func (r *testRelation) CheckResponseConsistency(response any, dict WitnessMap) bool {
	z, ok := response.(*big.Int)
	if !ok {
		return false
	}
	if prev, exists := dict[r.secret]; exists {
		return prev.Cmp(z) == 0
	}
	dict[r.secret] = z
	return true
}

func (r *testRelation) DecodeResponse(data []byte) (any, error) {
	var z big.Int
	if err := json.Unmarshal(data, &z); err != nil {
		return nil, err
	}
	return &z, nil
}

type testProver struct {
	relation   *testRelation
	value      *big.Int
	randomizer *big.Int
}

func (p *testProver) Commit(randomizers WitnessMap) any {
	r, ok := randomizers[p.relation.secret]
	if !ok {
		var err error
		r, err = rand.Int(rand.Reader, p.relation.grp.N())
		if err != nil {
			panic(err)
		}
		randomizers[p.relation.secret] = r
	}
	p.randomizer = r
	return p.relation.grp.Element().Scale(p.relation.base, r)
}

func (p *testProver) Respond(challenge *big.Int) any {
	z := new(big.Int).Mul(challenge, p.value)
	z.Add(z, p.randomizer)
	z.Mod(z, p.relation.grp.N())
	return z
}

type testVerifier struct {
	relation *testRelation
}

func (v *testVerifier) ProcessPrecommitment(precommitment any) {}
