// Package dlrep implements a discrete-log representation leaf: the
// relation Y = secrets[0]*Bases[0] + ... + secrets[k]*Bases[k] in a
// single prime-order group, with ordinary Schnorr as the one-base
// special case. It satisfies the zksk.Leaf contract, so a Relation can
// sit at any leaf position of an And/Or proof tree.
//
// Grounded on a generalized multi-base Schnorr prover/verifier, here
// translated from multiplicative mod-p notation onto the additive
// group.Element/group.Group interface so it works over both elliptic
// curve and safe-prime mod-p backends.
package dlrep

import (
	"crypto/rand"
	"encoding/json"
	"math/big"

	zksk "github.com/Tiphu68/zksk"
	"github.com/Tiphu68/zksk/group"
)

// Relation is the public statement Y = Σ secrets[i]*Bases[i]. Secrets
// and Bases are paired 1:1 and must have equal length.
type Relation struct {
	Grp    group.Group
	Y      group.Element
	Secret []*zksk.Secret
	Bases  []group.Element
}

// NewRelation builds a Relation. It panics if secrets and bases
// disagree in length, the same contract violation the Schnorr
// reference prover rejects at construction.
func NewRelation(grp group.Group, y group.Element, secrets []*zksk.Secret, bases []group.Element) *Relation {
	if len(secrets) != len(bases) {
		panic("dlrep: number of secrets and bases must match")
	}
	return &Relation{Grp: grp, Y: y, Secret: secrets, Bases: bases}
}

func (r *Relation) Secrets() []*zksk.Secret     { return r.Secret }
func (r *Relation) Generators() []group.Element { return r.Bases }

// relationID is the canonical, JSON-serializable descriptor of a
// Relation's statement, used to derive the engine's statement hash.
type relationID struct {
	Kind  string          `json:"kind"`
	Group string          `json:"group"`
	Y     group.Element   `json:"y"`
	Bases []group.Element `json:"bases"`
}

func (r *Relation) ProofID() any {
	return relationID{Kind: "dlrep", Group: r.Grp.Name(), Y: r.Y, Bases: r.Bases}
}

func (r *Relation) BuildProver(witness zksk.WitnessMap) (zksk.LeafProver, bool) {
	values := make([]*big.Int, len(r.Secret))
	for i, s := range r.Secret {
		v, ok := witness[s]
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return &prover{relation: r, values: values}, true
}

func (r *Relation) BuildVerifier() zksk.LeafVerifier {
	return &verifier{relation: r}
}

// Simulate draws a response for every secret (honoring any forced by
// responses, for a secret this Relation shares with a sibling leaf
// under an enclosing And) and recomputes the matching commitment, so
// the resulting transcript satisfies the verification equation for
// challenge without any witness.
func (r *Relation) Simulate(challenge *big.Int, responses zksk.WitnessMap) (zksk.SimulationTranscript, error) {
	order := r.Grp.N()
	resp := make([]*big.Int, len(r.Secret))
	for i, s := range r.Secret {
		if v, ok := responses[s]; ok {
			resp[i] = v
		} else {
			resp[i] = randomScalar(order)
		}
	}
	commitment, err := r.RecomputeCommitment(challenge, resp)
	if err != nil {
		return zksk.SimulationTranscript{}, err
	}
	return zksk.SimulationTranscript{
		Challenge:  challenge,
		Commitment: commitment,
		Response:   resp,
	}, nil
}

// RecomputeCommitment reconstructs T = Σ z_i*Bases[i] - challenge*Y,
// which equals the real commitment Σ r_i*Bases[i] exactly when
// response was honestly computed as z_i = r_i + challenge*secrets[i].
func (r *Relation) RecomputeCommitment(challenge *big.Int, response any) (any, error) {
	resp, ok := response.([]*big.Int)
	if !ok || len(resp) != len(r.Bases) {
		return nil, zksk.ErrMalformedResponse
	}
	t := r.Grp.Identity()
	for i, z := range resp {
		term := r.Grp.Element().Scale(r.Bases[i], z)
		t = r.Grp.Element().Add(t, term)
	}
	cY := r.Grp.Element().Scale(r.Y, challenge)
	return r.Grp.Element().Subtract(t, cY), nil
}

func (r *Relation) CheckResponseConsistency(response any, dict zksk.WitnessMap) bool {
	resp, ok := response.([]*big.Int)
	if !ok || len(resp) != len(r.Secret) {
		return false
	}
	for i, s := range r.Secret {
		if prev, exists := dict[s]; exists {
			if prev.Cmp(resp[i]) != 0 {
				return false
			}
		} else {
			dict[s] = resp[i]
		}
	}
	return true
}

func (r *Relation) DecodeResponse(data []byte) (any, error) {
	var values []*big.Int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	if len(values) != len(r.Bases) {
		return nil, zksk.ErrMalformedResponse
	}
	return values, nil
}

func randomScalar(order *big.Int) *big.Int {
	v, err := rand.Int(rand.Reader, order)
	if err != nil {
		panic("dlrep: crypto/rand failure: " + err.Error())
	}
	return v
}

// prover carries a witness through the three-move protocol for one
// Relation instance.
type prover struct {
	relation   *Relation
	values     []*big.Int
	randomizer []*big.Int
}

// Commit builds T = Σ r_i*Bases[i], drawing r_i fresh unless
// randomizers already supplies one for Secret i (an enclosing And
// sharing that Secret with a sibling leaf drew it first).
func (p *prover) Commit(randomizers zksk.WitnessMap) any {
	order := p.relation.Grp.N()
	p.randomizer = make([]*big.Int, len(p.relation.Secret))
	t := p.relation.Grp.Identity()
	for i, s := range p.relation.Secret {
		r, ok := randomizers[s]
		if !ok {
			r = randomScalar(order)
			randomizers[s] = r
		}
		p.randomizer[i] = r
		term := p.relation.Grp.Element().Scale(p.relation.Bases[i], r)
		t = p.relation.Grp.Element().Add(t, term)
	}
	return t
}

// Respond computes z_i = r_i + challenge*secrets[i] mod the group order.
func (p *prover) Respond(challenge *big.Int) any {
	order := p.relation.Grp.N()
	resp := make([]*big.Int, len(p.relation.Secret))
	for i := range p.relation.Secret {
		z := new(big.Int).Mul(challenge, p.values[i])
		z.Add(z, p.randomizer[i])
		z.Mod(z, order)
		resp[i] = z
	}
	return resp
}

// verifier drives the verification side for one Relation instance.
// Relation has no precommitment, so ProcessPrecommitment is a no-op.
type verifier struct {
	relation *Relation
}

func (v *verifier) ProcessPrecommitment(precommitment any) {}
