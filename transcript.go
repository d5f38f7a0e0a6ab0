package zksk

import (
	"encoding/json"
	"math/big"
)

// SimulationTranscript is a self-consistent (commitment, challenge,
// response, precommitment) quadruple produced without a witness,
// unlike NITranscript it carries its commitment rather than omitting
// it: VerifySimulationConsistency checks HVZK directly by recomputing
// the commitment and comparing, without going through Fiat–Shamir.
// Precommitment is nil for leaves that don't use one.
type SimulationTranscript struct {
	Challenge     *big.Int
	Commitment    any
	Precommitment any
	Response      any
}

// andResponse is the wire shape of an And node's response: the
// ordered responses of its children, in the same order the And was
// built from.
type andResponse struct {
	Responses []any
}

// orResponse is the wire shape of an Or node's response: each child's
// own subchallenge alongside its response, so a verifier can check
// the subchallenges recompose into the global challenge.
type orResponse struct {
	Subchallenges []*big.Int
	Responses     []any
}

// andResponseJSON mirrors andResponse for wire transport; each child
// response is opaque at this layer, so it round-trips as raw JSON and
// is handed to the matching child node to decode.
type andResponseJSON struct {
	Responses []json.RawMessage `json:"responses"`
}

// orResponseJSON mirrors orResponse for wire transport.
type orResponseJSON struct {
	Subchallenges []*big.Int        `json:"subchallenges"`
	Responses     []json.RawMessage `json:"responses"`
}

// MarshalJSON encodes an And response by letting each child's own
// response marshal itself, then wrapping the results as raw messages.
// Unmarshaling back into concrete types needs the matching node tree,
// so it happens in decodeResponse, not here.
func (r andResponse) MarshalJSON() ([]byte, error) {
	raws := make([]json.RawMessage, len(r.Responses))
	for i, resp := range r.Responses {
		b, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	return json.Marshal(andResponseJSON{Responses: raws})
}

// MarshalJSON encodes an Or response the same way andResponse does,
// additionally carrying the per-child subchallenges.
func (r orResponse) MarshalJSON() ([]byte, error) {
	raws := make([]json.RawMessage, len(r.Responses))
	for i, resp := range r.Responses {
		b, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	return json.Marshal(orResponseJSON{Subchallenges: r.Subchallenges, Responses: raws})
}

// decodeResponse parses a node's response from its wire JSON encoding,
// recursing through And/Or shapes down to each leaf's own
// DecodeResponse. The node tree is what supplies the schema that a
// bare json.Unmarshal into `any` could never recover.
func decodeResponse(n node, data []byte) (any, error) {
	switch t := n.(type) {
	case *leafNode:
		return t.leaf.DecodeResponse(data)
	case *andNode:
		var wire andResponseJSON
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		if len(wire.Responses) != len(t.children) {
			return nil, ErrMalformedResponse
		}
		out := make([]any, len(t.children))
		for i, c := range t.children {
			resp, err := decodeResponse(c, wire.Responses[i])
			if err != nil {
				return nil, err
			}
			out[i] = resp
		}
		return andResponse{Responses: out}, nil
	case *orNode:
		var wire orResponseJSON
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		if len(wire.Responses) != len(t.children) || len(wire.Subchallenges) != len(t.children) {
			return nil, ErrMalformedResponse
		}
		out := make([]any, len(t.children))
		for i, c := range t.children {
			resp, err := decodeResponse(c, wire.Responses[i])
			if err != nil {
				return nil, err
			}
			out[i] = resp
		}
		return orResponse{Subchallenges: wire.Subchallenges, Responses: out}, nil
	default:
		return nil, ErrMalformedResponse
	}
}
