package zksk

import "math/big"

// andProverNode drives And's three-move protocol: every child shares
// the global challenge, and a single randomizer map is threaded
// through all children in order, so a Secret reoccurring in more than
// one child gets exactly one randomizer and therefore one response.
type andProverNode struct {
	children []proverNode
}

func (p *andProverNode) precommit() any {
	out := make([]any, len(p.children))
	needed := false
	for i, c := range p.children {
		pc := c.precommit()
		if pc != nil {
			needed = true
		}
		out[i] = pc
	}
	if !needed {
		return nil
	}
	return out
}

// commit builds every child's commitment against one shared map: a
// map is a reference type in Go, so a randomizer a child draws for a
// Secret it shares with a later child is visible to that later child
// without And needing to inspect the map's contents itself.
func (p *andProverNode) commit(randomizers WitnessMap) any {
	shared := randomizers.clone()
	out := make([]any, len(p.children))
	for i, c := range p.children {
		out[i] = c.commit(shared)
	}
	return out
}

func (p *andProverNode) respond(challenge *big.Int) any {
	out := make([]any, len(p.children))
	for i, c := range p.children {
		out[i] = c.respond(challenge)
	}
	return andResponse{Responses: out}
}
