package zksk

import "github.com/Tiphu68/zksk/group"

// secretGenerators maps a Secret to every generator it is bound to
// across a subtree, in first-seen order. A reoccurring Secret (the
// same handle used at more than one leaf) collects one entry per
// occurrence; checkGroupCoherence then requires they all share a
// group order.
type secretGenerators map[*Secret][]group.Element

func collectSecretGenerators(n node) secretGenerators {
	sg := make(secretGenerators)
	secrets := n.secrets()
	gens := n.generators()
	for i, s := range secrets {
		sg[s] = append(sg[s], gens[i])
	}
	return sg
}

// checkGroupCoherence verifies that every Secret reoccurring across a
// subtree is bound only to generators whose groups share an order.
// Without this, a single response computed mod one group's order
// would be meaningless for a generator drawn from a different-order
// group. Mirrors spec.md §3 invariant "reoccurring Secrets share a
// group order".
func checkGroupCoherence(n node) error {
	for s, gens := range collectSecretGenerators(n) {
		order := gens[0].GroupOrder()
		for _, g := range gens[1:] {
			if g.GroupOrder().Cmp(order) != 0 {
				return &GroupMismatchError{Secret: s}
			}
		}
	}
	return nil
}

// checkFamilyCoherence verifies that every generator in a subtree
// belongs to the same wire-encoding family, so the Fiat–Shamir
// encoder has one canonical way to serialize the whole tree.
func checkFamilyCoherence(n node) error {
	if len(n.families()) > 1 {
		return &MixedGeneratorFamilyError{}
	}
	return nil
}

// validateOrFlaws checks every Or node under root for the OR flaw: a
// Secret bound both inside the Or's subtree and somewhere else in the
// whole statement. Mirrors zksk's original check_or_flaw; without it,
// an Or's hidden branch stops being hidden, since a shared Secret lets
// a verifier correlate responses across the branch boundary.
func validateOrFlaws(root node) error {
	return root.checkOrFlaw(countSecrets(root.secrets()))
}

// countSecrets tallies occurrences of each Secret in a bag (a slice
// with multiplicity, as returned by node.secrets()).
func countSecrets(secrets []*Secret) map[*Secret]int {
	counts := make(map[*Secret]int, len(secrets))
	for _, s := range secrets {
		counts[s]++
	}
	return counts
}
