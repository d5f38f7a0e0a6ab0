package zksk

import (
	"math/big"
	"testing"

	"github.com/Tiphu68/zksk/group"
)

// TestOrChosenBranchIsAlwaysACandidate is the white-box counterpart of
// S2 (spec.md §8 property 7): among several children, only those for
// which the witness actually has an entry may ever be chosen as the
// honestly-proved branch. A branch without a witness entry must never
// be selected, across many draws of the random candidate index.
func TestOrChosenBranchIsAlwaysACandidate(t *testing.T) {
	grp := group.SecP256k1()

	knownSecrets := []*Secret{NewSecret("x1"), NewSecret("x2"), NewSecret("x3")}
	values := []*big.Int{big.NewInt(11), big.NewInt(22), big.NewInt(33)}

	var children []node
	for i, s := range knownSecrets {
		children = append(children, newLeafNode(newTestRelation(grp, s, values[i])))
	}
	// A fourth child bound to a Secret that never appears in the
	// witness below: never a legal candidate.
	unknown := NewSecret("x4")
	children = append(children, newLeafNode(newTestRelation(grp, unknown, big.NewInt(44))))

	root, err := buildOr(children...)
	if err != nil {
		t.Fatalf("buildOr: %v", err)
	}
	on := root.(*orNode)

	witness := WitnessMap{
		knownSecrets[0]: values[0],
		knownSecrets[1]: values[1],
		knownSecrets[2]: values[2],
	}
	candidates := map[int]bool{0: true, 1: true, 2: true}

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		p, ok := on.buildProver(witness)
		if !ok {
			t.Fatal("buildProver: expected a witness-bearing branch to be found")
		}
		op, ok := p.(*orProverNode)
		if !ok {
			t.Fatalf("expected *orProverNode, got %T", p)
		}
		if !candidates[op.chosenIndex] {
			t.Fatalf("chosenIndex=%d is not a witness-bearing candidate", op.chosenIndex)
		}
		seen[op.chosenIndex] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected the chosen branch to vary across draws, only saw %v", seen)
	}
}
