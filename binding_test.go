package zksk

import (
	"math/big"
	"testing"

	"github.com/Tiphu68/zksk/group"
)

func TestAndRejectsTooFewChildren(t *testing.T) {
	grp := group.SecP256k1()
	l := newLeafNode(newTestRelation(grp, NewSecret("x"), big.NewInt(1)))
	_, err := buildAnd(l)
	if _, ok := err.(*ConstructionError); !ok {
		t.Fatalf("expected *ConstructionError, got %T: %v", err, err)
	}
}

func TestAndFlattensNestedAnds(t *testing.T) {
	grp := group.SecP256k1()
	l1 := newLeafNode(newTestRelation(grp, NewSecret("a"), big.NewInt(1)))
	l2 := newLeafNode(newTestRelation(grp, NewSecret("b"), big.NewInt(2)))
	l3 := newLeafNode(newTestRelation(grp, NewSecret("c"), big.NewInt(3)))

	inner, err := buildAnd(l1, l2)
	if err != nil {
		t.Fatalf("buildAnd inner: %v", err)
	}
	outer, err := buildAnd(inner, l3)
	if err != nil {
		t.Fatalf("buildAnd outer: %v", err)
	}
	an := outer.(*andNode)
	if len(an.children) != 3 {
		t.Fatalf("expected nested And to flatten to 3 children, got %d", len(an.children))
	}
}

func TestGroupCoherenceRejectsMismatchedOrder(t *testing.T) {
	shared := NewSecret("x")
	value := big.NewInt(7)

	l1 := newLeafNode(newTestRelation(group.SecP256k1(), shared, value))
	l2 := newLeafNode(newTestRelation(group.P384(), shared, value))

	_, err := buildAnd(l1, l2)
	if _, ok := err.(*GroupMismatchError); !ok {
		t.Fatalf("expected *GroupMismatchError, got %T: %v", err, err)
	}
}

func TestOrFlawRejectsSecretReuseAcrossBoundary(t *testing.T) {
	grp := group.SecP256k1()
	shared := NewSecret("x")
	value := big.NewInt(7)

	l1 := newLeafNode(newTestRelation(grp, shared, value))
	l2 := newLeafNode(newTestRelation(grp, shared, value))
	l3 := newLeafNode(newTestRelation(grp, NewSecret("y"), big.NewInt(9)))

	or, err := buildOr(l2, l3)
	if err != nil {
		t.Fatalf("buildOr: %v", err)
	}
	_, err = buildAnd(l1, or)
	if _, ok := err.(*OrFlawError); !ok {
		t.Fatalf("expected *OrFlawError, got %T: %v", err, err)
	}
}

func TestOrAllowsSecretReuseAcrossItsOwnChildren(t *testing.T) {
	grp := group.SecP256k1()
	shared := NewSecret("x")
	value := big.NewInt(7)

	l1 := newLeafNode(newTestRelation(grp, shared, value))
	l2 := newLeafNode(newTestRelation(grp, shared, value))

	if _, err := buildOr(l1, l2); err != nil {
		t.Fatalf("expected reusing a secret across an Or's own children to be allowed, got: %v", err)
	}
}
