package zksk

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/Tiphu68/zksk/group"
)

func TestDecodeResponseRoundTripsAndOfLeaves(t *testing.T) {
	grp := group.SecP256k1()
	l1 := newLeafNode(newTestRelation(grp, NewSecret("a"), big.NewInt(3)))
	l2 := newLeafNode(newTestRelation(grp, NewSecret("b"), big.NewInt(5)))

	root, err := buildAnd(l1, l2)
	if err != nil {
		t.Fatalf("buildAnd: %v", err)
	}

	stmt := &Statement{root: root}
	witness := WitnessMap{l1.leaf.(*testRelation).secret: big.NewInt(3), l2.leaf.(*testRelation).secret: big.NewInt(5)}

	tr, ok, err := stmt.Prove(witness, []byte("msg"))
	if err != nil || !ok {
		t.Fatalf("Prove: ok=%v err=%v", ok, err)
	}

	encoded, err := json.Marshal(tr.Response)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	decoded, err := decodeResponse(root, encoded)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if !deepEqualJSON(decoded, tr.Response) {
		t.Fatal("decoded response does not match the original response")
	}
}

func TestDecodeResponseRejectsMalformedAndShape(t *testing.T) {
	grp := group.SecP256k1()
	l1 := newLeafNode(newTestRelation(grp, NewSecret("a"), big.NewInt(3)))
	l2 := newLeafNode(newTestRelation(grp, NewSecret("b"), big.NewInt(5)))
	root, err := buildAnd(l1, l2)
	if err != nil {
		t.Fatalf("buildAnd: %v", err)
	}

	// Only one of the two children's responses: wrong shape.
	malformed := []byte(`{"responses":["3"]}`)
	if _, err := decodeResponse(root, malformed); err != ErrMalformedResponse {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDecodeResponseRejectsMalformedOrShape(t *testing.T) {
	grp := group.SecP256k1()
	l1 := newLeafNode(newTestRelation(grp, NewSecret("a"), big.NewInt(3)))
	l2 := newLeafNode(newTestRelation(grp, NewSecret("b"), big.NewInt(5)))
	root, err := buildOr(l1, l2)
	if err != nil {
		t.Fatalf("buildOr: %v", err)
	}

	// Subchallenges and responses lengths disagree with the child count.
	malformed := []byte(`{"subchallenges":[1],"responses":["3"]}`)
	if _, err := decodeResponse(root, malformed); err != ErrMalformedResponse {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
