package dlrep_test

import (
	"math/big"
	"testing"

	zksk "github.com/Tiphu68/zksk"
	"github.com/Tiphu68/zksk/group"
	"github.com/Tiphu68/zksk/primitives/dlrep"
)

func TestRelationProveVerify(t *testing.T) {
	cases := []struct {
		name string
		grp  group.Group
	}{
		{"SecP256k1", group.SecP256k1()},
		{"P256", group.P256()},
		{"Ristretto255", group.Ristretto255()},
		{"P384", group.P384()},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			grp := tc.grp
			g0, g1 := grp.Random(), grp.Random()
			x0, x1 := big.NewInt(3), big.NewInt(41)
			y := grp.Element().Add(
				grp.Element().Scale(g0, x0),
				grp.Element().Scale(g1, x1),
			)

			s0, s1 := zksk.NewSecret("x0"), zksk.NewSecret("x1")
			rel := dlrep.NewRelation(grp, y, []*zksk.Secret{s0, s1}, []group.Element{g0, g1})

			stmt := zksk.NewStatement(rel)
			witness := zksk.WitnessMap{s0: x0, s1: x1}

			tr, ok, err := stmt.Prove(witness, []byte("msg"))
			if err != nil || !ok {
				t.Fatalf("Prove: ok=%v err=%v", ok, err)
			}
			valid, err := stmt.Verify(tr, []byte("msg"))
			if err != nil || !valid {
				t.Fatalf("Verify: valid=%v err=%v", valid, err)
			}
		})
	}
}

func TestRelationMissingWitness(t *testing.T) {
	grp := group.SecP256k1()
	g0 := grp.Random()
	x0 := big.NewInt(9)
	y := grp.Element().Scale(g0, x0)
	s0 := zksk.NewSecret("x0")
	rel := dlrep.NewRelation(grp, y, []*zksk.Secret{s0}, []group.Element{g0})
	stmt := zksk.NewStatement(rel)

	_, ok, err := stmt.Prove(zksk.WitnessMap{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a missing witness entry")
	}
}

func TestPedersenOpening(t *testing.T) {
	grp := group.SecP256k1()
	h := grp.Random()
	value := big.NewInt(17)
	blinding := big.NewInt(23)
	valueSecret := zksk.NewSecret("value")
	blindingSecret := zksk.NewSecret("blinding")

	rel := dlrep.NewPedersenOpening(grp, h, value, blinding, valueSecret, blindingSecret)
	stmt := zksk.NewStatement(rel)
	witness := zksk.WitnessMap{valueSecret: value, blindingSecret: blinding}

	tr, ok, err := stmt.Prove(witness, []byte("opening"))
	if err != nil || !ok {
		t.Fatalf("Prove: ok=%v err=%v", ok, err)
	}
	valid, err := stmt.Verify(tr, []byte("opening"))
	if err != nil || !valid {
		t.Fatalf("Verify: valid=%v err=%v", valid, err)
	}
}
