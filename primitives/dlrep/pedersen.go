package dlrep

import (
	"math/big"

	zksk "github.com/Tiphu68/zksk"
	"github.com/Tiphu68/zksk/group"
	"github.com/Tiphu68/zksk/util"
)

// NewPedersenOpening builds the Relation for proving knowledge of an
// opening (value, blinding) of a Pedersen commitment C = value*G +
// blinding*H, where G is grp's generator and h is the commitment's
// blinding base. The commitment itself is computed with
// util.PedersenCommit, so the returned Relation's Y is exactly the
// value a verifier would already hold.
func NewPedersenOpening(grp group.Group, h group.Element, value, blinding *big.Int, valueSecret, blindingSecret *zksk.Secret) *Relation {
	commitment := util.PedersenCommit(value, blinding, h, grp)
	bases := []group.Element{grp.Generator(), h}
	secrets := []*zksk.Secret{valueSecret, blindingSecret}
	return NewRelation(grp, commitment, secrets, bases)
}
