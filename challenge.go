package zksk

import (
	"crypto/rand"
	"math/big"
)

// ChallengeBits is the challenge bit-length k fixed by the library.
// OR subchallenges sum modulo 2^ChallengeBits.
const ChallengeBits = 128

// challengeModulus is 2^ChallengeBits.
var challengeModulus = new(big.Int).Lsh(big.NewInt(1), ChallengeBits)

// randomChallenge draws a uniform challenge in [0, 2^ChallengeBits).
func randomChallenge() *big.Int {
	c, err := rand.Int(rand.Reader, challengeModulus)
	if err != nil {
		// crypto/rand.Int returns an error only when reading from
		// rand.Reader fails; challengeModulus is always positive.
		panic("zksk: crypto/rand failure: " + err.Error())
	}
	return c
}

// sumChallenges returns the sum of cs, reduced modulo 2^ChallengeBits.
func sumChallenges(cs []*big.Int) *big.Int {
	sum := new(big.Int)
	for _, c := range cs {
		sum.Add(sum, c)
	}
	return sum.Mod(sum, challengeModulus)
}

// residualChallenge computes the subchallenge an Or proof's real
// branch must use so that it and others sum to global modulo
// 2^ChallengeBits: residual = -(Σ others - global) mod 2^k.
func residualChallenge(others []*big.Int, global *big.Int) *big.Int {
	sum := new(big.Int)
	for _, c := range others {
		sum.Add(sum, c)
	}
	sum.Sub(sum, global)
	sum.Neg(sum)
	return sum.Mod(sum, challengeModulus)
}

// challengesSumTo reports whether subchallenges sum to global modulo
// 2^ChallengeBits.
func challengesSumTo(subchallenges []*big.Int, global *big.Int) bool {
	return sumChallenges(subchallenges).Cmp(new(big.Int).Mod(global, challengeModulus)) == 0
}

// randomScalar draws a uniform value in [0, order). Used wherever a
// randomizer or simulated response must be distributed like a real
// scalar in the relation's own group, which is a much larger and
// different domain than the ChallengeBits-wide challenge space.
func randomScalar(order *big.Int) *big.Int {
	s, err := rand.Int(rand.Reader, order)
	if err != nil {
		panic("zksk: crypto/rand failure: " + err.Error())
	}
	return s
}

// uniformIndex draws a uniformly random index in [0, n). Used by Or to
// pick which candidate branch to prove honestly, so that when more
// than one child has an available witness, which one was used is not
// itself observable.
func uniformIndex(n int) int {
	if n == 1 {
		return 0
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("zksk: crypto/rand failure: " + err.Error())
	}
	return int(i.Int64())
}
