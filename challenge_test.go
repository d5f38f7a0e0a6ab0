package zksk

import (
	"math/big"
	"testing"
)

func TestResidualChallengeSumsToGlobal(t *testing.T) {
	global := randomChallenge()
	others := []*big.Int{randomChallenge(), randomChallenge(), randomChallenge()}

	residual := residualChallenge(others, global)
	all := append(append([]*big.Int{}, others...), residual)

	if !challengesSumTo(all, global) {
		t.Fatal("others plus the residual challenge must sum to global mod 2^ChallengeBits")
	}
}

func TestChallengesSumToRejectsWrongSum(t *testing.T) {
	global := randomChallenge()
	subs := []*big.Int{randomChallenge(), randomChallenge()}
	if challengesSumTo(subs, global) {
		t.Fatal("two independently drawn challenges should not coincidentally sum to global")
	}
}

func TestUniformIndexSingleCandidate(t *testing.T) {
	if got := uniformIndex(1); got != 0 {
		t.Fatalf("uniformIndex(1) = %d, want 0", got)
	}
}

func TestUniformIndexInRange(t *testing.T) {
	const n = 5
	for i := 0; i < 100; i++ {
		idx := uniformIndex(n)
		if idx < 0 || idx >= n {
			t.Fatalf("uniformIndex(%d) returned out-of-range index %d", n, idx)
		}
	}
}
