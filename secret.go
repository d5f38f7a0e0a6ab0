package zksk

import (
	"math/big"
	"sync/atomic"
)

var secretCounter uint64

// Secret is an opaque handle identifying an unknown in a proof
// statement. Two Secrets are equal iff they are the same handle:
// equality is identity, never value equality, so a Secret can be
// compared with ==.
type Secret struct {
	id    uint64
	name  string
	value *big.Int
}

// NewSecret allocates a fresh, unbound Secret. name is used only for
// diagnostics (error messages, String()); it plays no role in
// equality or binding.
func NewSecret(name string) *Secret {
	id := atomic.AddUint64(&secretCounter, 1)
	return &Secret{id: id, name: name}
}

// BindSecret allocates a Secret whose value is already known, for
// callers wiring up a witness map ahead of proving.
func BindSecret(name string, value *big.Int) *Secret {
	s := NewSecret(name)
	s.value = value
	return s
}

// Name returns the diagnostic name the Secret was created with.
func (s *Secret) Name() string { return s.name }

// Value returns the bound scalar value, or nil if the Secret carries
// no value of its own (the common case: the value arrives later via a
// witness map passed to BuildProver).
func (s *Secret) Value() *big.Int { return s.value }

func (s *Secret) String() string {
	if s.name != "" {
		return s.name
	}
	return "secret"
}

// WitnessMap assigns scalar values to Secrets, keyed by identity.
type WitnessMap map[*Secret]*big.Int

// clone returns a shallow copy of m.
func (m WitnessMap) clone() WitnessMap {
	out := make(WitnessMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// filter returns the subset of m whose keys appear in secrets.
func (m WitnessMap) filter(secrets []*Secret) WitnessMap {
	keys := make(map[*Secret]bool, len(secrets))
	for _, s := range secrets {
		keys[s] = true
	}
	out := make(WitnessMap, len(secrets))
	for k, v := range m {
		if keys[k] {
			out[k] = v
		}
	}
	return out
}

// missing reports whether any of secrets lacks an entry in m.
func (m WitnessMap) missing(secrets []*Secret) bool {
	for _, s := range secrets {
		if _, ok := m[s]; !ok {
			return true
		}
	}
	return false
}
