// Package gen turns a year of per-day activity counts into a deterministic
// isometric landscape: intensity levels, a seeded biome (rivers, ponds,
// forests), screen-space layout in painter order, stochastic decoration,
// and at most three rare landmark buildings.
//
// Everything here is reproducible: the same seed and input always produce
// byte-identical output. Each stage derives its own random stream from the
// master seed plus a fixed stage salt, so a change in one stage's draw count
// can never desynchronize another stage.
package gen

// Rand is a small deterministic PRNG. The pipeline never touches math/rand
// global state; stages construct their own Rand so tests can substitute a
// known seed without cross-call interference.
type Rand struct {
	state int64
}

// NewRand creates a generator seeded with the given value.
func NewRand(seed int64) *Rand {
	return &Rand{state: seed}
}

func (r *Rand) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407 // LCG
	return r.state
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	v := (r.next() >> 33) & 0x7FFFFFFF
	return float64(v) / float64(1<<31)
}

// IntN returns a value in [0, n). n must be positive.
func (r *Rand) IntN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}

// DeriveSeed combines a master seed with a stage salt, producing an
// independent seed for that stage's random stream. FNV-1a over the salt,
// folded with the master and finalized splitmix-style.
func DeriveSeed(master int64, salt string) int64 {
	const (
		fnvOffset int64 = -3750763034362895579
		fnvPrime  int64 = 1099511628211
	)
	h := fnvOffset
	for i := 0; i < len(salt); i++ {
		h ^= int64(salt[i])
		h *= fnvPrime
	}
	h ^= master
	h ^= int64(uint64(h) >> 33)
	h *= -7046029254386353131
	h ^= int64(uint64(h) >> 27)
	h *= -4265267296055464877
	h ^= int64(uint64(h) >> 31)
	return h
}

// SeedFromString derives a master seed from an external identity such as
// "username:mode".
func SeedFromString(s string) int64 {
	return DeriveSeed(0, s)
}
