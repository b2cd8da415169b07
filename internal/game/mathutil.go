package game

import "github.com/chewxy/math32"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// planarDistance ignores height: horses of different sizes stand at
// different y but collide on the ground plane.
func planarDistance(ax, az, bx, bz float32) float32 {
	dx := bx - ax
	dz := bz - az
	return math32.Sqrt(dx*dx + dz*dz)
}

func inField(x, z float32) bool {
	return x >= -FieldHalfSize && x <= FieldHalfSize && z >= -FieldHalfSize && z <= FieldHalfSize
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &Rand{s: s}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns an integer in [min, max], both inclusive.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Coin is a fair 50/50 draw.
func (r *Rand) Coin() bool {
	return r.Intn(2) == 0
}
