package rings

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// ringRNG returns the draw stream of one ring on one layer. Streams depend
// only on the seed and the (layer, ring) pair, never on generation order.
func ringRNG(seed int64, layer, ring int) *rand.Rand {
	stream := uint64(layer)<<32 | uint64(uint32(ring))
	return rngFromSeed(deriveSeed(seed, stream))
}
