package arr

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Shuffle returns a uniformly shuffled copy of items (Fisher–Yates) using the
// global generator from math/rand/v2.
func Shuffle[T any](items []T) []T {
	return shuffle(items, rand.IntN)
}

// ShuffleWith is like [Shuffle] but draws from r, which makes the order
// reproducible when r is seeded (see [NewSeededRand]).
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	return shuffle(items, r.IntN)
}

func shuffle[T any](items []T, intN func(int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewSeededRand returns a deterministic generator for seed. The seed is hashed
// with BLAKE2b-256 into a ChaCha20 key and the keystream feeds the generator,
// so equal seeds always produce equal sequences.
//
// The returned *rand.Rand is not safe for concurrent use.
func NewSeededRand(seed []byte) *rand.Rand {
	key := blake2b.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// key and nonce lengths are fixed above.
		panic("arr: chacha20: " + err.Error())
	}
	return rand.New(&keystream{cipher: c})
}

// keystream is a rand.Source over a ChaCha20 keystream.
type keystream struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func (k *keystream) Uint64() uint64 {
	clear(k.buf[:])
	k.cipher.XORKeyStream(k.buf[:], k.buf[:])
	return binary.LittleEndian.Uint64(k.buf[:])
}
