// Package sampling provides pseudo-random byte sources and random matrix
// generation, for deterministic test fixtures and problem generation.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system entropy source and is
// safe for concurrent use.
type ThreadSafePRNG struct{}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into a sequence of random
// bytes using the blake2b extendable-output function. Two instances
// built from the same key produce the same stream.
//
// KeyedPRNG is not safe for concurrent use: interleaved reads would make
// the consumed sequence non-deterministic.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from key. A nil key is treated as
// an empty one.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := &KeyedPRNG{key: append([]byte(nil), key...)}
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}
