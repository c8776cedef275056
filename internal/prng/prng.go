// Package prng adapts the lattigo blake2b-based PRNG into math/rand
// sources, with SHAKE-256 seed derivation for independent per-run
// streams.
package prng

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

const seedLen = 32

// source adapts a lattigo PRNG byte stream to rand.Source64.
type source struct {
	prng utils.PRNG
}

func (s *source) Uint64() uint64 {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		panic(fmt.Errorf("prng: read: %w", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *source) Seed(seed int64) {
	p, err := utils.NewKeyedPRNG(u64le(uint64(seed)))
	if err != nil {
		panic(fmt.Errorf("prng: reseed: %w", err))
	}
	s.prng = p
}

// NewRand returns a Rand drawing from a fresh system-seeded PRNG.
func NewRand() *rand.Rand {
	p, err := utils.NewPRNG()
	if err != nil {
		panic(fmt.Errorf("prng: %w", err))
	}
	return rand.New(&source{prng: p})
}

// NewSeededRand returns a Rand whose stream is fully determined by seed.
func NewSeededRand(seed []byte) *rand.Rand {
	p, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		panic(fmt.Errorf("prng: keyed PRNG: %w", err))
	}
	return rand.New(&source{prng: p})
}

// DeriveSeed expands root into an independent seed for the given label
// and index, so repeated runs under one root seed get disjoint streams.
func DeriveSeed(root []byte, label string, idx uint64) []byte {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(label)); err != nil {
		panic(fmt.Errorf("DeriveSeed: write label: %w", err))
	}
	if _, err := h.Write(root); err != nil {
		panic(fmt.Errorf("DeriveSeed: write root: %w", err))
	}
	if _, err := h.Write(u64le(idx)); err != nil {
		panic(fmt.Errorf("DeriveSeed: write index: %w", err))
	}
	out := make([]byte, seedLen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("DeriveSeed: read output: %w", err))
	}
	return out
}

// FreshSeed draws a random root seed.
func FreshSeed() []byte {
	p, err := utils.NewPRNG()
	if err != nil {
		panic(fmt.Errorf("prng: %w", err))
	}
	seed := make([]byte, seedLen)
	if _, err := p.Read(seed); err != nil {
		panic(fmt.Errorf("prng: read seed: %w", err))
	}
	return seed
}

func u64le(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}
