package testutil

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/renproject/id"
	"golang.org/x/crypto/sha3"

	"github.com/renproject/lineage/chain"
)

func init() {
	mrand.Seed(time.Now().Unix())
}

// RandomHash returns a random hash, standing in for the block hashes that
// callers derive identifiers from.
func RandomHash() id.Hash {
	hash := id.Hash{}
	_, err := rand.Read(hash[:])
	if err != nil {
		panic(fmt.Sprintf("cannot create random hash, err = %v", err))
	}
	return hash
}

// RandomBlockID returns a block identifier derived from a random hash, the
// same way callers are expected to mint identifiers from block hashes.
func RandomBlockID() chain.BlockID {
	hash := RandomHash()
	sum := sha3.Sum256(hash[:])
	return chain.BlockID(binary.BigEndian.Uint64(sum[:8]))
}

// RandomChain returns a chain of the given height with random identifiers.
func RandomChain(height chain.Height) chain.Chain {
	c := chain.Origin()
	for h := chain.Height(0); h < height; h++ {
		c = c.Extend(RandomBlockID())
	}
	return c
}

// RandomHeight returns a height in [0, max).
func RandomHeight(max chain.Height) chain.Height {
	return chain.Height(mrand.Int63n(int64(max)))
}

// ForkedPair returns two chains that diverge immediately after a common
// prefix of the given height, and then each grow by up to four more random
// links. The identifiers at the fork point are guaranteed to differ, so the
// returned chains are never related.
func ForkedPair(commonHeight chain.Height) (chain.Chain, chain.Chain) {
	common := RandomChain(commonHeight)
	forkID := RandomBlockID()
	a := common.Extend(forkID)
	b := common.Extend(forkID + 1)
	for n := mrand.Intn(5); n > 0; n-- {
		a = a.Extend(RandomBlockID())
	}
	for n := mrand.Intn(5); n > 0; n-- {
		b = b.Extend(RandomBlockID())
	}
	return a, b
}

// RandomChains returns chains of heterogeneous random heights.
func RandomChains(n int) chain.Chains {
	chains := make(chain.Chains, n)
	for i := range chains {
		chains[i] = RandomChain(RandomHeight(16))
	}
	return chains
}

// RandomAnyChains returns wrapped chains of heterogeneous random heights.
func RandomAnyChains(n int) []chain.AnyChain {
	chains := RandomChains(n)
	wrapped := make([]chain.AnyChain, len(chains))
	for i, c := range chains {
		wrapped[i] = chain.Wrap(c)
	}
	return wrapped
}
