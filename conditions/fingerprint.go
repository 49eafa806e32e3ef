package conditions

import (
	"github.com/twmb/murmur3"

	"github.com/chartbrew/customerquery/util"
)

// Fingerprint hashes the serialized form of the tree. Trees that serialize
// identically share a fingerprint, so an empty tree hashes the same whatever
// its combinator.
func (t Tree) Fingerprint() uint32 {
	data, err := util.Encode(t.Serialize(), nil)
	if err != nil {
		return 0
	}
	return murmur3.SeedStringSum32(fingerprintSeed, string(data))
}
