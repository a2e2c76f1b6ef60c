package assign

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxAttempts caps the rejection-sampling loop. Acceptance probability
// converges to 1/e, so the cap is never reached with a sane random source.
const maxAttempts = 10000

// ErrTooFewIdentities reports an input set with no self-free permutation.
var ErrTooFewIdentities = errors.New("derangement requires at least two identities")

// Derangement produces a random bijection over ids with no fixed point: every
// id appears exactly once as a giver and once as a receiver, and no id maps
// to itself. The pairing is found by rejection sampling, repeatedly shuffling
// the receiver sequence until it has no position matching the giver order.
func Derangement(ids []string) (map[string]string, error) {
	if len(ids) < 2 {
		return nil, ErrTooFewIdentities
	}

	receivers := make([]string, len(ids))
	copy(receivers, ids)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rand.Shuffle(len(receivers), func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})
		if !fixedPointFree(ids, receivers) {
			continue
		}
		mapping := make(map[string]string, len(ids))
		for i, giver := range ids {
			mapping[giver] = receivers[i]
		}
		return mapping, nil
	}

	return nil, fmt.Errorf("no self-free permutation found after %d attempts", maxAttempts)
}

func fixedPointFree(givers, receivers []string) bool {
	for i := range givers {
		if givers[i] == receivers[i] {
			return false
		}
	}
	return true
}
