package globalparam

import (
	"math/rand/v2"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultShuffler shuffles with the runtime's randomly seeded source.
var DefaultShuffler Shuffler = globalShuffler{}

// Resolve merges params into a key/value map. Fixed values pass through
// verbatim. Each randomized value is shuffled and its first alternative
// chosen; randomized keys are applied after fixed ones and win on clashes.
// A randomized value without usable alternatives leaves its key unset.
func Resolve(params []*GlobalParam, shuffler Shuffler) map[string]string {
	if shuffler == nil {
		shuffler = DefaultShuffler
	}

	resolved := make(map[string]string, len(params))
	randomized := make(map[string][]string)
	var order []string

	for _, p := range params {
		if !p.IsRandomized() {
			resolved[p.ParamsKey] = p.ParamsValue
			continue
		}

		alternatives := p.Alternatives()
		shuffler.Shuffle(len(alternatives), func(i, j int) {
			alternatives[i], alternatives[j] = alternatives[j], alternatives[i]
		})
		if _, seen := randomized[p.ParamsKey]; !seen {
			order = append(order, p.ParamsKey)
		}
		randomized[p.ParamsKey] = alternatives
	}

	for _, key := range order {
		if alternatives := randomized[key]; len(alternatives) > 0 {
			resolved[key] = alternatives[0]
		}
	}

	return resolved
}
