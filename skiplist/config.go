package skiplist

import (
	"github.com/go-kit/log"
)

// Config holds the settings of a Skiplist.
type Config struct {
	// Logger is used to report structural changes of the list, such as
	// height changes and filter rebuilds. Defaults to a no-op logger.
	Logger log.Logger
	// MaxLevel is the maximum number of levels in the list, including the
	// base level. Defaults to 10.
	MaxLevel int
	// Seed seeds the level generator of the list. Lists with the same seed
	// and the same sequence of operations end up with the same shape. Zero
	// picks a random seed.
	Seed uint64
	// FilterProbability is the probability of false positives in the key
	// filter consulted by Search before descending. It has no effect unless
	// the filter is enabled with WithKeyFilter, whose encoder must map keys
	// that compare equal to equal bytes. Defaults to 0.01.
	FilterProbability float64
	// FilterCapacity is the number of distinct keys the filter is sized
	// for. The filter is rebuilt with twice the capacity once it is
	// exceeded. Defaults to 1024.
	FilterCapacity int
}

// DefaultConfig returns the default settings: ten levels, a random seed
// and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Logger:            log.NewNopLogger(),
		MaxLevel:          10,
		FilterProbability: 0.01,
		FilterCapacity:    1024,
	}
}

func (c *Config) validate() {
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}

	if c.MaxLevel < 1 {
		panic("skiplist: max level must be positive")
	}

	if c.FilterProbability == 0 {
		c.FilterProbability = 0.01
	}

	if c.FilterProbability < 0 || c.FilterProbability >= 1 {
		panic("skiplist: filter probability must be in range (0, 1)")
	}

	if c.FilterCapacity < 1 {
		c.FilterCapacity = 1024
	}
}
