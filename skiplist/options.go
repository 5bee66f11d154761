package skiplist

type options[K any] struct {
	keyEncoder KeyEncoder[K]
}

type Option[K any] func(*options[K])

// WithKeyFilter enables the key filter, which lets Search skip the descent
// for keys that were never inserted. The encoder must agree with the
// comparator of the list: keys that compare equal must have equal encodings.
// The filter is sized with Config.FilterProbability and Config.FilterCapacity.
func WithKeyFilter[K any](encode KeyEncoder[K]) Option[K] {
	return func(o *options[K]) {
		o.keyEncoder = encode
	}
}
