package cache

// ScopedKeyer prefixes every key of an inner [Keyer]. The CLI scopes keys by
// build version so that results from a different engine build are never
// reused.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner. A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResultKey implements [Keyer].
func (k *ScopedKeyer) ResultKey(gridHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(gridHash, opts)
}
