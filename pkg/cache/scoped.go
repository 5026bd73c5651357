package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments can share
// one backend without stepping on each other, for example several locations
// of a chain pointing at the same Redis.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "location:berlin-mitte:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for a computed layout.
func (k *ScopedKeyer) LayoutKey(contentHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(contentHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
