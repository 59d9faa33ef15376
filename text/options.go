package text

// DefaultRunCacheSize is the number of shaped runs a Shaper keeps.
const DefaultRunCacheSize = 512

// ShaperOption configures a Shaper.
type ShaperOption func(*shaperOptions)

type shaperOptions struct {
	cacheSize int
}

func defaultShaperOptions() shaperOptions {
	return shaperOptions{cacheSize: DefaultRunCacheSize}
}

// WithRunCacheSize sets how many shaped runs are cached.
// Zero or a negative value disables the cache.
func WithRunCacheSize(n int) ShaperOption {
	return func(o *shaperOptions) {
		o.cacheSize = n
	}
}
