package report

// FilterChain applies the configured grep, cutoff and include/exclude stages
// to one stack trace, in that fixed order.
type FilterChain struct {
	cfg *Config
}

// NewFilterChain builds a chain over cfg's compiled patterns.
func NewFilterChain(cfg *Config) *FilterChain {
	return &FilterChain{cfg: cfg}
}

// Apply filters trace (leaf-to-root signatures, as decoded) and returns the
// surviving frames, or nil when the whole trace is discarded. Unless the
// reverse flag keeps leaf-to-root order for icicle-style graphs, the result
// is reversed to root-to-leaf.
func (f *FilterChain) Apply(trace []string) []string {
	cfg := f.cfg

	if cfg.grep != nil {
		hit := false
		for _, sig := range trace {
			if cfg.grep.MatchString(sig) {
				hit = true
				break
			}
		}
		if !hit {
			return nil
		}
	}

	if cfg.cutoff != nil {
		for i, sig := range trace {
			if cfg.cutoff.MatchString(sig) {
				trace = trace[:i]
				break
			}
		}
	}

	out := make([]string, 0, len(trace))
	for _, sig := range trace {
		if cfg.include != nil && !cfg.include.MatchString(sig) {
			continue
		}
		if cfg.exclude != nil && cfg.exclude.MatchString(sig) {
			continue
		}
		out = append(out, sig)
	}
	if len(out) == 0 {
		return nil
	}

	if !cfg.Reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
