package stactools

// ReadOption configures a ReadText call.
type ReadOption func(*readConfig)

type readConfig struct {
	modifier ReadHrefModifier
	params   Params
}

func newReadConfig(opts []ReadOption) *readConfig {
	cfg := &readConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithHrefModifier applies m to the href before it is read. The modifier
// runs at most once per call.
func WithHrefModifier(m ReadHrefModifier) ReadOption {
	return func(cfg *readConfig) { cfg.modifier = m }
}

// WithReadParams forwards backend-specific open parameters to the read.
// Repeated options merge, later values winning per key.
func WithReadParams(params Params) ReadOption {
	return func(cfg *readConfig) { cfg.params = mergeParams(cfg.params, params) }
}

// WithReadParam forwards a single open parameter to the read.
func WithReadParam(key string, value any) ReadOption {
	return func(cfg *readConfig) { cfg.params = mergeParams(cfg.params, Params{key: value}) }
}

// WriteOption configures a WriteText call.
type WriteOption func(*writeConfig)

type writeConfig struct {
	params Params
}

func newWriteConfig(opts []WriteOption) *writeConfig {
	cfg := &writeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWriteParams forwards backend-specific open parameters to the write.
// Repeated options merge, later values winning per key.
func WithWriteParams(params Params) WriteOption {
	return func(cfg *writeConfig) { cfg.params = mergeParams(cfg.params, params) }
}

// WithWriteParam forwards a single open parameter to the write.
func WithWriteParam(key string, value any) WriteOption {
	return func(cfg *writeConfig) { cfg.params = mergeParams(cfg.params, Params{key: value}) }
}

func mergeParams(dst, src Params) Params {
	if dst == nil {
		dst = make(Params, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
