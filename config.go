package x690

/*
config.go implements EncodeConfig, a small functional-options type
replacing the teacher's reflective Options/EncodingOption envelope
(opts.go, er.go's With) with the handful of knobs spec.md §5 and §9
actually require for a non-schema-driven encoder: which Rule to use,
whether BER should prefer indefinite length for constructed values,
and a per-call override of NestingLimit.
*/

// EncodeConfig holds the encode-time settings an EncodeOption mutates.
// Its zero value encodes under BER with definite lengths and the
// package default NestingLimit.
type EncodeConfig struct {
	rule       Rule
	indefinite bool
	nestLimit  int
}

// EncodeOption mutates an EncodeConfig; see WithRule, WithIndefinite,
// and WithNestingLimit.
type EncodeOption func(*EncodeConfig)

// NewEncodeConfig builds an EncodeConfig from the given options,
// defaulting to BER.
func NewEncodeConfig(opts ...EncodeOption) EncodeConfig {
	cfg := EncodeConfig{rule: BER}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRule selects the transfer-syntax dialect an Apply'd Element
// encodes under.
func WithRule(r Rule) EncodeOption {
	return func(c *EncodeConfig) { c.rule = r }
}

/*
WithIndefinite sets the BER indefinite-length preference (spec.md §4.1,
§5, §9): when true, an Apply'd constructed Element encoding under BER
emits indefinite length (0x80 ... end-of-contents) instead of definite
minimal length. It has no effect under CER, which always emits
indefinite length for constructed values, or under DER, which never
does (spec.md §4.5 table).
*/
func WithIndefinite(indefinite bool) EncodeOption {
	return func(c *EncodeConfig) { c.indefinite = indefinite }
}

// WithNestingLimit overrides NestingLimit for an Apply'd Element's own
// recursion accounting; n <= 0 leaves the package default in effect.
func WithNestingLimit(n int) EncodeOption {
	return func(c *EncodeConfig) { c.nestLimit = n }
}

// Apply returns a copy of e with cfg's settings applied: Rule,
// the BER indefinite-length preference, and (if set) NestingLimit.
func (cfg EncodeConfig) Apply(e Element) Element {
	e.Rule = cfg.rule
	e.indefinite = cfg.indefinite
	if cfg.nestLimit > 0 {
		e.nestLimit = cfg.nestLimit
	}
	return e
}

// Configure is shorthand for NewEncodeConfig(opts...).Apply(e).
func (e Element) Configure(opts ...EncodeOption) Element {
	return NewEncodeConfig(opts...).Apply(e)
}
