package chronia

// options collects the per-call knobs Format and Parse accept. Factory
// options given to NewParser become defaults; per-call options overlay
// them field by field.
type options struct {
	locale *Locale
	ref    DateTime
	hasRef bool
}

// Option configures a Format, Parse or NewParser call.
type Option func(*options)

// WithLocale selects the locale consulted by text-bearing tokens.
// Passing nil is a no-op, leaving the built-in default (English) or a
// factory-configured locale in effect.
func WithLocale(loc *Locale) Option {
	return func(o *options) {
		if loc != nil {
			o.locale = loc
		}
	}
}

// WithReferenceDate supplies the value whose fields fill everything a
// parse pattern leaves unmentioned. Without it, each Parse call falls
// back to the moment of the call. Format ignores it.
func WithReferenceDate(ref DateTime) Option {
	return func(o *options) {
		o.ref = ref
		o.hasRef = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	return o.overlay(opts)
}

func (o options) overlay(opts []Option) options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) referenceDate() DateTime {
	if o.hasRef {
		return o.ref
	}
	return Now()
}
