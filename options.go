package tunhong

import "github.com/riverfjs/tunhong-go/internal/classify"

// ParserOptions holds options for a Parser.
type ParserOptions struct {
	Markup     MarkupFactory
	Classifier *Classifier

	err error
}

// Option is a function that configures ParserOptions.
type Option func(*ParserOptions)

// WithMarkup sets the factory creating one Markup per Parse call.
func WithMarkup(factory MarkupFactory) Option {
	return func(opts *ParserOptions) {
		opts.Markup = factory
	}
}

// WithIdentityMarkup selects IdentityMarkup (the default).
func WithIdentityMarkup() Option {
	return WithMarkup(func() Markup {
		return NewIdentityMarkup()
	})
}

// WithTagMarkup selects TagMarkup. Modes missing from tags keep the
// DefaultTags entries; nil means DefaultTags.
func WithTagMarkup(tags TagConfig) Option {
	merged := mergeTags(tags)
	return WithMarkup(func() Markup {
		return newTagMarkup(merged)
	})
}

// WithSilentMarkup selects SilentMarkup.
func WithSilentMarkup() Option {
	return WithMarkup(func() Markup {
		return SilentMarkup{}
	})
}

// WithClassifier sets a prebuilt classifier.
func WithClassifier(c *Classifier) Option {
	return func(opts *ParserOptions) {
		if c == nil {
			c = classify.Default()
		}
		opts.Classifier, opts.err = c, nil
	}
}

// WithRules builds the classifier from rules, evaluated in order before the
// other fallback. Invalid rules make New fail with ErrInvalidRule.
func WithRules(rules ...Rule) Option {
	return func(opts *ParserOptions) {
		opts.Classifier, opts.err = classify.New(rules...)
	}
}

// defaultParserOptions returns the default parser options.
func defaultParserOptions() *ParserOptions {
	return &ParserOptions{
		Markup: func() Markup {
			return NewIdentityMarkup()
		},
		Classifier: classify.Default(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ParserOptions {
	options := defaultParserOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Markup == nil {
		options.Markup = defaultParserOptions().Markup
	}
	return options
}
