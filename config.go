package sat

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/rsms/sat/internal/pagesize"
)

var (
	errEmptyRootNamespace = errors.New("sat: RootNamespace must not be empty")
	errNegativePageSize   = errors.New("sat: PageSize must not be negative")
)

// TraceFunc receives low-level tokenizer diagnostics when set, mirroring
// the teacher's debug-log style plumbing in base_parser.go. Nil by
// default: tracing costs nothing unless requested.
type TraceFunc func(format string, args ...any)

// Config holds the parser's tunables (spec §9 "Global state"). Unlike
// the teacher's path-keyed map (config.go's Config/cfgVal), these are
// the small, closed set of knobs this parser actually has, so a plain
// struct built through functional options fits better — the teacher's
// own grammar_compiler.go/gen.go callers already lean on that shape for
// CompileOption/GenOption.
type Config struct {
	// RootNamespace is the unqualified name of the namespace installed
	// at the root scope, e.g. "user" (spec §9 "Namespace object").
	RootNamespace string

	// PageSize is the growth increment for the input buffer (spec §4.6
	// "Buffer"). Resolves the corresponding Open Question: rather than
	// a process-wide static queried once at startup, it's read per
	// Config from internal/pagesize, so tests can override it.
	PageSize int

	// Trace, if non-nil, receives one line of diagnostics per scope
	// push and pop, per indentation comparison and per emitted token.
	// Left nil in production use.
	Trace TraceFunc
}

// Option configures a Parser at construction time.
type Option func(*Config)

// WithRootNamespace overrides the default root namespace name ("user").
func WithRootNamespace(name string) Option {
	return func(c *Config) { c.RootNamespace = name }
}

// WithPageSize overrides the buffer's growth increment.
func WithPageSize(n int) Option {
	return func(c *Config) { c.PageSize = n }
}

// WithTrace installs a diagnostics sink.
func WithTrace(fn TraceFunc) Option {
	return func(c *Config) { c.Trace = fn }
}

func defaultConfig() Config {
	return Config{
		RootNamespace: "user",
		PageSize:      pagesize.Get(),
	}
}

func newConfig(opts []Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.PageSize <= 0 {
		c.PageSize = pagesize.Get()
	}
	return c
}

// Validate reports every problem with c at once rather than stopping at
// the first one, so a caller building Config from flags or a file sees
// all of it in one error instead of fixing issues one at a time.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.RootNamespace == "" {
		result = multierror.Append(result, errEmptyRootNamespace)
	}
	if c.PageSize < 0 {
		result = multierror.Append(result, errNegativePageSize)
	}
	return result.ErrorOrNil()
}
