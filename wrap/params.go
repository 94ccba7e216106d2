package wrap

import (
	"context"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

// LogParams is a fully resolved set of logging parameters. Values are
// produced fresh per resolution and never mutated afterwards.
type LogParams struct {
	Message string
	Level   core.Level
	Logger  logger.Ref
}

// MethodLogParams carries per-member overrides for the call and return
// records. Empty strings and nil levels fall through the precedence
// chain.
type MethodLogParams struct {
	CallMessage   string
	CallLevel     *core.Level
	ReturnMessage string
	ReturnLevel   *core.Level
}

// ClassLogParams governs which members of a wrapped struct receive
// instrumentation and with what parameters.
type ClassLogParams struct {
	LogInit           Policy
	LogMethods        Policy
	LogPrivateMethods Policy
}

// LevelPtr returns a pointer to l, for filling the optional level
// slots of MethodLogParams.
func LevelPtr(l core.Level) *core.Level {
	return &l
}

// layer is one link of the precedence chain. A nil pointer field means
// the layer does not speak for that parameter.
type layer struct {
	message        *string
	callMessage    *string
	returnMessage  *string
	initMessage    *string
	failureMessage *string

	level        *core.Level
	callLevel    *core.Level
	returnLevel  *core.Level
	initLevel    *core.Level
	failureLevel *core.Level

	ref logger.Ref
}

func (l *layer) isZero() bool {
	return l.message == nil && l.callMessage == nil && l.returnMessage == nil &&
		l.initMessage == nil && l.failureMessage == nil &&
		l.level == nil && l.callLevel == nil && l.returnLevel == nil &&
		l.initLevel == nil && l.failureLevel == nil && l.ref.IsZero()
}

// fillFrom copies parent values into unset slots, used when nesting
// scopes: the child speaks first, the parent fills the gaps.
func (l *layer) fillFrom(parent *layer) {
	if l.message == nil {
		l.message = parent.message
	}
	if l.callMessage == nil {
		l.callMessage = parent.callMessage
	}
	if l.returnMessage == nil {
		l.returnMessage = parent.returnMessage
	}
	if l.initMessage == nil {
		l.initMessage = parent.initMessage
	}
	if l.failureMessage == nil {
		l.failureMessage = parent.failureMessage
	}
	if l.level == nil {
		l.level = parent.level
	}
	if l.callLevel == nil {
		l.callLevel = parent.callLevel
	}
	if l.returnLevel == nil {
		l.returnLevel = parent.returnLevel
	}
	if l.initLevel == nil {
		l.initLevel = parent.initLevel
	}
	if l.failureLevel == nil {
		l.failureLevel = parent.failureLevel
	}
	if l.ref.IsZero() {
		l.ref = parent.ref
	}
}

// Config is the sink for options given to a single dispatch call
type Config struct {
	layer          layer
	fields         []core.Field
	ctx            context.Context
	class          ClassLogParams
	privateMatcher func(string) bool
	callOnly       bool
}

// NewConfig applies opts to a fresh Config
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *Config) isZero() bool {
	return c.layer.isZero() && len(c.fields) == 0 && c.ctx == nil &&
		c.class == (ClassLogParams{}) && c.privateMatcher == nil && !c.callOnly
}

// Option configures a dispatch call
type Option func(*Config)

// WithMessage sets the generic message template, used for any record
// that has no more specific message configured.
func WithMessage(msg string) Option {
	return func(c *Config) { c.layer.message = &msg }
}

// WithLevel sets the generic level, used for any record that has no
// more specific level configured.
func WithLevel(l core.Level) Option {
	return func(c *Config) { c.layer.level = &l }
}

// WithCallMessage sets the message template for call records
func WithCallMessage(msg string) Option {
	return func(c *Config) { c.layer.callMessage = &msg }
}

// WithCallLevel sets the level for call records
func WithCallLevel(l core.Level) Option {
	return func(c *Config) { c.layer.callLevel = &l }
}

// WithReturnMessage sets the message template for return records
func WithReturnMessage(msg string) Option {
	return func(c *Config) { c.layer.returnMessage = &msg }
}

// WithReturnLevel sets the level for return records
func WithReturnLevel(l core.Level) Option {
	return func(c *Config) { c.layer.returnLevel = &l }
}

// WithInitMessage sets the message template for constructor records
func WithInitMessage(msg string) Option {
	return func(c *Config) { c.layer.initMessage = &msg }
}

// WithInitLevel sets the level for constructor records
func WithInitLevel(l core.Level) Option {
	return func(c *Config) { c.layer.initLevel = &l }
}

// WithFailureMessage sets the message template for failure records
func WithFailureMessage(msg string) Option {
	return func(c *Config) { c.layer.failureMessage = &msg }
}

// WithFailureLevel enables failure records for error results and
// panics at the given level. Without it the wrapper emits nothing
// extra on failure and lets the failure propagate untouched.
func WithFailureLevel(l core.Level) Option {
	return func(c *Config) { c.layer.failureLevel = &l }
}

// WithLogger routes emission to a concrete logger
func WithLogger(l logger.Logger) Option {
	return func(c *Config) { c.layer.ref = logger.To(l) }
}

// WithLoggerName routes emission to a named logger, resolved at
// emission time.
func WithLoggerName(name string) Option {
	return func(c *Config) { c.layer.ref = logger.Named(name) }
}

// WithRef routes emission through the given logger reference
func WithRef(ref logger.Ref) Option {
	return func(c *Config) { c.layer.ref = ref }
}

// WithFields attaches extra fields to every emitted record
func WithFields(fields ...core.Field) Option {
	return func(c *Config) { c.fields = append(c.fields, fields...) }
}

// WithContext supplies a context whose scope layer applies to direct
// emission.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.ctx = ctx }
}

// WithInit sets the constructor policy for class wrapping
func WithInit(p Policy) Option {
	return func(c *Config) { c.class.LogInit = p }
}

// WithMethods sets the public-method policy for class wrapping
func WithMethods(p Policy) Option {
	return func(c *Config) { c.class.LogMethods = p }
}

// WithPrivateMethods sets the private-method policy for class wrapping
func WithPrivateMethods(p Policy) Option {
	return func(c *Config) { c.class.LogPrivateMethods = p }
}

// WithPrivateMatcher overrides the predicate that marks a method name
// as private. The default matches the "Internal" prefix; Go reflection
// cannot see unexported methods, so the private category necessarily
// works on exported names.
func WithPrivateMatcher(matcher func(name string) bool) Option {
	return func(c *Config) { c.privateMatcher = matcher }
}

// WithClassParams sets all three class policies at once
func WithClassParams(p ClassLogParams) Option {
	return func(c *Config) { c.class = p }
}

// CallOnly suppresses the return record, leaving only the call record.
// Constructor wrapping uses it so that an "initialized" record is not
// followed by a return record.
func CallOnly() Option {
	return func(c *Config) { c.callOnly = true }
}
