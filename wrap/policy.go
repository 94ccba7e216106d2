package wrap

import (
	"github.com/goatl/goatl-go/core"
)

type policyKind uint8

const (
	policyUnset policyKind = iota
	policyOff
	policyOn
	policyLevel
	policyParams
)

// Policy is the per-member-category instrumentation policy of class
// wrapping: disabled, enabled with defaults, enabled at a single
// level, or enabled with full MethodLogParams. The zero Policy means
// "unset" and falls back to the category default (public methods on,
// private methods off, constructor on).
type Policy struct {
	kind   policyKind
	level  core.Level
	params MethodLogParams
}

// On enables the category with default parameters
func On() Policy {
	return Policy{kind: policyOn}
}

// Off disables the category
func Off() Policy {
	return Policy{kind: policyOff}
}

// At enables the category with both call and return records at the
// given level.
func At(level core.Level) Policy {
	return Policy{kind: policyLevel, level: level}
}

// Using enables the category with explicit per-record parameters
func Using(params MethodLogParams) Policy {
	return Policy{kind: policyParams, params: params}
}

// Enabled reports whether the policy turns instrumentation on,
// falling back to defaultOn when unset.
func (p Policy) Enabled(defaultOn bool) bool {
	switch p.kind {
	case policyOff:
		return false
	case policyUnset:
		return defaultOn
	default:
		return true
	}
}

// asLayer converts the policy's parameters into a precedence layer.
// Returns nil when the policy carries no parameters of its own.
func (p Policy) asLayer() *layer {
	switch p.kind {
	case policyLevel:
		lvl := p.level
		return &layer{callLevel: &lvl, returnLevel: &lvl}
	case policyParams:
		l := &layer{
			callLevel:   p.params.CallLevel,
			returnLevel: p.params.ReturnLevel,
		}
		if p.params.CallMessage != "" {
			msg := p.params.CallMessage
			l.callMessage = &msg
		}
		if p.params.ReturnMessage != "" {
			msg := p.params.ReturnMessage
			l.returnMessage = &msg
		}
		if l.isZero() {
			return nil
		}
		return l
	default:
		return nil
	}
}
