package svgattr

import (
	"io"
)

// PresencePolicy identifies how a field decides whether it contributes an
// attribute at all. The set is closed; each policy has exactly one
// constructor (Attr, AttrIfSome, AttrIfNotDefault, AttrIf).
type PresencePolicy uint8

const (
	// PresenceAlways emits the field's current value unconditionally.
	PresenceAlways PresencePolicy = iota
	// PresenceIfSome emits only when the optional value is populated.
	// It is only constructible over pointer-typed accessors, so the
	// "optional fields only" rule holds at compile time.
	PresenceIfSome
	// PresenceIfNotDefault emits only when the value differs from the
	// type's zero value.
	PresenceIfNotDefault
	// PresenceIfPredicate emits only when a supplied predicate holds.
	PresenceIfPredicate
)

// ValuePolicy identifies how an emitting field produces its value text.
type ValuePolicy uint8

const (
	// ValuePassThrough writes the value's own canonical text form.
	ValuePassThrough ValuePolicy = iota
	// ValueTransform writes the output of a caller-supplied computation.
	ValueTransform
	// ValueLiteral writes a fixed text, ignoring the runtime value.
	ValueLiteral
)

// Renderer is the value policy of a descriptor: it produces the text between
// the quotes once the presence policy has admitted the field.
type Renderer[V any] struct {
	policy    ValuePolicy
	write     func(V, io.Writer, WriteSettings) error
	transform func(V) []byte
	literal   string
}

// Policy reports which value policy the renderer carries.
func (r Renderer[V]) Policy() ValuePolicy { return r.policy }

// Verbatim emits the value's canonical text via its WriteValue method.
func Verbatim[V Value]() Renderer[V] {
	return Renderer[V]{
		policy: ValuePassThrough,
		write: func(v V, w io.Writer, set WriteSettings) error {
			return v.WriteValue(w, set)
		},
	}
}

// Transform replaces the value's own serialization with fn's output. The
// function owns full responsibility for the emitted bytes; the engine applies
// no quoting or escaping on top, so the output must not contain `"`.
func Transform[V any](fn func(V) []byte) Renderer[V] {
	return Renderer[V]{policy: ValueTransform, transform: fn}
}

// Literal emits text verbatim regardless of the field's runtime value.
// Combined with a skipping presence policy it renders boolean-flag shaped
// attributes where presence alone carries the information.
func Literal[V any](text string) Renderer[V] {
	return Renderer[V]{policy: ValueLiteral, literal: text}
}

// Field is one entry of a Bundle: an attribute descriptor bound to an
// accessor of the owner type T, or a nested bundle. Implementations are
// produced only by this package's constructors.
type Field[T any] interface {
	validate(path string) Issues
	write(t *T, w io.Writer, set WriteSettings, wrote *bool) error
}

type attr[T, V any] struct {
	name     string
	nameEq   []byte // name + `="`, precomputed at construction
	presence PresencePolicy
	get      func(*T) V
	getOpt   func(*T) *V
	pred     func(V) bool
	r        Renderer[V]
}

// Attr describes a field that always emits (PresenceAlways).
func Attr[T, V any](name string, get func(*T) V, r Renderer[V]) Field[T] {
	return &attr[T, V]{name: name, nameEq: nameEqBytes(name), presence: PresenceAlways, get: get, r: r}
}

// AttrIfSome describes an optional field emitted only when populated. The
// accessor returns nil to skip; a non-nil pointer is unwrapped and the inner
// value drives the value policy.
func AttrIfSome[T, V any](name string, get func(*T) *V, r Renderer[V]) Field[T] {
	return &attr[T, V]{name: name, nameEq: nameEqBytes(name), presence: PresenceIfSome, getOpt: get, r: r}
}

// AttrIfNotDefault describes a field emitted only when its value differs
// from V's zero value.
func AttrIfNotDefault[T any, V comparable](name string, get func(*T) V, r Renderer[V]) Field[T] {
	var zero V
	return &attr[T, V]{
		name:     name,
		nameEq:   nameEqBytes(name),
		presence: PresenceIfNotDefault,
		get:      get,
		pred:     func(v V) bool { return v != zero },
		r:        r,
	}
}

// AttrIf describes a field emitted only when pred holds for its current
// value.
func AttrIf[T, V any](name string, get func(*T) V, pred func(V) bool, r Renderer[V]) Field[T] {
	return &attr[T, V]{name: name, nameEq: nameEqBytes(name), presence: PresenceIfPredicate, get: get, pred: pred, r: r}
}

func nameEqBytes(name string) []byte {
	b := make([]byte, 0, len(name)+2)
	b = append(b, name...)
	return append(b, '=', '"')
}

// validAttributeName rejects names that would break the surrounding
// start-tag: empty names, whitespace, control bytes and markup delimiters.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c <= ' ':
			return false
		case c == '"' || c == '\'' || c == '=' || c == '<' || c == '>' || c == '/':
			return false
		}
	}
	return true
}

func (a *attr[T, V]) validate(path string) Issues {
	var iss Issues
	if !validAttributeName(a.name) {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidName, Message: "attribute name is empty or contains markup delimiters", Hint: a.name})
	}
	switch a.presence {
	case PresenceIfSome:
		if a.getOpt == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "IfSome descriptor requires an accessor"})
		}
	case PresenceIfPredicate:
		if a.pred == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "IfPredicate descriptor requires a predicate"})
		}
		fallthrough
	default:
		if a.get == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "descriptor requires an accessor"})
		}
	}
	switch a.r.policy {
	case ValuePassThrough:
		if a.r.write == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "missing value policy; use Verbatim, Transform or Literal"})
		}
	case ValueTransform:
		if a.r.transform == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "Transform descriptor requires a function"})
		}
	case ValueLiteral:
		for i := 0; i < len(a.r.literal); i++ {
			if a.r.literal[i] == '"' {
				iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidLiteral, Message: "literal value must not contain a quote", Hint: a.r.literal})
				break
			}
		}
	}
	return iss
}

func (a *attr[T, V]) write(t *T, w io.Writer, set WriteSettings, wrote *bool) error {
	var v V
	if a.presence == PresenceIfSome {
		p := a.getOpt(t)
		if p == nil {
			return nil
		}
		v = *p
	} else {
		v = a.get(t)
		if a.pred != nil && !a.pred(v) {
			return nil
		}
	}

	if *wrote {
		if _, err := w.Write(sepSpace); err != nil {
			return err
		}
	}
	if _, err := w.Write(a.nameEq); err != nil {
		return err
	}
	switch a.r.policy {
	case ValueTransform:
		if _, err := w.Write(a.r.transform(v)); err != nil {
			return err
		}
	case ValueLiteral:
		if _, err := io.WriteString(w, a.r.literal); err != nil {
			return err
		}
	default:
		if err := a.r.write(v, w, set); err != nil {
			return err
		}
	}
	if _, err := w.Write(closeQuote); err != nil {
		return err
	}
	*wrote = true
	return nil
}
