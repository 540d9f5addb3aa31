package svgattr

import (
	"bytes"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ValueCodec converts between V and its delimited-list entry text. Format
// must produce exactly the text Parse accepts back; the container relies on
// that round-trip for Pop and Values.
//
// The shape mirrors a wire/domain codec pair: Format is the encode
// direction, Parse the decode direction.
type ValueCodec[V any] interface {
	Format(v V) string
	Parse(s string) (V, error)
}

// TextCodec is the identity codec for plain string entries.
func TextCodec() ValueCodec[string] { return textCodec{} }

type textCodec struct{}

func (textCodec) Format(s string) string         { return s }
func (textCodec) Parse(s string) (string, error) { return s, nil }

// DelimitedValues stores an ordered collection of V values as one
// undelimited string with a single-byte delimiter between logical entries.
// Empty storage means zero entries. The container maintains these invariants
// through every mutation: no leading or trailing delimiter, no two adjacent
// delimiters, and every entry round-trips through the codec.
//
// The zero value is unusable; construct via NewDelimited, ParseDelimited or
// RawDelimited.
type DelimitedValues[V any] struct {
	delim byte
	codec ValueCodec[V]
	inner []byte
}

// NewDelimited returns an empty list. The delimiter must be a printable
// ASCII byte other than `"`; anything else panics, as does a nil codec —
// both are programming errors, not runtime conditions.
func NewDelimited[V any](delim byte, codec ValueCodec[V]) *DelimitedValues[V] {
	checkDelimiter(delim)
	if codec == nil {
		panic("svgattr: NewDelimited requires a codec")
	}
	return &DelimitedValues[V]{delim: delim, codec: codec}
}

// ParseDelimited is the checked constructor: it rejects raw text with a
// leading, trailing or doubled delimiter, and any entry the codec cannot
// parse back.
func ParseDelimited[V any](delim byte, codec ValueCodec[V], raw string) (*DelimitedValues[V], error) {
	var iss Issues
	if !validDelimiter(delim) {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidDelimiter, Message: "delimiter must be a printable ASCII byte", Hint: strconv.Itoa(int(delim))}}
	}
	if codec == nil {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidPolicy, Message: "ParseDelimited requires a codec"}}
	}
	if raw != "" {
		if raw[0] == delim || raw[len(raw)-1] == delim {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeParseError, Message: "leading or trailing delimiter", Hint: raw})
		}
		start := 0
		entry := 0
		for i := 0; i <= len(raw); i++ {
			if i != len(raw) && raw[i] != delim {
				continue
			}
			e := raw[start:i]
			path := "/" + strconv.Itoa(entry)
			if e == "" {
				// Leading/trailing delimiters were reported above; an
				// interior empty entry means adjacent delimiters.
				if start != 0 && i != len(raw) {
					iss = AppendIssues(iss, Issue{Path: path, Code: CodeParseError, Message: "adjacent delimiters"})
				}
			} else if _, err := codec.Parse(e); err != nil {
				iss = AppendIssues(iss, Issue{Path: path, Code: CodeParseError, Message: "entry does not parse as the value type", Hint: e, Cause: err})
			}
			start = i + 1
			entry++
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &DelimitedValues[V]{delim: delim, codec: codec, inner: []byte(raw)}, nil
}

// RawDelimited adopts raw without validation. The caller promises that raw
// upholds the container invariants: no leading/trailing/doubled delimiter
// and every entry parseable by the codec. Intended for trusted system
// boundaries only; prefer ParseDelimited everywhere else.
func RawDelimited[V any](delim byte, codec ValueCodec[V], raw string) *DelimitedValues[V] {
	d := NewDelimited(delim, codec)
	d.inner = []byte(raw)
	return d
}

func validDelimiter(delim byte) bool {
	return delim >= ' ' && delim < 0x80 && delim != '"'
}

func checkDelimiter(delim byte) {
	if !validDelimiter(delim) {
		panic("svgattr: delimiter must be a printable ASCII byte, got " + strconv.Itoa(int(delim)))
	}
}

// Delimiter returns the delimiter byte.
func (d DelimitedValues[V]) Delimiter() byte { return d.delim }

// Empty reports whether the list holds zero entries.
func (d DelimitedValues[V]) Empty() bool { return len(d.inner) == 0 }

// Len returns the number of logical entries.
func (d DelimitedValues[V]) Len() int {
	if len(d.inner) == 0 {
		return 0
	}
	return bytes.Count(d.inner, []byte{d.delim}) + 1
}

// String returns the backing storage verbatim.
func (d DelimitedValues[V]) String() string { return string(d.inner) }

// WriteValue writes the backing storage verbatim.
func (d DelimitedValues[V]) WriteValue(w io.Writer, _ WriteSettings) error {
	_, err := w.Write(d.inner)
	return err
}

// Push appends a value, inserting the delimiter when storage is non-empty.
func (d *DelimitedValues[V]) Push(v V) {
	d.PushText(d.codec.Format(v))
}

// PushText appends pre-serialized entry text. The caller promises the text
// is a valid textual representation of V, i.e. the codec would parse it
// without error. Use Push when validity is not already known.
func (d *DelimitedValues[V]) PushText(text string) {
	if len(d.inner) != 0 {
		d.inner = append(d.inner, d.delim)
	}
	d.inner = append(d.inner, text...)
}

// Pop removes and returns the last entry. It reports false on an empty
// list; absence is an expected outcome, not an error.
func (d *DelimitedValues[V]) Pop() (V, bool) {
	var zero V
	if len(d.inner) == 0 {
		return zero, false
	}
	var tail string
	if i := bytes.LastIndexByte(d.inner, d.delim); i >= 0 {
		tail = string(d.inner[i+1:])
		d.inner = d.inner[:i]
	} else {
		tail = string(d.inner)
		d.inner = d.inner[:0]
	}
	return d.mustParse(tail), true
}

// Remove deletes the first textual occurrence of v's serialized form and
// reports whether a match was found. Exactly one adjacent delimiter is
// consumed with the match: the one after it, unless the match ends the
// storage (then the one before it); none when the match is the entire
// storage. That asymmetry is what keeps the no-stray-delimiter invariants.
//
// Like Contains, matching is purely textual, not entry-boundary aware: an
// entry whose text occurs inside another entry (for example "en" inside
// "en-US") can be matched in the middle of that entry. This is a known,
// deliberate limitation kept for compatibility.
func (d *DelimitedValues[V]) Remove(v V) bool {
	text := d.codec.Format(v)
	if text == "" {
		return false
	}
	start := bytes.Index(d.inner, []byte(text))
	if start < 0 {
		return false
	}
	end := start + len(text)
	switch {
	case end != len(d.inner):
		end++
	case start != 0:
		start--
	}
	d.inner = append(d.inner[:start], d.inner[end:]...)
	return true
}

// Contains reports whether v's serialized form occurs in the storage. This
// is a substring check, not an entry-boundary-aware one; it can report true
// when one entry's text is a substring of another's.
func (d DelimitedValues[V]) Contains(v V) bool {
	text := d.codec.Format(v)
	if text == "" {
		return false
	}
	return bytes.Contains(d.inner, []byte(text))
}

// Entries returns a lazy, restartable sequence over the delimiter-separated
// entry texts. Each call snapshots the current storage.
func (d DelimitedValues[V]) Entries() iter.Seq[string] {
	snapshot := string(d.inner)
	delim := d.delim
	return func(yield func(string) bool) {
		rest := snapshot
		if rest == "" {
			return
		}
		for {
			i := strings.IndexByte(rest, delim)
			if i < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:i]) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// Values returns a lazy, restartable sequence over entries parsed into V on
// demand. Parsing cannot fail for storage built through this package's
// constructors and mutators; a failure indicates a broken codec or misuse
// of RawDelimited/PushText and panics.
func (d DelimitedValues[V]) Values() iter.Seq[V] {
	entries := d.Entries()
	return func(yield func(V) bool) {
		for e := range entries {
			if !yield(d.mustParse(e)) {
				return
			}
		}
	}
}

func (d DelimitedValues[V]) mustParse(text string) V {
	v, err := d.codec.Parse(text)
	if err != nil {
		panic("svgattr: delimited entry failed to round-trip: " + err.Error())
	}
	return v
}
