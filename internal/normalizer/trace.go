package normalizer

import (
	"regexp"
	"strings"

	"fjacquet/realisasi/internal/models"
)

// TraceCapacity is the number of hierarchy levels a Trace remembers.
const TraceCapacity = 7

// Slots overwritten once the trace is full, chosen by segment shape.
const (
	slotComponent = 4 // three digits, e.g. "052"
	slotSubComp   = 5 // digit followed by a letter, e.g. "6a"
	slotAccount   = 6 // six digits, e.g. "521211"
)

var (
	sixDigits   = regexp.MustCompile(`^[0-9]{6}$`)
	threeDigits = regexp.MustCompile(`^[0-9]{3}$`)
	digitLetter = regexp.MustCompile(`^[0-9][A-Za-z]$`)
)

// Trace remembers the most recently confirmed code segment at each hierarchy
// level. A fresh Trace is created for every pipeline run.
type Trace struct {
	slots []string
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{slots: make([]string, 0, TraceCapacity)}
}

// Observe records one code segment. Segments already present anywhere in the
// trace are ignored. Until the trace is full new segments are appended; after
// that only six-digit, three-digit and digit+letter segments overwrite their
// fixed slot, and every other shape is dropped.
func (t *Trace) Observe(segment string) {
	if t.Contains(segment) {
		return
	}
	if len(t.slots) < TraceCapacity {
		t.slots = append(t.slots, segment)
		return
	}

	switch {
	case sixDigits.MatchString(segment):
		t.slots[slotAccount] = segment
	case threeDigits.MatchString(segment):
		t.slots[slotComponent] = segment
	case digitLetter.MatchString(segment):
		t.slots[slotSubComp] = segment
	}
}

// Contains reports whether segment occupies any slot.
func (t *Trace) Contains(segment string) bool {
	for _, s := range t.slots {
		if s == segment {
			return true
		}
	}
	return false
}

// Len returns the number of filled slots.
func (t *Trace) Len() int {
	return len(t.slots)
}

// Slots returns a copy of the current slots.
func (t *Trace) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}

// Code joins the slots with ".".
func (t *Trace) Code() string {
	return strings.Join(t.slots, ".")
}

// BuildCodes computes a hierarchical code for every row and writes it to
// column 0 as text.
//
// A non-empty column 0 is taken as the row's code (a trailing ".0" left by
// numeric cells is stripped) and its segments are fed to the trace. An empty
// column 0 inherits the current trace joined with ".". The returned slice
// holds the code of every row, in order.
func BuildCodes(sheet models.Sheet) (models.Sheet, []string) {
	trace := NewTrace()
	codes := make([]string, 0, len(sheet))

	for _, row := range sheet {
		value := row.At(0)
		if value.IsEmpty() {
			codes = append(codes, trace.Code())
			continue
		}

		code := strings.TrimSuffix(value.String(), ".0")
		codes = append(codes, code)
		for _, segment := range strings.Split(code, ".") {
			trace.Observe(segment)
		}
	}

	for i := range sheet {
		row := widen(sheet[i], 1)
		row[0] = models.TextCell(codes[i])
		sheet[i] = row
	}
	return sheet, codes
}
