package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	// ErrEmptySymbol is returned when parsing with an empty range symbol.
	ErrEmptySymbol = errors.New("empty range symbol")
	// ErrBadToken is returned when a token cannot be parsed as a number or a range.
	ErrBadToken = errors.New("malformed range token")
)

// Run is one maximal run of consecutive integers, inclusive on both ends.
// A singleton run has First == Last.
type Run[T constraints.Integer] struct {
	First T
	Last  T
}

// Len returns the number of integers covered by the run.
func (r Run[T]) Len() int {
	return int(r.Last-r.First) + 1
}

type options struct {
	sep       string
	sym       string
	exclusive bool
	negatives bool
}

func defaultOptions() options {
	return options{sep: " ", sym: " to "}
}

// Option configures Format, FormatRuns and Parse.
type Option func(*options)

// WithSeparator sets the string joining rendered runs. Default is a single space.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.sep = sep
	}
}

// WithSymbol sets the symbol rendered between the bounds of a run. Default is " to ".
func WithSymbol(sym string) Option {
	return func(o *options) {
		o.sym = sym
	}
}

// Exclusive renders the upper bound of a run as one past its last member,
// expressing "up to but not including".
func Exclusive() Option {
	return func(o *options) {
		o.exclusive = true
	}
}

// KeepNegative keeps negative integers instead of dropping them.
func KeepNegative() Option {
	return func(o *options) {
		o.negatives = true
	}
}

// Runs deduplicates and sorts ints ascending and partitions the result into
// maximal runs where consecutive elements differ by exactly one. The returned
// runs are disjoint, ordered and cover exactly the deduplicated input.
func Runs[T constraints.Integer](ints []T) []Run[T] {
	if len(ints) == 0 {
		return nil
	}

	sorted := slices.Clone(ints)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	runs := []Run[T]{{First: sorted[0], Last: sorted[0]}}
	for _, v := range sorted[1:] {
		if v-runs[len(runs)-1].Last > 1 {
			runs = append(runs, Run[T]{First: v, Last: v})
		} else {
			runs[len(runs)-1].Last = v
		}
	}
	return runs
}

// Format renders ints as a minimal string of compressed runs, e.g.
// "1 to 4 10 15 to 17". Negative integers are dropped unless KeepNegative is
// given. An empty (or fully filtered) input renders as the empty string.
func Format[T constraints.Integer](ints []T, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	kept := ints
	if !o.negatives {
		kept = make([]T, 0, len(ints))
		for _, v := range ints {
			if v >= 0 {
				kept = append(kept, v)
			}
		}
	}

	return formatRuns(Runs(kept), o)
}

// FormatRuns renders already partitioned runs with the same rules as Format.
// No filtering is applied.
func FormatRuns[T constraints.Integer](runs []Run[T], opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return formatRuns(runs, o)
}

func formatRuns[T constraints.Integer](runs []Run[T], o options) string {
	if len(runs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runs {
		if i > 0 {
			sb.WriteString(o.sep)
		}
		sb.WriteString(fmt.Sprintf("%d", r.First))
		if r.First != r.Last {
			last := r.Last
			if o.exclusive {
				last++
			}
			sb.WriteString(o.sym)
			sb.WriteString(fmt.Sprintf("%d", last))
		}
	}
	return sb.String()
}

// Parse expands a string produced by Format back into its member integers,
// in the order rendered. The same separator, symbol and exclusivity must be
// supplied. The separator must not equal the symbol.
func Parse(s string, opts ...Option) ([]int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sym == "" {
		return nil, ErrEmptySymbol
	}
	if s == "" {
		return nil, nil
	}

	// The symbol may contain the separator (e.g. " to " with separator " "),
	// so mark symbol occurrences before splitting.
	const mark = "\x00"
	marked := strings.ReplaceAll(s, o.sym, mark)

	var ints []int
	for _, tok := range strings.Split(marked, o.sep) {
		first, last, isRange := strings.Cut(tok, mark)
		lo, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		if !isRange {
			ints = append(ints, lo)
			continue
		}

		hi, err := strconv.Atoi(last)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		if o.exclusive {
			hi--
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		for v := lo; v <= hi; v++ {
			ints = append(ints, v)
		}
	}
	return ints, nil
}
