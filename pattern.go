package chronia

import (
	"strings"
	"sync"
)

// segment is one compiled pattern element: either a run of literal text
// or a token, a maximal run of one pattern letter. symbol is zero for
// literal segments. Compiled segments are immutable and shared by both
// the format and parse engines.
type segment struct {
	symbol  byte
	width   int
	literal string
}

// compilePattern splits a pattern into literal and token segments.
//
// A single quote opens a literal run that ends at the next unescaped
// quote; a doubled quote inside the run emits one literal quote, and an
// unterminated run extends to the end of the pattern. Outside quotes a
// maximal run of one recognized pattern letter becomes a token; every
// other character, unrecognized letters included, is literal text.
// Compilation is therefore total: malformed patterns produce
// deterministic segments, never an error.
func compilePattern(pattern string) []segment {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			before := lit.Len()
			i++
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						lit.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteByte(pattern[i])
				i++
			}
			// Bare '' outside a run is a literal quote.
			if lit.Len() == before {
				lit.WriteByte('\'')
			}
		case isTokenSymbol(c):
			flush()
			j := i + 1
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			segs = append(segs, segment{symbol: c, width: j - i})
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return segs
}

// isTokenSymbol reports whether c belongs to the closed token vocabulary.
// The formatter table is the single source of truth, so the compiler can
// never emit a token the engines do not know.
func isTokenSymbol(c byte) bool {
	_, ok := formatters[c]
	return ok
}

// patternCache memoizes compilations keyed by the exact pattern string.
// Entries are immutable once stored, so readers share them without
// further synchronization.
var patternCache = struct {
	sync.RWMutex
	segments map[string][]segment
}{segments: make(map[string][]segment)}

func compiledPattern(pattern string) []segment {
	patternCache.RLock()
	segs, ok := patternCache.segments[pattern]
	patternCache.RUnlock()
	if ok {
		return segs
	}

	segs = compilePattern(pattern)

	patternCache.Lock()
	patternCache.segments[pattern] = segs
	patternCache.Unlock()
	return segs
}
