package serlog

import (
	"fmt"
	"io"
	"strings"
)

// maxDirectives bounds the directive set. Entries parsed beyond the capacity
// are dropped with a diagnostic, not an error.
const maxDirectives = 8

// directive is one filter rule: an optional target-name prefix and the
// maximum level it enables. An empty name matches every target (the global
// fallback form, written as a bare level in the spec string).
type directive struct {
	name  string
	level Level
}

// directiveSet is the fixed-capacity, insertion-ordered rule storage.
//
// Matching scans backward and stops at the first applicable entry, so the
// arrangement "least specific first, most specific last" is a precondition of
// correct longest-prefix behavior. The parser preserves spec-string order and
// does not sort; operators writing "a=info,a::b=debug" get the intended
// result, operators writing the reverse get the broad rule shadowing the
// narrow one.
type directiveSet struct {
	entries [maxDirectives]directive
	count   int
}

func (ds *directiveSet) append(d directive, diag io.Writer) {
	if ds.count >= maxDirectives {
		diagf(diag, "serlog: too many filter directives (max %d), dropping %q", maxDirectives, directiveString(d))
		return
	}
	ds.entries[ds.count] = d
	ds.count++
}

// enabled reports whether a record at level for target passes the set. The
// scan runs from the most recently appended entry backward and returns on the
// first directive whose name is empty or prefixes target. An empty set denies
// everything.
func (ds *directiveSet) enabled(level Level, target string) bool {
	for i := ds.count - 1; i >= 0; i-- {
		d := &ds.entries[i]
		if d.name == "" || strings.HasPrefix(target, d.name) {
			return level <= d.level
		}
	}
	return false
}

// maxLevel returns the highest level any directive can enable, Off when the
// set is empty. Installed once at Init as the fast-reject ceiling.
func (ds *directiveSet) maxLevel() Level {
	level := Off
	for i := 0; i < ds.count; i++ {
		if ds.entries[i].level > level {
			level = ds.entries[i].level
		}
	}
	return level
}

// parseFilterSpec parses an operator filter spec into a directive set.
//
// Grammar: comma-separated entries of the form "target", "target=level", or a
// bare level acting as the global fallback, optionally followed by a single
// '/'-separated tail (reserved, ignored). Malformed entries degrade locally:
// the entry is dropped with a diagnostic on diag and parsing continues. A
// spec with more than one '/' is rejected wholesale and yields the empty
// (deny-all) set.
func parseFilterSpec(spec string, diag io.Writer) directiveSet {
	var ds directiveSet
	mods := spec
	if i := strings.IndexByte(spec, '/'); i >= 0 {
		if strings.IndexByte(spec[i+1:], '/') >= 0 {
			diagf(diag, "serlog: malformed filter spec %q: more than one '/', logging disabled", spec)
			return directiveSet{}
		}
		mods = spec[:i]
	}
	for _, entry := range strings.Split(mods, ",") {
		if entry == "" {
			continue
		}
		eq := strings.IndexByte(entry, '=')
		if eq < 0 {
			// A bare token: a recognisable level becomes the global
			// fallback, anything else is a target enabled in full.
			if level, ok := ParseLevel(entry); ok {
				ds.append(directive{level: level}, diag)
			} else {
				ds.append(directive{name: entry, level: maxVerbosity}, diag)
			}
			continue
		}
		if strings.IndexByte(entry[eq+1:], '=') >= 0 {
			diagf(diag, "serlog: malformed filter directive %q: multiple '='", entry)
			continue
		}
		name, levelSpec := entry[:eq], entry[eq+1:]
		if levelSpec == "" {
			ds.append(directive{name: name, level: maxVerbosity}, diag)
			continue
		}
		level, ok := ParseLevel(levelSpec)
		if !ok {
			diagf(diag, "serlog: malformed filter directive %q: unknown level %q", entry, levelSpec)
			continue
		}
		ds.append(directive{name: name, level: level}, diag)
	}
	return ds
}

func diagf(diag io.Writer, format string, args ...any) {
	if diag == nil {
		return
	}
	fmt.Fprintf(diag, format, args...)
	_, _ = diag.Write([]byte{'\r', '\n'})
}

func directiveString(d directive) string {
	if d.name == "" {
		return LevelString(d.level)
	}
	return d.name + "=" + LevelString(d.level)
}

// Filter is the exported face of a parsed directive set. It is immutable
// after construction and safe for concurrent use.
type Filter struct {
	set directiveSet
}

// ParseFilter parses spec into a Filter. Diagnostics about malformed or
// dropped entries are written to diag when non-nil; malformed input degrades
// toward logging less, never toward an error.
func ParseFilter(spec string, diag io.Writer) Filter {
	return Filter{set: parseFilterSpec(spec, diag)}
}

// Enabled reports whether a record at level for target would be emitted.
func (f Filter) Enabled(level Level, target string) bool {
	return f.set.enabled(level, target)
}

// MaxLevel returns the highest level any directive enables, Off when the
// filter is empty.
func (f Filter) MaxLevel() Level {
	return f.set.maxLevel()
}

// Len returns the number of directives held by the filter.
func (f Filter) Len() int {
	return f.set.count
}
