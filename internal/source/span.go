// Package source holds the small pieces of position information the
// lowering core passes through without interpreting.
package source

import "fmt"

// FileID identifies a source file known to the front end. The core never
// opens files itself; it only threads FileID values it was handed.
type FileID uint32

// NoFileID marks the absence of a file (synthetic nodes, tests).
const NoFileID FileID = 0

// Span is a byte range within a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Cover returns the smallest span enclosing both s and other, provided
// they share a file; otherwise s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
