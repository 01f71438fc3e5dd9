package textproc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInputNotFound    = errors.New("input file does not exist")
	ErrInputIsDir       = errors.New("input path is a directory")
	ErrInputUnreadable  = errors.New("permission denied: cannot read input")
	ErrOutputUnwritable = errors.New("permission denied: cannot write to output directory")
	ErrNotText          = errors.New("could not decode the file - it may be a binary file")
	ErrWriteFailed      = errors.New("error writing to file")
)

// Document is file content split into lines without terminators.
type Document struct {
	Lines           []string
	TrailingNewline bool
}

// Transform numbers lines from 1 and uppercases them with full Unicode case mapping.
func Transform(lines []string) []string {
	upper := cases.Upper(language.Und)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d: %s", i+1, upper.String(line))
	}
	return out
}

// SplitDocument treats CRLF, lone CR and LF as line breaks and splits on them.
func SplitDocument(content string) Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content == "" {
		return Document{Lines: []string{}}
	}
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = strings.TrimSuffix(content, "\n")
	}
	return Document{
		Lines:           strings.Split(content, "\n"),
		TrailingNewline: trailing,
	}
}

func (d Document) String() string {
	if len(d.Lines) == 0 {
		return ""
	}
	out := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		out += "\n"
	}
	return out
}

// Transformed returns a copy of d with Transform applied to its lines.
func (d Document) Transformed() Document {
	return Document{
		Lines:           Transform(d.Lines),
		TrailingNewline: d.TrailingNewline,
	}
}
