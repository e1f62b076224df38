package cmdline

import (
	"errors"
	"strings"

	"github.com/dhamidi/parsee/parsee"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parsee.cmdline")

// ScriptLine is a parsed line of a script together with its 1-based line
// number.
type ScriptLine struct {
	Number int
	Source string
	Line   Line
}

// ParseScript parses every line of text. Blank lines and lines whose first
// non-blank character is '#' are skipped. Lines that fail to parse are
// reported in errs and left out of lines, so all problems are returned at
// once.
func ParseScript(text string) (lines []ScriptLine, errs []*LineError) {
	c := parsee.New(text)
	number := 0

	for c.Len() > 0 {
		number++
		source := strings.TrimSuffix(c.ReadUntil("\n"), "\r")
		c.Read("\n")

		if strings.HasPrefix(strings.TrimLeft(source, " \t"), "#") {
			continue
		}

		l, err := Parse(source)
		if err != nil {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				syntaxErr = &SyntaxError{Msg: err.Error()}
			}
			errs = append(errs, &LineError{Line: number, Err: syntaxErr})
			continue
		}
		if l.Empty() {
			continue
		}
		lines = append(lines, ScriptLine{Number: number, Source: source, Line: l})
	}

	log.Debugf("parsed %d lines, %d errors", len(lines), len(errs))
	return lines, errs
}
