// Package cmdline tokenizes terminal input lines such as
//
//	/send "hello world" 'single quoted' plain
//
// into a command name and its arguments.
package cmdline

import (
	"strings"

	"github.com/dhamidi/parsee/parsee"
)

var blanks = []string{" ", "\t"}

// Span is a half-open range of code point offsets within a line.
type Span struct {
	Start int
	End   int
}

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Arg is a single argument with quotes removed and escapes resolved.
type Arg struct {
	Value string
	Span  Span
}

// Line is a parsed input line. A line that does not start with a slash is
// a plain message: Command is empty and Text holds the line as typed.
type Line struct {
	Command     string
	CommandSpan Span
	Args        []Arg
	Text        string
}

// Empty reports whether the line had no content.
func (l Line) Empty() bool {
	return l.Command == "" && l.Text == ""
}

// IsCommand reports whether the line is a slash command.
func (l Line) IsCommand() bool {
	return l.Command != ""
}

// Values returns the argument values in order.
func (l Line) Values() []string {
	values := make([]string, len(l.Args))
	for i, arg := range l.Args {
		values[i] = arg.Value
	}
	return values
}

// ArgAt returns the index of the argument covering offset, or -1.
func (l Line) ArgAt(offset int) int {
	for i, arg := range l.Args {
		if arg.Span.Contains(offset) {
			return i
		}
	}
	return -1
}

type lineParser struct {
	cur   *parsee.Cursor
	line  string
	total int
}

// Parse tokenizes a single line of input.
func Parse(line string) (Line, error) {
	p := &lineParser{cur: parsee.New(line), line: line}
	p.total = p.cur.Len()
	return p.parse()
}

func (p *lineParser) offset() int {
	return p.total - p.cur.Len()
}

func (p *lineParser) skipBlanks() {
	for p.cur.Read(" ") || p.cur.Read("\t") {
	}
}

func (p *lineParser) atBlank() bool {
	return p.cur.StartsWith(" ") || p.cur.StartsWith("\t")
}

func (p *lineParser) parse() (Line, error) {
	p.skipBlanks()
	if p.cur.Len() == 0 {
		return Line{}, nil
	}

	start := p.offset()
	if !p.cur.Read("/") {
		return Line{Text: p.line}, nil
	}

	name := p.cur.ReadUntil(blanks...)
	if name == "" {
		return Line{}, p.errorAt(start, "missing command name")
	}

	l := Line{
		Command:     name,
		CommandSpan: Span{Start: start, End: p.offset()},
		Text:        p.line,
	}

	for {
		p.skipBlanks()
		if p.cur.Len() == 0 {
			break
		}
		arg, err := p.parseArg()
		if err != nil {
			return l, err
		}
		l.Args = append(l.Args, arg)
	}

	return l, nil
}

// parseArg reads one argument. Quoted and unquoted parts that touch are
// joined, so ab"c d" yields "abc d".
func (p *lineParser) parseArg() (Arg, error) {
	start := p.offset()
	var b strings.Builder

	for p.cur.Len() > 0 && !p.atBlank() {
		switch {
		case p.cur.StartsWith(`"`):
			at := p.offset()
			p.cur.Read(`"`)
			if !p.readDoubleQuoted(&b) {
				return Arg{}, p.errorAt(at, "unterminated double quote")
			}
		case p.cur.StartsWith("'"):
			at := p.offset()
			p.cur.Read("'")
			b.WriteString(p.cur.ReadUntil("'"))
			if !p.cur.Read("'") {
				return Arg{}, p.errorAt(at, "unterminated single quote")
			}
		default:
			b.WriteString(p.cur.ReadUntil(" ", "\t", `"`, "'"))
		}
	}

	return Arg{Value: b.String(), Span: Span{Start: start, End: p.offset()}}, nil
}

func (p *lineParser) errorAt(offset int, msg string) *SyntaxError {
	return &SyntaxError{Offset: offset, Msg: msg, Remainder: string([]rune(p.line)[offset:])}
}

// readDoubleQuoted reads up to and including the closing quote. Only \" and
// \\ are escapes; any other backslash is kept as is.
func (p *lineParser) readDoubleQuoted(b *strings.Builder) bool {
	for {
		b.WriteString(p.cur.ReadUntil(`"`, `\`))
		switch {
		case p.cur.Read(`"`):
			return true
		case p.cur.Read(`\"`):
			b.WriteString(`"`)
		case p.cur.Read(`\\`):
			b.WriteString(`\`)
		case p.cur.Read(`\`):
			b.WriteString(`\`)
		default:
			return false
		}
	}
}
