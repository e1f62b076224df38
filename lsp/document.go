package lsp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parsee/cmdline"
	"github.com/dhamidi/parsee/parsee"
)

// Diagnose returns one error diagnostic per line of text that fails to
// parse. Each diagnostic runs from the offending position to the end of
// its line.
func Diagnose(text string) []protocol.Diagnostic {
	_, errs := cmdline.ParseScript(text)
	sourceLines := strings.Split(text, "\n")

	diagnostics := []protocol.Diagnostic{}
	for _, e := range errs {
		src := strings.TrimSuffix(sourceLines[e.Line-1], "\r")
		line := protocol.UInteger(e.Line - 1)
		severity := protocol.DiagnosticSeverityError
		source := lsName

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: protocol.UInteger(utf16Column(src, e.Err.Offset))},
				End:   protocol.Position{Line: line, Character: protocol.UInteger(utf16Column(src, utf8.RuneCountInString(src)))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  e.Err.Msg,
		})
	}
	return diagnostics
}

// completeCommand returns the commands matching the partial name typed
// before offset, or nil when offset is not within a command name.
func completeCommand(line string, offset int, commands []string) []string {
	runes := []rune(line)
	if offset > len(runes) {
		offset = len(runes)
	}

	c := parsee.New(string(runes[:offset]))
	for c.Read(" ") || c.Read("\t") {
	}
	if !c.Read("/") {
		return nil
	}
	typed := c.ReadUntil(" ", "\t")
	if c.Len() > 0 {
		return nil
	}

	var matches []string
	for _, name := range commands {
		if strings.HasPrefix(name, typed) {
			matches = append(matches, name)
		}
	}
	return matches
}

func hoverText(line string, offset int) string {
	l, err := cmdline.Parse(line)
	if err != nil || !l.IsCommand() {
		return ""
	}
	if l.CommandSpan.Contains(offset) {
		return fmt.Sprintf("command /%s with %d arguments", l.Command, len(l.Args))
	}
	if i := l.ArgAt(offset); i >= 0 {
		return fmt.Sprintf("argument %d of /%s: %q", i+1, l.Command, l.Args[i].Value)
	}
	return ""
}

// runeOffset converts a UTF-16 column, as sent by LSP clients, to a code
// point offset within line.
func runeOffset(line string, column int) int {
	units, n := 0, 0
	for _, r := range line {
		if units >= column {
			break
		}
		units += utf16Len(r)
		n++
	}
	return n
}

// utf16Column converts a code point offset within line to a UTF-16 column.
func utf16Column(line string, offset int) int {
	units, n := 0, 0
	for _, r := range line {
		if n >= offset {
			break
		}
		units += utf16Len(r)
		n++
	}
	return units
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
