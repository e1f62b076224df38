package cmdline

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		command string
		args    []string
	}{
		{"/send hello world", "send", []string{"hello", "world"}},
		{"/quit", "quit", []string{}},
		{"  /connect   ws://localhost:8080  ", "connect", []string{"ws://localhost:8080"}},
		{"/x\ta\t\tb", "x", []string{"a", "b"}},
		{`/send "hi there" x`, "send", []string{"hi there", "x"}},
		{`/send 'single "quoted"'`, "send", []string{`single "quoted"`}},
		{`/send "a\"b\\c\d"`, "send", []string{`a"b\c\d`}},
		{`/x ab"c d"'e f'g`, "x", []string{"abc de fg"}},
		{`/x "" ''`, "x", []string{"", ""}},
		{"/send héllo wörld", "send", []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		l, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if l.Command != tt.command {
			t.Errorf("Parse(%q).Command = %q, want %q", tt.input, l.Command, tt.command)
		}
		if !reflect.DeepEqual(l.Values(), tt.args) {
			t.Errorf("Parse(%q) args = %q, want %q", tt.input, l.Values(), tt.args)
		}
		if !l.IsCommand() {
			t.Errorf("Parse(%q).IsCommand() = false", tt.input)
		}
	}
}

func TestParsePlainText(t *testing.T) {
	l, err := Parse("hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.IsCommand() {
		t.Errorf("expected plain text, got command %q", l.Command)
	}
	if l.Text != "hello there" {
		t.Errorf("Text = %q, want %q", l.Text, "hello there")
	}
	if l.Empty() {
		t.Error("Empty() = true for plain text")
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t \t"} {
		l, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if !l.Empty() {
			t.Errorf("Parse(%q).Empty() = false: %+v", input, l)
		}
	}
}

func TestParseSpans(t *testing.T) {
	l, err := Parse(`  /send "hi there" x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.CommandSpan != (Span{Start: 2, End: 7}) {
		t.Errorf("CommandSpan = %+v", l.CommandSpan)
	}
	want := []Span{{Start: 8, End: 18}, {Start: 19, End: 20}}
	for i, span := range want {
		if l.Args[i].Span != span {
			t.Errorf("Args[%d].Span = %+v, want %+v", i, l.Args[i].Span, span)
		}
	}

	if got := l.ArgAt(10); got != 0 {
		t.Errorf("ArgAt(10) = %d, want 0", got)
	}
	if got := l.ArgAt(19); got != 1 {
		t.Errorf("ArgAt(19) = %d, want 1", got)
	}
	if got := l.ArgAt(18); got != -1 {
		t.Errorf("ArgAt(18) = %d, want -1", got)
	}
}

func TestParseSpansCountCodePoints(t *testing.T) {
	l, err := Parse("/send ü x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Args[1].Span != (Span{Start: 8, End: 9}) {
		t.Errorf("Args[1].Span = %+v, want {8 9}", l.Args[1].Span)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input     string
		offset    int
		msg       string
		remainder string
	}{
		{`/send "abc`, 6, "unterminated double quote", `"abc`},
		{`/send ok 'abc def`, 9, "unterminated single quote", `'abc def`},
		{`/send "abc\"`, 6, "unterminated double quote", `"abc\"`},
		{`/send "abc\`, 6, "unterminated double quote", `"abc\`},
		{`/send ü "abc`, 8, "unterminated double quote", `"abc`},
		{`/x "ok" 'ü' "a b`, 12, "unterminated double quote", `"a b`},
		{"/", 0, "missing command name", "/"},
		{" / send", 1, "missing command name", "/ send"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("Parse(%q): expected *SyntaxError, got %v", tt.input, err)
		}
		if syntaxErr.Offset != tt.offset {
			t.Errorf("Parse(%q) offset = %d, want %d", tt.input, syntaxErr.Offset, tt.offset)
		}
		if syntaxErr.Msg != tt.msg {
			t.Errorf("Parse(%q) msg = %q, want %q", tt.input, syntaxErr.Msg, tt.msg)
		}
		if syntaxErr.Remainder != tt.remainder {
			t.Errorf("Parse(%q) remainder = %q, want %q", tt.input, syntaxErr.Remainder, tt.remainder)
		}
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := &SyntaxError{Offset: 6, Msg: "unterminated double quote", Remainder: `"abc`}
	want := `7: unterminated double quote near "\"abc"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
