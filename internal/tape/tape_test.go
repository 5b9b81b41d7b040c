package tape

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("Open \"Moonrise Static\" # comment\nDrag \"A\" -5 10\nSleep 500ms\n")
	if err != nil {
		t.Fatal(err)
	}

	var got []TokenType
	for _, tok := range tokens {
		got = append(got, tok.Type)
	}
	want := []TokenType{
		TokenIdent, TokenString, TokenNewline,
		TokenIdent, TokenString, TokenNumber, TokenNumber, TokenNewline,
		TokenIdent, TokenDuration, TokenNewline,
		TokenEOF,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("token types = %v, want %v", got, want)
	}
	if tokens[1].Literal != "Moonrise Static" {
		t.Errorf("string literal = %q", tokens[1].Literal)
	}
	if tokens[5].Literal != "-5" || tokens[5].Line != 2 {
		t.Errorf("number token = %+v", tokens[5])
	}
}

func TestTokenizeEscapes(t *testing.T) {
	tokens, err := Tokenize(`Open "say \"hi\""`)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[1].Literal != `say "hi"` {
		t.Errorf("got %q", tokens[1].Literal)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unterminated", `Open "About`, "unterminated string"},
		{"newline in string", "Open \"Ab\nout\"", "unterminated string"},
		{"stray character", "Open @", "unexpected character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	src := `
# open two windows and shuffle them
Open "About"
Open "Tour Dates"
Drag "About" 10 -2
Minimize "Tour Dates"
Taskbar "Tour Dates"
Key "space"
NextWindow
Sleep 1.5
Frames 3
Expect "About" focused
Close "About"
`
	cmds, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	var types []CommandType
	for _, c := range cmds {
		types = append(types, c.Type)
	}
	want := []CommandType{
		CommandTypeOpen, CommandTypeOpen, CommandTypeDrag, CommandTypeMinimize,
		CommandTypeTaskbar, CommandTypeKey, CommandTypeNext, CommandTypeSleep,
		CommandTypeFrames, CommandTypeExpect, CommandTypeClose,
	}
	if !slices.Equal(types, want) {
		t.Fatalf("types = %v, want %v", types, want)
	}

	if got := cmds[2].Args; !slices.Equal(got, []string{"About", "10", "-2"}) {
		t.Errorf("drag args = %v", got)
	}
	if cmds[2].Line != 5 {
		t.Errorf("drag line = %d, want 5", cmds[2].Line)
	}
	if cmds[7].Delay != 1500*time.Millisecond {
		t.Errorf("sleep delay = %v", cmds[7].Delay)
	}
	if got := cmds[2].String(); got != `Drag "About" 10 -2` {
		t.Errorf("String() = %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown command", `Resize "About"`, `unknown command "Resize"`},
		{"missing argument", `Open`, "takes 1 argument(s), got 0"},
		{"unquoted title", `Open About`, "expected a quoted string"},
		{"empty title", `Open ""`, "empty title"},
		{"bad offset", `Drag "About" 1s 2`, "expected a number"},
		{"bad duration", `Sleep 5parsecs`, "invalid duration"},
		{"negative frames", `Frames -1`, "must not be negative"},
		{"bad state", `Expect "About" maximized`, "unknown window state"},
		{"not a command", `"About"`, "expected a command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseReportsEveryBadLine(t *testing.T) {
	_, err := Parse("Open\nOpen \"About\"\nFly \"x\"\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "1:1") || !strings.Contains(msg, "3:1") {
		t.Errorf("expected errors for lines 1 and 3, got %q", msg)
	}
}

// recorder is an Executor that records calls.
type recorder struct {
	calls   []string
	advance time.Duration
	fail    string
}

func (r *recorder) record(format string, args ...any) error {
	call := fmt.Sprintf(format, args...)
	r.calls = append(r.calls, call)
	if r.fail != "" && strings.HasPrefix(call, r.fail) {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) OpenWindow(title string) error     { return r.record("open %s", title) }
func (r *recorder) CloseWindow(title string) error    { return r.record("close %s", title) }
func (r *recorder) FocusWindow(title string) error    { return r.record("focus %s", title) }
func (r *recorder) MinimizeWindow(title string) error { return r.record("minimize %s", title) }
func (r *recorder) ClickTaskbar(title string) error   { return r.record("taskbar %s", title) }
func (r *recorder) DragWindow(title string, dx, dy int) error {
	return r.record("drag %s %d %d", title, dx, dy)
}
func (r *recorder) CycleWindows(forward bool) error { return r.record("cycle %v", forward) }
func (r *recorder) SendKey(key string) error        { return r.record("key %s", key) }
func (r *recorder) Advance(d time.Duration) error {
	r.advance += d
	return r.record("advance %v", d)
}
func (r *recorder) ExpectWindow(title, state string) error {
	return r.record("expect %s %s", title, state)
}

func TestCommandExecutorRun(t *testing.T) {
	cmds, err := Parse(`Open "A"
Drag "A" 3 4
PrevWindow
Frames 6
Sleep 250ms
Expect "A" visible
`)
	if err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	if err := NewCommandExecutor(rec).Run(cmds); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"open A",
		"drag A 3 4",
		"cycle false",
		fmt.Sprintf("advance %v", 6*FrameInterval),
		"advance 250ms",
		"expect A visible",
	}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestCommandExecutorStopsAtFirstError(t *testing.T) {
	cmds, err := Parse("Open \"A\"\nClose \"B\"\nOpen \"C\"\n")
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{fail: "close"}

	err = NewCommandExecutor(rec).Run(cmds)
	if err == nil || !strings.Contains(err.Error(), `line 2: Close "B"`) {
		t.Fatalf("expected line 2 error, got %v", err)
	}
	if len(rec.calls) != 2 {
		t.Errorf("expected execution to stop after the failure, got %v", rec.calls)
	}
}

func TestCommandExecutorNil(t *testing.T) {
	if err := NewCommandExecutor(nil).Execute(&Command{Type: CommandTypeOpen, Args: []string{"A"}}); err != nil {
		t.Errorf("nil executor should be a no-op, got %v", err)
	}
}
