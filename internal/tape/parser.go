package tape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CommandType names a tape command.
type CommandType string

const (
	CommandTypeOpen     CommandType = "Open"
	CommandTypeClose    CommandType = "Close"
	CommandTypeFocus    CommandType = "Focus"
	CommandTypeMinimize CommandType = "Minimize"
	CommandTypeTaskbar  CommandType = "Taskbar"
	CommandTypeDrag     CommandType = "Drag"
	CommandTypeKey      CommandType = "Key"
	CommandTypeNext     CommandType = "NextWindow"
	CommandTypePrev     CommandType = "PrevWindow"
	CommandTypeSleep    CommandType = "Sleep"
	CommandTypeFrames   CommandType = "Frames"
	CommandTypeExpect   CommandType = "Expect"
)

// argKind is what a command argument must be.
type argKind int

const (
	argString argKind = iota
	argInt
	argDuration
	argState
)

// signatures lists the arguments of every command.
var signatures = map[CommandType][]argKind{
	CommandTypeOpen:     {argString},
	CommandTypeClose:    {argString},
	CommandTypeFocus:    {argString},
	CommandTypeMinimize: {argString},
	CommandTypeTaskbar:  {argString},
	CommandTypeDrag:     {argString, argInt, argInt},
	CommandTypeKey:      {argString},
	CommandTypeNext:     {},
	CommandTypePrev:     {},
	CommandTypeSleep:    {argDuration},
	CommandTypeFrames:   {argInt},
	CommandTypeExpect:   {argString, argState},
}

// WindowStates are the states Expect accepts.
var WindowStates = []string{"open", "closed", "visible", "hidden", "focused"}

// Command is a parsed tape command.
type Command struct {
	Type  CommandType
	Args  []string
	Delay time.Duration // Sleep only
	Line  int
}

func (c Command) String() string {
	parts := []string{string(c.Type)}
	for i, a := range c.Args {
		if sig := signatures[c.Type]; i < len(sig) && sig[i] == argString {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Parse parses a tape script. All syntax errors are reported together.
func Parse(src string) ([]Command, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	var (
		cmds []Command
		errs []error
	)
	for len(tokens) > 0 {
		var line []Token
		i := 0
		for i < len(tokens) && tokens[i].Type != TokenNewline && tokens[i].Type != TokenEOF {
			i++
		}
		line, tokens = tokens[:i], tokens[min(i+1, len(tokens)):]
		if len(line) == 0 {
			continue
		}
		cmd, err := parseLine(line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseLine(line []Token) (Command, error) {
	head := line[0]
	if head.Type != TokenIdent {
		return Command{}, fmt.Errorf("%d:%d: expected a command, got %s", head.Line, head.Column, head.Type)
	}
	typ := CommandType(head.Literal)
	sig, ok := signatures[typ]
	if !ok {
		return Command{}, fmt.Errorf("%d:%d: unknown command %q", head.Line, head.Column, head.Literal)
	}

	args := line[1:]
	if len(args) != len(sig) {
		return Command{}, fmt.Errorf("%d:%d: %s takes %d argument(s), got %d", head.Line, head.Column, typ, len(sig), len(args))
	}

	cmd := Command{Type: typ, Line: head.Line}
	for i, kind := range sig {
		tok := args[i]
		if err := checkArg(kind, tok); err != nil {
			return Command{}, fmt.Errorf("%d:%d: %s: %w", tok.Line, tok.Column, typ, err)
		}
		cmd.Args = append(cmd.Args, tok.Literal)
	}

	switch typ {
	case CommandTypeSleep:
		d, _ := parseDuration(cmd.Args[0])
		cmd.Delay = d
	case CommandTypeFrames:
		if n, _ := strconv.Atoi(cmd.Args[0]); n < 0 {
			return Command{}, fmt.Errorf("%d:%d: Frames must not be negative", head.Line, head.Column)
		}
	}
	return cmd, nil
}

func checkArg(kind argKind, tok Token) error {
	switch kind {
	case argString:
		if tok.Type != TokenString {
			return fmt.Errorf("expected a quoted string, got %s", tok.Type)
		}
		if tok.Literal == "" {
			return errors.New("empty title")
		}
	case argInt:
		if tok.Type != TokenNumber {
			return fmt.Errorf("expected a number, got %s", tok.Type)
		}
		if _, err := strconv.Atoi(tok.Literal); err != nil {
			return fmt.Errorf("invalid number %q", tok.Literal)
		}
	case argDuration:
		if tok.Type != TokenDuration && tok.Type != TokenNumber {
			return fmt.Errorf("expected a duration, got %s", tok.Type)
		}
		d, err := parseDuration(tok.Literal)
		if err != nil {
			return err
		}
		if d < 0 {
			return errors.New("duration must not be negative")
		}
	case argState:
		if tok.Type != TokenIdent {
			return fmt.Errorf("expected a window state, got %s", tok.Type)
		}
		for _, s := range WindowStates {
			if tok.Literal == s {
				return nil
			}
		}
		return fmt.Errorf("unknown window state %q (want one of %s)", tok.Literal, strings.Join(WindowStates, ", "))
	}
	return nil
}

// parseDuration accepts Go durations and bare numbers as seconds.
func parseDuration(s string) (time.Duration, error) {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(n * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
