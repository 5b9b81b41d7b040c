package tape

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dodorz/albumdesk/internal/config"
)

// Executor executes tape commands by directly manipulating the desktop.
// Titles name windows; errors report windows that are not open.
type Executor interface {
	// Window management
	OpenWindow(title string) error
	CloseWindow(title string) error
	FocusWindow(title string) error
	MinimizeWindow(title string) error
	ClickTaskbar(title string) error
	DragWindow(title string, dx, dy int) error
	CycleWindows(forward bool) error

	// SendKey delivers a key to the focused window
	SendKey(key string) error

	// Advance runs the frame loop for d of virtual time
	Advance(d time.Duration) error

	// ExpectWindow checks a window against one of WindowStates
	ExpectWindow(title, state string) error
}

// FrameInterval is the virtual time one Frames step advances.
const FrameInterval = time.Second / config.NormalFPS

// CommandExecutor provides a default implementation
type CommandExecutor struct {
	executor Executor
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(executor Executor) *CommandExecutor {
	return &CommandExecutor{executor: executor}
}

// Execute executes a command
func (ce *CommandExecutor) Execute(cmd *Command) error {
	if ce.executor == nil {
		return nil
	}

	switch cmd.Type {
	case CommandTypeOpen:
		return ce.executor.OpenWindow(cmd.Args[0])

	case CommandTypeClose:
		return ce.executor.CloseWindow(cmd.Args[0])

	case CommandTypeFocus:
		return ce.executor.FocusWindow(cmd.Args[0])

	case CommandTypeMinimize:
		return ce.executor.MinimizeWindow(cmd.Args[0])

	case CommandTypeTaskbar:
		return ce.executor.ClickTaskbar(cmd.Args[0])

	case CommandTypeDrag:
		dx, err := strconv.Atoi(cmd.Args[1])
		if err != nil {
			return err
		}
		dy, err := strconv.Atoi(cmd.Args[2])
		if err != nil {
			return err
		}
		return ce.executor.DragWindow(cmd.Args[0], dx, dy)

	case CommandTypeNext:
		return ce.executor.CycleWindows(true)

	case CommandTypePrev:
		return ce.executor.CycleWindows(false)

	case CommandTypeKey:
		return ce.executor.SendKey(cmd.Args[0])

	case CommandTypeSleep:
		return ce.executor.Advance(cmd.Delay)

	case CommandTypeFrames:
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return err
		}
		return ce.executor.Advance(time.Duration(n) * FrameInterval)

	case CommandTypeExpect:
		return ce.executor.ExpectWindow(cmd.Args[0], cmd.Args[1])

	default:
		return fmt.Errorf("unsupported command %q", cmd.Type)
	}
}

// Run executes cmds in order, stopping at the first failure.
func (ce *CommandExecutor) Run(cmds []Command) error {
	for i := range cmds {
		if err := ce.Execute(&cmds[i]); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmds[i].Line, cmds[i], err)
		}
	}
	return nil
}
