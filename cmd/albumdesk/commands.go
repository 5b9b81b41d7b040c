package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dodorz/albumdesk/internal/app"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/logging"
	"github.com/dodorz/albumdesk/internal/tape"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/internal/wm"
	"github.com/dodorz/albumdesk/pkg/albumdesk"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
)

func printConfigPath(w io.Writer) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}
	_, err := fmt.Fprintln(w, path)
	return err
}

// findEditor returns $EDITOR, $VISUAL or the first common editor on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano"} {
		if path, err := exec.LookPath(e); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found; set $EDITOR")
}

func editConfigFile() error {
	path := configPath
	if path == "" {
		// Creates the file with defaults on first use.
		if _, err := config.LoadUserConfig(); err != nil {
			return err
		}
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}
	args := strings.Fields(editor)
	// #nosec G204 - the editor is chosen by the user
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	if _, err := config.LoadUserConfigFrom(path); err != nil {
		return fmt.Errorf("config saved but invalid: %w", err)
	}
	return nil
}

func resetConfigToDefaults(in io.Reader, out io.Writer, force bool) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if !force {
		fmt.Fprintf(out, "Overwrite %s with the defaults? [y/N] ", path)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteConfig(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration reset: %s\n", path)
	return nil
}

func printKeybindings(w io.Writer, cfg *config.UserConfig) error {
	table := tablewriter.NewWriter(w)
	table.Header("Section", "Key", "Action")
	for _, section := range config.GetKeybindings(config.NewKeybindRegistry(cfg)) {
		for _, b := range section.Bindings {
			if err := table.Append(section.Title, b.Key, b.Description); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

// printProviders lists every registered title with the size it spawns at
// on a roomy desktop.
func printProviders(w io.Writer, cfg *config.UserConfig) error {
	d, err := app.NewFromConfig(cfg, zerolog.Nop())
	if err != nil {
		return err
	}
	opts, err := app.ManagerOptions(cfg)
	if err != nil {
		return err
	}
	placer := wm.NewPlacer(opts.Placer)
	viewport := wm.Size{Width: 200, Height: 60}

	table := tablewriter.NewWriter(w)
	table.Header("Title", "Kind", "Size")
	providers := d.WM.Providers()
	for _, title := range providers.Titles() {
		provider, _ := providers.Lookup(title)
		content, hint := provider.Build(title)
		if c, ok := content.(wm.Closer); ok {
			c.Close()
		}
		size := placer.SizeFor(hint, viewport)
		if err := table.Append(title, hint.Kind.String(), fmt.Sprintf("%dx%d", size.Width, size.Height)); err != nil {
			return err
		}
	}
	return table.Render()
}

func printThemes(w io.Writer) error {
	for _, id := range theme.Available() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

func printWindowTable(w io.Writer, rows []albumdesk.WindowRow) error {
	table := tablewriter.NewWriter(w)
	table.Header("Z", "Title", "Kind", "State", "Focused", "Position", "Size")
	for _, r := range rows {
		focused := ""
		if r.Focused {
			focused = "yes"
		}
		err := table.Append(
			fmt.Sprintf("%d", r.Z),
			r.Title,
			r.Kind,
			r.State,
			focused,
			fmt.Sprintf("%d,%d", r.Rect.X, r.Rect.Y),
			fmt.Sprintf("%dx%d", r.Rect.Width, r.Rect.Height),
		)
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// runTapeFile plays a tape headless and prints the windows left open. The
// table is printed even when a command fails.
func runTapeFile(w io.Writer, path string, cfg *config.UserConfig, width, height int) error {
	// #nosec G304 - the tape path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tape: %w", err)
	}

	rows, runErr := albumdesk.PlayTape(string(data),
		albumdesk.WithUserConfig(cfg),
		albumdesk.WithAnimations(config.AnimationsEnabled),
		albumdesk.WithSize(width, height),
		albumdesk.WithLogger(logging.Logger),
	)
	if rows != nil {
		if err := printWindowTable(w, rows); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", path, runErr)
	}
	return nil
}

func validateTapeFile(w io.Writer, path string) error {
	// #nosec G304 - the tape path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tape: %w", err)
	}
	cmds, err := tape.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = fmt.Fprintf(w, "%s: %d command(s), OK\n", path, len(cmds))
	return err
}
