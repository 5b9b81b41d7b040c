// Package main implements albumdesk, a desktop-metaphor storefront for a
// record label. Albums and pages open as draggable windows with a taskbar
// and start menu, in the local terminal, over SSH or in a browser.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	configPath      string
	asciiOnly       bool
	themeName       string
	borderStyle     string
	taskbarPosition string
	noAnimations    bool
	hideClock       bool
	hideSysInfo     bool
	device          string
	catalogPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "albumdesk",
		Short: "Album storefront shaped like a desktop",
		Long: `albumdesk - a record label storefront shaped like a desktop

Double-click an album or page icon to open it in a window. Drag windows by
their title bar, minimize them to the taskbar and close them from the header.`,
		Example: `  # Run albumdesk
  albumdesk

  # Use another catalog and theme
  albumdesk --catalog label.yaml --theme dracula

  # Force the mobile size presets
  albumdesk --device mobile

  # Serve over SSH
  albumdesk ssh --port 2222

  # Serve in the browser
  albumdesk web --port 7681

  # Replay a script without a terminal
  albumdesk tape run demo.tape`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/albumdesk/config.toml)")
	flags.BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of box drawing and icons")
	flags.StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty for the built-in colors")
	flags.StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii")
	flags.StringVar(&taskbarPosition, "taskbar-position", "", "Taskbar position: bottom, top")
	flags.BoolVar(&noAnimations, "no-animations", false, "Disable spawn and close animations")
	flags.BoolVar(&hideClock, "hide-clock", false, "Hide the taskbar clock")
	flags.BoolVar(&hideSysInfo, "hide-sysinfo", false, "Hide the CPU/RAM readout")
	flags.StringVar(&device, "device", "", "Window size preset: auto, desktop, mobile")
	flags.StringVar(&catalogPath, "catalog", "", "YAML album catalog (default: built-in)")

	rootCmd.AddCommand(
		newSSHCmd(),
		newWebCmd(),
		newConfigCmd(),
		newKeybindsCmd(),
		newProvidersCmd(),
		newThemesCmd(),
		newTapeCmd(),
	)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func newSSHCmd() *cobra.Command {
	var host, port, keyPath string
	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run albumdesk as SSH server",
		Long: `Run albumdesk as an SSH server

Every connection gets its own desktop. The server generates a host key
automatically if none is specified.`,
		Example: `  # Start SSH server on default port
  albumdesk ssh

  # Start on custom port with a custom host key
  albumdesk ssh --port 2222 --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(host, port, keyPath)
		},
	}
	cmd.Flags().StringVar(&port, "port", "2222", "SSH server port")
	cmd.Flags().StringVar(&host, "host", "localhost", "SSH server host")
	cmd.Flags().StringVar(&keyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")
	return cmd
}

func newWebCmd() *cobra.Command {
	var host, port string
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve albumdesk in the browser",
		Long: `Serve albumdesk through a web terminal

Every browser tab gets its own desktop.`,
		Example: `  albumdesk web --port 7681`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer(host, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "7681", "HTTP port")
	cmd.Flags().StringVar(&host, "host", "localhost", "HTTP host")
	return cmd
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage albumdesk configuration",
		Long:  `Manage albumdesk configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printConfigPath(cmd.OutOrStdout())
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the albumdesk configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi and nano in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var force bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the albumdesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd.InOrStdin(), cmd.OutOrStdout(), force)
		},
	}
	configResetCmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)
	return configCmd
}

func newKeybindsCmd() *cobra.Command {
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}
	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printKeybindings(cmd.OutOrStdout(), cfg)
		},
	}
	keybindsCmd.AddCommand(keybindsListCmd)
	return keybindsCmd
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the windows the catalog provides",
		Long:  `Display every registered window title with its kind and spawn size`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printProviders(cmd.OutOrStdout(), cfg)
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printThemes(cmd.OutOrStdout())
		},
	}
}

func newTapeCmd() *cobra.Command {
	tapeCmd := &cobra.Command{
		Use:   "tape",
		Short: "Run and check .tape automation scripts",
		Long: `Run and check .tape automation scripts

Tape files script window operations: Open, Close, Focus, Minimize, Taskbar,
Drag, Key, NextWindow, PrevWindow, Sleep, Frames and Expect. Scripts run
headless against a virtual clock.`,
		Example: `  # Run a tape and print the final window table
  albumdesk tape run demo.tape

  # Validate tape file syntax
  albumdesk tape validate demo.tape`,
	}

	var width, height int
	tapeRunCmd := &cobra.Command{
		Use:   "run <file.tape>",
		Short: "Run a tape file headless",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runTapeFile(cmd.OutOrStdout(), args[0], cfg, width, height)
		},
	}
	tapeRunCmd.Flags().IntVar(&width, "width", 120, "Desktop width in cells")
	tapeRunCmd.Flags().IntVar(&height, "height", 40, "Desktop height in cells")

	tapeValidateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Validate a tape file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateTapeFile(cmd.OutOrStdout(), args[0])
		},
	}

	tapeCmd.AddCommand(tapeRunCmd, tapeValidateCmd)
	return tapeCmd
}
