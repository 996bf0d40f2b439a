package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SteveIsnthere/drawer-by-steve/internal/app"
	"github.com/SteveIsnthere/drawer-by-steve/internal/config"
	"github.com/SteveIsnthere/drawer-by-steve/internal/content"
	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
	"github.com/SteveIsnthere/drawer-by-steve/internal/logger"
)

const welcomeDoc = `# Drawer

This is the drawer. On a wide terminal it slides in from the right as a
panel; on a narrow one it rises from the bottom as a sheet.

## Closing it

- Press **Esc** or **q**
- Click the dimmed backdrop or the **✕** button
- Drag the sheet's handle down past the threshold and let go

Press **c** to close it from the host instead. That close is silent: the
host already knows.

Run ` + "`drawer README.md`" + ` to open a file of your own.
`

// isTerminal is swapped out in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

type rootOptions struct {
	configPath  string
	debug       bool
	title       string
	noMinHeight bool
	open        bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "drawer [file]",
		Short: "Show a file in a responsive drawer",
		Long: `drawer shows a document in an overlay that adapts to the terminal: a
bottom sheet you can drag away on narrow screens, a right-hand panel on
wide ones. Markdown, JSON and source files are rendered and highlighted.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/drawer/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.title, "title", "", "Drawer title (default: the file name)")
	flags.BoolVar(&opts.noMinHeight, "no-min-height", false, "Let a short sheet shrink below half the screen")
	flags.BoolVar(&opts.open, "open", false, "Start with the drawer open")

	cmd.Version = version
	cmd.SetVersionTemplate(versionString() + "\n")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("drawer %s (%s) built %s", version, commit, date)
	}
	return "drawer " + version
}

func runTUI(opts rootOptions, args []string) error {
	// Without a terminal there is no width to pick a layout from.
	if !isTerminal(os.Stdout.Fd()) {
		return &drawer.ConfigError{Op: "start", Err: fmt.Errorf("%w: stdout is not a terminal", drawer.ErrViewportUnavailable)}
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.LogFile); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetDebug(cfg.Debug)
	log := logger.Component("cli")

	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	log.Info("starting", "doc", doc.Name, "kind", doc.Kind.String(), "size", doc.Size())

	m, err := app.New(doc, cfg, app.Options{
		Title:       opts.title,
		NoMinHeight: opts.noMinHeight,
		Open:        opts.open,
		Logger:      logger.Component("drawer"),
	})
	if err != nil {
		return err
	}
	// The drawer is shared by every copy of the model, so this releases the
	// scroll lock whatever state the program exited in.
	defer m.Teardown()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func loadDocument(args []string) (content.Document, error) {
	if len(args) == 0 {
		return content.FromBytes("welcome.md", []byte(welcomeDoc)), nil
	}
	return content.Load(args[0])
}
