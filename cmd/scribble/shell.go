package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osse101/scribble/internal/app"
	"github.com/osse101/scribble/internal/bootstrap"
	"github.com/osse101/scribble/internal/domain"
)

// sectionCommands maps the verbs typed inside a section to a registered
// command and any arguments it always gets.
var sectionCommands = map[app.Screen]map[string][]string{
	app.ScreenInventory: {
		"add":    {"add-item"},
		"remove": {"remove-item"},
		"search": {"search", "-collection", string(domain.CollectionInventory)},
		"list":   {"list", string(domain.CollectionInventory)},
	},
	app.ScreenEnemies: {
		"add":    {"add-enemy"},
		"search": {"search", "-collection", string(domain.CollectionEnemies)},
		"list":   {"list", string(domain.CollectionEnemies)},
	},
	app.ScreenStats: {
		"adjust": {"stat", "adjust"},
		"set":    {"stat", "set"},
		"remove": {"stat", "remove"},
		"search": {"search", "-collection", string(domain.CollectionStats)},
		"list":   {"list", string(domain.CollectionStats)},
	},
	app.ScreenDice: {
		"roll": {"roll"},
	},
}

// maxHistory bounds the transcript kept by the shell
const maxHistory = 500

var errQuit = errors.New("quit")

// ShellCommand runs an interactive session that moves between sections
type ShellCommand struct{ e *env }

func (c *ShellCommand) Name() string        { return "shell" }
func (c *ShellCommand) Description() string { return "Interactive session (type help inside)" }

func (c *ShellCommand) Run(ctx context.Context, _ []string) error {
	p := tea.NewProgram(newShellModel(ctx, c.e.app),
		tea.WithContext(ctx),
		tea.WithInput(c.e.in),
		tea.WithOutput(c.e.out),
	)
	_, err := p.Run()
	return err
}

// shellModel is the bubbletea model behind the shell. Each submitted line
// either fires an app.Machine event or runs a section command, whose output
// is captured and appended to the transcript.
type shellModel struct {
	ctx      context.Context
	machine  *app.Machine
	registry *Registry
	out      *bytes.Buffer
	input    textinput.Model
	history  []string
	height   int
}

func newShellModel(ctx context.Context, a *bootstrap.App) shellModel {
	out := &bytes.Buffer{}

	input := textinput.New()
	input.Placeholder = "help"
	input.CharLimit = 2000
	input.Focus()

	m := shellModel{
		ctx:      ctx,
		machine:  app.NewMachine(),
		registry: newRegistry(&env{app: a, out: out, in: strings.NewReader("")}),
		out:      out,
		input:    input,
	}
	m.input.Prompt = m.prompt()
	m.printHelp()
	m.flush()
	return m
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if w := msg.Width - len(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("=== scribble: "+string(m.machine.Current())+" ===") + "\n")

	lines := m.history
	if m.height > 2 && len(lines) > m.height-2 {
		lines = lines[len(lines)-(m.height-2):]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

func (m shellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.history = append(m.history, m.input.Prompt+line)

	err := m.handleLine(line)
	if errors.Is(err, errQuit) {
		m.flush()
		return m, tea.Quit
	}
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		reportError(m.out, err)
	}
	m.flush()
	m.input.Prompt = m.prompt()
	return m, nil
}

// handleLine applies one line of input. Navigation words fire machine events,
// anything else runs a command of the current section.
func (m *shellModel) handleLine(line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if len(args) == 0 {
		return nil
	}

	word := strings.ToLower(args[0])
	switch word {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		m.printHelp()
		return nil
	case "back":
		_, err := m.machine.Fire(app.EventBack)
		return err
	}
	if ev, ok := app.OpenEvent(app.Screen(word)); ok {
		_, err := m.machine.Fire(ev)
		return err
	}

	current := m.machine.Current()
	if current == app.ScreenDice && isDiceExpression(word) {
		return m.run([]string{"roll", word})
	}

	prefix, ok := sectionCommands[current][word]
	if !ok {
		return fmt.Errorf("%w: %q is not available on the %s screen", domain.ErrInvalidInput, word, current)
	}
	return m.run(append(append([]string{}, prefix...), args[1:]...))
}

func (m *shellModel) run(args []string) error {
	cmd, ok := m.registry.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command %q", domain.ErrInvalidInput, args[0])
	}
	return cmd.Run(m.ctx, args[1:])
}

func (m *shellModel) printHelp() {
	var words []string
	for _, ev := range m.machine.Events() {
		if ev == app.EventBack {
			words = append(words, "back")
			continue
		}
		words = append(words, strings.TrimPrefix(string(ev), "open_"))
	}
	for verb := range sectionCommands[m.machine.Current()] {
		words = append(words, verb)
	}
	words = append(words, "help", "quit")
	printInfo(m.out, "Commands: %s", strings.Join(sortedUnique(words), ", "))
}

// flush moves captured command output into the transcript
func (m *shellModel) flush() {
	if m.out.Len() > 0 {
		m.history = append(m.history, strings.Split(strings.TrimRight(m.out.String(), "\n"), "\n")...)
		m.out.Reset()
	}
	if len(m.history) > maxHistory {
		m.history = append([]string(nil), m.history[len(m.history)-maxHistory:]...)
	}
}

func (m shellModel) prompt() string {
	return string(m.machine.Current()) + "> "
}

func isDiceExpression(s string) bool {
	count, sides, ok := strings.Cut(s, "d")
	return ok && sides != "" && strings.Trim(count+sides, "0123456789") == ""
}

// splitArgs splits a line on whitespace, keeping double-quoted runs together
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuote, hasArg := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasArg = true
		case !inQuote && (r == ' ' || r == '\t'):
			if hasArg {
				args = append(args, cur.String())
				cur.Reset()
				hasArg = false
			}
		default:
			cur.WriteRune(r)
			hasArg = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if hasArg {
		args = append(args, cur.String())
	}
	return args, nil
}
