package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/internal/storage"
	"github.com/cubesim/cubesim/solver"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive cube shell",
	Long: `Start an interactive session with a live cube display.

Type move sequences in standard notation to apply them, or one of the
commands: scramble, solve, undo, history, reset, help, quit.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const shellHelp = `Commands:
  <moves>   apply a move sequence, e.g. R U R' U'
  scramble  scramble the cube
  solve     solve the cube and show the solution
  undo      undo the last applied sequence
  history   show every move applied so far
  reset     return to the solved state
  help      show this help
  quit      leave the shell`

type shellModel struct {
	cube    *cubesim.Cube
	history *cubesim.History
	repo    *storage.SolveRepository

	scrambleMoves int
	lastScramble  []cubesim.Move

	input    string
	message  string
	errText  string
	quitting bool
}

func newShellModel(scrambleMoves int, repo *storage.SolveRepository) *shellModel {
	return &shellModel{
		cube:          cubesim.New(),
		history:       &cubesim.History{},
		repo:          repo,
		scrambleMoves: scrambleMoves,
		message:       "Type help for commands.",
	}
}

func (m *shellModel) Init() tea.Cmd {
	return nil
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input)
		m.input = ""
		if line == "" {
			return m, nil
		}
		return m.execute(line)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m *shellModel) execute(line string) (tea.Model, tea.Cmd) {
	m.message = ""
	m.errText = ""

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit

	case "help":
		m.message = shellHelp

	case "show":
		// the net is always on screen; just clear any old message

	case "reset":
		m.cube = cubesim.New()
		m.history.Clear()
		m.lastScramble = nil
		m.message = "Cube reset."

	case "scramble":
		moves := cubesim.Scramble(m.cube, m.scrambleMoves)
		m.history.Record(moves)
		m.lastScramble = moves
		m.message = "Scramble: " + cubesim.Format(moves)

	case "solve":
		solution := solver.Solve(m.cube)
		if len(solution) == 0 {
			m.message = "Already solved."
			break
		}
		m.history.Record(solution)
		m.message = fmt.Sprintf("Solution (%d moves): %s", len(solution), cubesim.Format(solution))
		m.recordSolve(solution)

	case "undo":
		if m.history.Undo(m.cube) {
			m.message = "Undone."
		} else {
			m.errText = "Nothing to undo."
		}

	case "history":
		moves := m.history.Moves()
		if len(moves) == 0 {
			m.message = "No moves yet."
		} else {
			m.message = fmt.Sprintf("%d moves: %s", len(moves), cubesim.Format(moves))
		}

	default:
		moves, err := cubesim.Parse(line)
		if err != nil {
			m.errText = err.Error()
			break
		}
		m.cube.ApplyAll(moves)
		m.history.Record(moves)
		m.message = "Applied: " + cubesim.Format(moves)
	}

	return m, nil
}

// recordSolve persists a shell solve when a store is available.
func (m *shellModel) recordSolve(solution []cubesim.Move) {
	if m.repo == nil {
		return
	}
	_, err := m.repo.Create(
		cubesim.Format(m.lastScramble), cubesim.Format(solution),
		len(m.lastScramble), len(solution),
	)
	if err != nil {
		m.errText = "Could not record solve: " + err.Error()
	}
	m.lastScramble = nil
}

func (m *shellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesim shell"))
	b.WriteString("\n\n")
	b.WriteString(RenderNet(m.cube))
	b.WriteString("\n")
	b.WriteString(phaseStyle.Render("Phase: " + m.cube.DetectPhase().String()))
	b.WriteString("\n\n")
	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString("\n> " + m.input + "█\n")
	b.WriteString(helpStyle.Render("enter a move sequence or a command, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The store is optional in the shell; solving still works without it.
	var repo *storage.SolveRepository
	if db, err := openStore(cfg); err == nil {
		defer db.Close()
		repo = storage.NewSolveRepository(db)
	}

	p := tea.NewProgram(newShellModel(cfg.ScrambleMoves, repo))
	_, err = p.Run()
	return err
}
