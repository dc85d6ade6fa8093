package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Consola interactiva del kiosco",
		Long: `Abre la consola interactiva del kiosco. Escribe una pregunta o el nombre
de una planta; los filtros elegidos con /filtros se mantienen entre preguntas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, app)
		},
	}
}

func runShell(cmd *cobra.Command, app *App) error {
	p := tea.NewProgram(
		newShellModel(app),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// captureCobraOutput runs args through a fresh command tree and returns what
// it printed, errors included.
func captureCobraOutput(app *App, args []string) string {
	var buf strings.Builder
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		buf.WriteString(shellError(err))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func shellError(err error) string {
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}

// splitShellArgs splits a command line into words. Single and double quotes
// group words and a backslash escapes the next character, except inside
// single quotes.
func splitShellArgs(input string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		inWord  bool
	)

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inWord = true
		case quote == '"':
			if r == '"' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				parts = append(parts, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if inWord {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
