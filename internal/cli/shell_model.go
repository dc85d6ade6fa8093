package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/resolver"
	"github.com/LinFrancis/aucca-app/internal/service"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt shellMode = iota // Question input.
	modeWizard                  // huh filter form is active.
)

// choiceKind says what the numbers of the last printed list refer to.
type choiceKind int

const (
	choiceNone choiceKind = iota
	choicePlants
	choiceConcepts
)

// suggestMinLen is the input length from which plant and concept names are
// offered as completions.
const suggestMinLen = 2

// shellModel is the bubbletea Model for the kiosk shell.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form
	width int

	// kiosk state
	app        *App
	session    *service.Session
	vocabulary []string

	// numbered list on screen
	choices    []string
	choiceKind choiceKind

	// mode management
	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd

	// history
	history    []string
	historyIdx int

	// lastOutput is the most recent block printed above the prompt.
	lastOutput string

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Up/Down stay bound to history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistoryFromPath(app.HistoryPath)

	return shellModel{
		input:      ti,
		app:        app,
		session:    service.NewSession(catalog.Selection{}),
		vocabulary: shellVocabulary(app.Kiosk),
		history:    hist,
		historyIdx: len(hist),
	}
}

// shellVocabulary lists plant display names and concept keys for completion.
func shellVocabulary(k *service.Kiosk) []string {
	all := k.Plants(catalog.Selection{})
	words := append([]string{}, all.DisplayNames()...)
	return append(words, k.Knowledge().Keys()...)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeWizard {
			return m.updateWizard(msg)
		}
		return m.updatePrompt(msg)
	}

	// The form needs its own init and focus messages.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("¡Hasta pronto!") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	return m.promptPrefix() + m.input.View()
}

// promptPrefix marks the prompt while filters are active.
func (m *shellModel) promptPrefix() string {
	prefix := formatter.StyleGreen.Render("aucca")
	if m.session.Selection().Active() {
		prefix += " " + formatter.Dim("(") + formatter.StyleYellow.Render("filtros") + formatter.Dim(")")
	}
	return prefix + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			m.lastOutput = output
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard shows form and runs done once it is completed.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		m.lastOutput = formatter.Dim("Cancelado.")
		return m, tea.Println(m.lastOutput)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			return m, tea.Batch(cmd, done(&m))
		}
	}
	return m, cmd
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistoryToPath(m.app.HistoryPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
		return
	}
	m.historyIdx = len(m.history)
	m.input.SetValue("")
}

// ── suggestions ──────────────────────────────────────────────────────────────

var shellCommands = []string{
	"/ayuda", "/filtros", "/limpiar", "/plantas", "/temas", "/sugerir", "/salir",
	"/log", "/related", "/topics", "/plant",
}

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()

	switch {
	case strings.HasPrefix(text, "/temas "):
		var names []string
		for _, c := range knowledge.Categories() {
			names = append(names, "/temas "+c.String())
		}
		m.input.SetSuggestions(filterSuggestions(names, text))
	case strings.HasPrefix(text, "/") && !strings.Contains(text, " "):
		m.input.SetSuggestions(filterSuggestions(shellCommands, text))
	case len([]rune(text)) >= suggestMinLen && !strings.HasPrefix(text, "/"):
		m.input.SetSuggestions(filterSuggestions(m.vocabulary, text))
	default:
		m.input.SetSuggestions(nil)
	}
}

// filterSuggestions returns the entries of pool starting with prefix,
// ignoring case.
func filterSuggestions(pool []string, prefix string) []string {
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

// executeCommand handles one submitted line and returns what to print.
func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	if n, err := strconv.Atoi(input); err == nil && len(m.choices) > 0 {
		return m.pick(n), nil
	}
	if !strings.HasPrefix(input, "/") {
		return m.ask(input), nil
	}

	parts, err := splitShellArgs(strings.TrimPrefix(input, "/"))
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "ayuda", "help", "?":
		return formatter.FormatShellHelp(), nil
	case "salir", "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "limpiar":
		return m.execClear(), nil
	case "filtros":
		return m.execFilters()
	case "plantas":
		return m.execPlants(), nil
	case "temas":
		return m.execTopics(args), nil
	case "sugerir":
		return m.execSuggest(args), nil
	case "shell":
		return formatter.StyleYellow.Render("Ya estás en la consola."), nil
	case "serve":
		return formatter.StyleYellow.Render("El servidor se inicia con \"aucca serve\", fuera de la consola."), nil
	default:
		return captureCobraOutput(m.app, parts), nil
	}
}

// ask resolves a question against the session filters.
func (m *shellModel) ask(question string) string {
	r, err := m.app.Kiosk.Ask(context.Background(), m.session, question, domain.SourceShell)
	if err != nil {
		m.app.Logger.Warn().Err(err).Msg("query not recorded")
	}

	switch v := r.(type) {
	case resolver.MultiplePlants:
		m.setChoices(choicePlants, plantDisplayNames(v.Plants))
	case resolver.FuzzySuggestions:
		m.setChoices(choicePlants, v.Candidates)
	default:
		m.setChoices(choiceNone, nil)
	}
	return formatter.FormatResult(r, m.app.renderOptions(false))
}

// pick opens entry n (1-based) of the last numbered list. The list stays
// available so another entry can be picked.
func (m *shellModel) pick(n int) string {
	if n < 1 || n > len(m.choices) {
		return formatter.StyleYellow.Render(fmt.Sprintf("Elige un número entre 1 y %d.", len(m.choices)))
	}
	name := m.choices[n-1]

	var (
		r  resolver.Result
		ok bool
	)
	switch m.choiceKind {
	case choiceConcepts:
		r, ok = m.app.Kiosk.SelectConcept(m.session, name)
	default:
		r, ok = m.app.Kiosk.SelectPlant(m.session, name)
	}
	if !ok {
		return shellError(fmt.Errorf("%q ya no está disponible", name))
	}
	return formatter.FormatResult(r, m.app.renderOptions(false))
}

func (m *shellModel) setChoices(kind choiceKind, names []string) {
	m.choiceKind = kind
	m.choices = names
}

func plantDisplayNames(plants []catalog.Plant) []string {
	names := make([]string, len(plants))
	for i, p := range plants {
		names[i] = p.DisplayName()
	}
	return names
}

func (m *shellModel) execClear() string {
	m.session.Clear()
	m.session.SetSelection(catalog.Selection{})
	m.setChoices(choiceNone, nil)
	return formatter.Dim("Filtros y última respuesta borrados.")
}

func (m *shellModel) execFilters() (string, tea.Cmd) {
	answers := newFilterAnswers(m.session.Selection())
	form := wizardFilters(m.app.Kiosk.FilterOptions(), answers)
	if form == nil {
		return formatter.StyleYellow.Render("El catálogo no tiene valores para filtrar."), nil
	}
	return "", m.startWizard(form, func(m *shellModel) tea.Cmd {
		m.lastOutput = m.applyFilters(answers.selection())
		return tea.Println(m.lastOutput)
	})
}

// applyFilters makes sel the session selection and reports what passes it.
func (m *shellModel) applyFilters(sel catalog.Selection) string {
	m.session.SetSelection(sel)
	m.setChoices(choiceNone, nil)

	var b strings.Builder
	if sel.Active() {
		b.WriteString(formatter.FormatSelection(sel) + "\n")
	}
	b.WriteString(formatter.FormatFilterSummary(m.app.Kiosk.Plants(sel)))
	return b.String()
}

func (m *shellModel) execPlants() string {
	names := m.app.Kiosk.Plants(m.session.Selection()).DisplayNames()
	if len(names) == 0 {
		m.setChoices(choiceNone, nil)
		return formatter.StyleYellow.Render("No hay plantas que cumplan los filtros seleccionados.")
	}
	m.setChoices(choicePlants, names)
	return formatter.FormatPlantList(fmt.Sprintf("Plantas (%d):", len(names)), names)
}

func (m *shellModel) execTopics(args []string) string {
	if len(args) == 0 {
		m.setChoices(choiceNone, nil)
		return formatter.FormatTopics(m.app.Kiosk.Knowledge(), false)
	}

	c, err := knowledge.ParseCategory(strings.Join(args, " "))
	if err != nil {
		return shellError(err)
	}
	members := m.app.Kiosk.TopicConcepts(c)
	keys := make([]string, len(members))
	for i, cpt := range members {
		keys[i] = cpt.Key
	}
	m.setChoices(choiceConcepts, keys)
	return formatter.FormatTopic(c, members)
}

func (m *shellModel) execSuggest(args []string) string {
	if len(args) == 0 {
		return formatter.StyleYellow.Render("Uso: /sugerir <texto>")
	}
	s := m.app.Kiosk.Suggest(m.session, strings.Join(args, " "))
	m.setChoices(choicePlants, s.Plants)
	return formatter.FormatSuggestions(s)
}
