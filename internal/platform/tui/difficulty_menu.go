package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smolin/blockade/internal/config"
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/level"
)

// GameSelection holds what the player picked before a run starts.
type GameSelection struct {
	Preset config.DifficultyPreset
	Level  int // 0 = start from the first level, 1-based otherwise
}

// presetRow pairs a preset with its menu description.
type presetRow struct {
	preset config.DifficultyPreset
	label  string
}

var presetRows = []presetRow{
	{config.DifficultyEasy, "Easy     (5 lives, wide paddle, slow ball)"},
	{config.DifficultyNormal, "Normal   (3 lives)"},
	{config.DifficultyHard, "Hard     (2 lives, narrow paddle, fast ball)"},
	{config.DifficultyFixed, "Fixed    (no speed ramp-up)"},
}

// SetupModel lets the player choose difficulty and starting level.
type SetupModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     GameSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewSetupModel creates the pre-game setup screen.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handlePresetKey(action)
}

func (m SetupModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	// Preset rows plus the "Select Level..." entry
	last := len(presetRows)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(presetRows) {
			m.choosing = false
			m.selection = GameSelection{Preset: presetRows[m.cursor].preset}
			return m, nil
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, nil
	}

	return m, nil
}

func (m SetupModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < level.Count()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = GameSelection{
			Preset: config.DifficultyNormal,
			Level:  m.levelCursor + 1, // 1-indexed
		}
		return m, nil
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewPresetSelect()
}

func (m SetupModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L O C K A D E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, row := range presetRows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row.label, m.width))
		b.WriteString("\n")
	}

	cursor := "  "
	if m.cursor == len(presetRows) {
		cursor = "> "
	}
	b.WriteString(centerText(cursor+"Select Level...", m.width))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i := range level.Count() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		lv := level.Get(i)
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, lv.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *GameSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if the user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the setup screen and returns the player's choices.
// A nil selection means back or quit.
func RunSetup(cfg core.RuntimeConfig) (*GameSelection, error) {
	model := NewSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
