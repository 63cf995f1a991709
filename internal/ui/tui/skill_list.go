package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skillmart/skillmart/internal/model"
)

// SkillAction represents the action chosen from the skill list.
type SkillAction int

const (
	// SkillActionNone means no action was taken (user quit).
	SkillActionNone SkillAction = iota
	// SkillActionActivate means the selected skill should become active.
	SkillActionActivate
	// SkillActionClear means the active skill should be cleared.
	SkillActionClear
)

// SkillListResult contains the result of the skill list interaction.
type SkillListResult struct {
	Action SkillAction
	Skill  model.Skill
}

// skillListKeyMap defines the key bindings for the skill list.
type skillListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultSkillListKeyMap() skillListKeyMap {
	return skillListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear active"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

const (
	skillListNameWidth   = 24
	skillListToolsWidth  = 20
	skillListDescWidth   = 48
	skillListStatusWidth = 8
	skillListHeight      = 12
)

var titleCaser = cases.Title(language.English)

// SkillListModel is the BubbleTea model for browsing installed skills and
// switching the active one.
type SkillListModel struct {
	table      table.Model
	skills     []model.Skill
	activeName string
	keys       skillListKeyMap
	result     SkillListResult
	quitting   bool
}

// NewSkillListModel creates the browser over the given skills. activeName
// marks the currently active skill, empty when none is active.
func NewSkillListModel(skills []model.Skill, activeName string) SkillListModel {
	columns := []table.Column{
		{Title: titleCaser.String("name"), Width: skillListNameWidth},
		{Title: titleCaser.String("allowed tools"), Width: skillListToolsWidth},
		{Title: titleCaser.String("description"), Width: skillListDescWidth},
		{Title: titleCaser.String("status"), Width: skillListStatusWidth},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(skillRows(skills, activeName)),
		table.WithFocused(true),
		table.WithHeight(skillListHeight),
	)

	return SkillListModel{
		table:      tbl,
		skills:     skills,
		activeName: activeName,
		keys:       defaultSkillListKeyMap(),
	}
}

// skillRows renders the table rows, truncating long descriptions.
func skillRows(skills []model.Skill, activeName string) []table.Row {
	rows := make([]table.Row, 0, len(skills))
	for _, skill := range skills {
		status := ""
		if skill.Name == activeName {
			status = "active"
		}
		rows = append(rows, table.Row{
			runewidth.Truncate(skill.Name, skillListNameWidth, "…"),
			runewidth.Truncate(skill.AllowedTools, skillListToolsWidth, "…"),
			runewidth.Truncate(skill.Description, skillListDescWidth, "…"),
			status,
		})
	}
	return rows
}

// Result returns the outcome of the interaction.
func (m SkillListModel) Result() SkillListResult {
	return m.result
}

// Init implements tea.Model.
func (m SkillListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SkillListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Activate):
			if selected := m.selectedSkill(); selected != nil {
				m.result = SkillListResult{Action: SkillActionActivate, Skill: *selected}
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.result = SkillListResult{Action: SkillActionClear}
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(min(skillListHeight, msg.Height-4))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectedSkill returns the skill under the cursor, nil when the list is empty.
func (m SkillListModel) selectedSkill() *model.Skill {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.skills) {
		return nil
	}
	return &m.skills[idx]
}

// View implements tea.Model.
func (m SkillListModel) View() string {
	if m.quitting {
		return ""
	}

	title := Styles.Title.Render(titleCaser.String("installed skills"))
	status := Styles.Status.Render(fmt.Sprintf("%d skills", len(m.skills)))
	if m.activeName != "" {
		status = Styles.Status.Render(fmt.Sprintf("%d skills · active: %s", len(m.skills), m.activeName))
	}
	help := Styles.Help.Render("↑/↓ move · enter activate · c clear active · q quit")

	return title + "\n" + m.table.View() + "\n" + status + "\n" + help + "\n"
}
