package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justyntemme/booktracker-t/internal/tracker"
	"github.com/justyntemme/booktracker-t/internal/ui/styles"
	"github.com/justyntemme/booktracker-t/pkg/models"
)

// Form focus positions, in tab order
const (
	focusTitle = iota
	focusAuthor
	focusGenre
	focusPages
	focusSubmit
	focusCancel
	focusCount
)

// BookFormView is the add-book overlay. Its inputs mirror the tracker
// draft: every edit is dispatched as an UpdateDraftField event.
type BookFormView struct {
	store *tracker.Store

	titleInput  textinput.Model
	authorInput textinput.Model
	pagesInput  textinput.Model

	focusIndex int

	width  int
	height int
}

// NewBookFormView creates the add-book form
func NewBookFormView(store *tracker.Store) *BookFormView {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 200
	titleInput.Width = 40

	authorInput := textinput.New()
	authorInput.Placeholder = "Author"
	authorInput.CharLimit = 200
	authorInput.Width = 40

	pagesInput := textinput.New()
	pagesInput.Placeholder = "Number of Pages"
	pagesInput.CharLimit = 12
	pagesInput.Width = 40

	return &BookFormView{
		store:       store,
		titleInput:  titleInput,
		authorInput: authorInput,
		pagesInput:  pagesInput,
		width:       80,
		height:      24,
	}
}

// Init implements View
func (v *BookFormView) Init() tea.Cmd {
	return textinput.Blink
}

// Load fills the inputs from the current draft and focuses the title.
// Called each time the form is shown.
func (v *BookFormView) Load() {
	draft := v.store.State().Draft

	v.titleInput.SetValue(draft.Title)
	v.authorInput.SetValue(draft.Author)
	v.pagesInput.SetValue(pagesText(draft))

	v.focusIndex = focusTitle
	v.updateFocus()
}

// pagesText returns what the pages input should show for draft. The typed
// text wins when it still parses to the stored count.
func pagesText(draft tracker.Draft) string {
	if tracker.ParsePages(draft.PagesText) == draft.Pages {
		return draft.PagesText
	}
	if draft.Pages == 0 {
		return ""
	}
	return strconv.Itoa(draft.Pages)
}

// Update implements View
func (v *BookFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			v.navigateFocus(1)
			return v, nil

		case "shift+tab", "up":
			v.navigateFocus(-1)
			return v, nil

		case "esc":
			v.store.Dispatch(tracker.CancelForm{})
			return v, nil

		case "ctrl+s":
			v.store.Dispatch(tracker.CommitBook{})
			return v, nil

		case "enter":
			switch v.focusIndex {
			case focusSubmit:
				v.store.Dispatch(tracker.CommitBook{})
			case focusCancel:
				v.store.Dispatch(tracker.CancelForm{})
			default:
				v.navigateFocus(1)
			}
			return v, nil
		}

		if v.focusIndex == focusGenre {
			v.handleGenreKey(msg)
			return v, nil
		}
	}

	return v, v.updateFocusedInput(msg)
}

// View implements View
func (v *BookFormView) View() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("Add New Book") + "\n")

	b.WriteString(styles.InputLabel.Render("Title") + "\n")
	b.WriteString(v.styleInput(v.titleInput, focusTitle) + "\n")

	b.WriteString(styles.InputLabel.Render("Author") + "\n")
	b.WriteString(v.styleInput(v.authorInput, focusAuthor) + "\n")

	b.WriteString(styles.InputLabel.Render("Genre") + "\n")
	b.WriteString(v.renderGenres() + "\n")

	b.WriteString(styles.InputLabel.Render("Pages") + "\n")
	b.WriteString(v.styleInput(v.pagesInput, focusPages) + "\n\n")

	b.WriteString(v.renderButton("Add Book", focusSubmit) + v.renderButton("Cancel", focusCancel) + "\n\n")

	help := []string{
		styles.HelpKey.Render("tab") + styles.Help.Render(" next"),
		styles.HelpKey.Render("←/→") + styles.Help.Render(" genre"),
		styles.HelpKey.Render("ctrl+s") + styles.Help.Render(" add"),
		styles.HelpKey.Render("esc") + styles.Help.Render(" cancel"),
	}
	b.WriteString(strings.Join(help, "  "))

	dialog := styles.Dialog.Render(b.String())

	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}

// SetSize implements View
func (v *BookFormView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// handleGenreKey moves the genre selection while the genre row has focus.
// Number keys pick a genre directly.
func (v *BookFormView) handleGenreKey(msg tea.KeyMsg) {
	current := v.store.State().Draft.Genre

	switch msg.String() {
	case "left", "h":
		v.store.Dispatch(tracker.SelectGenre{Genre: current.Prev()})
	case "right", "l", " ":
		v.store.Dispatch(tracker.SelectGenre{Genre: current.Next()})
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= models.GenreCount {
			v.store.Dispatch(tracker.SelectGenre{Genre: models.Genre(n - 1)})
		}
	}
}

// updateFocusedInput forwards msg to the focused text input and dispatches
// the new text when it changed
func (v *BookFormView) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var (
		input *textinput.Model
		field tracker.Field
	)
	switch v.focusIndex {
	case focusTitle:
		input, field = &v.titleInput, tracker.FieldTitle
	case focusAuthor:
		input, field = &v.authorInput, tracker.FieldAuthor
	case focusPages:
		input, field = &v.pagesInput, tracker.FieldPages
	default:
		return nil
	}

	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if after := input.Value(); after != before {
		v.store.Dispatch(tracker.UpdateDraftField{Field: field, Value: after})
	}
	return cmd
}

// navigateFocus moves focus by delta, wrapping around
func (v *BookFormView) navigateFocus(delta int) {
	v.focusIndex = (v.focusIndex + delta + focusCount) % focusCount
	v.updateFocus()
}

// updateFocus updates which input has focus
func (v *BookFormView) updateFocus() {
	v.titleInput.Blur()
	v.authorInput.Blur()
	v.pagesInput.Blur()

	switch v.focusIndex {
	case focusTitle:
		v.titleInput.Focus()
	case focusAuthor:
		v.authorInput.Focus()
	case focusPages:
		v.pagesInput.Focus()
	}
}

// styleInput returns the styled input field
func (v *BookFormView) styleInput(input textinput.Model, index int) string {
	style := styles.InputField
	if v.focusIndex == index {
		style = styles.InputFieldFocused
	}
	return style.Render(input.View())
}

func (v *BookFormView) renderGenres() string {
	selected := v.store.State().Draft.Genre

	chips := make([]string, 0, models.GenreCount)
	for _, g := range models.Genres() {
		if g == selected {
			chips = append(chips, styles.GenreChipSelected.Render(g.String()))
		} else {
			chips = append(chips, styles.GenreChip.Render(g.String()))
		}
	}

	// Three per line keeps the dialog narrow
	row := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, chips[:3]...),
		lipgloss.JoinHorizontal(lipgloss.Top, chips[3:]...),
	)

	if v.focusIndex == focusGenre {
		return styles.GenreRowFocused.Render(row)
	}
	return styles.GenreRow.Render(row)
}

func (v *BookFormView) renderButton(label string, index int) string {
	if v.focusIndex == index {
		return styles.ButtonFocused.Render(label)
	}
	return styles.Button.Render(label)
}
