package views

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/justyntemme/booktracker-t/internal/tracker"
	"github.com/justyntemme/booktracker-t/internal/ui/styles"
	"github.com/justyntemme/booktracker-t/pkg/models"
)

// HomeView shows the last book read, the reading statistics and the
// earlier entries of the reading log
type HomeView struct {
	store *tracker.Store

	banner      string
	recentLimit int

	width  int
	height int
}

// NewHomeView creates the home screen. recentLimit caps how many earlier
// books the reading log lists; 0 hides it.
func NewHomeView(store *tracker.Store, recentLimit int) *HomeView {
	return &HomeView{
		store:       store,
		recentLimit: recentLimit,
		width:       80,
		height:      24,
	}
}

// Init implements View
func (v *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a", "n", "enter":
			v.store.Dispatch(tracker.OpenForm{})
		}

	case BannerLoadedMsg:
		if msg.Err == nil {
			v.banner = msg.Banner
		}
	}

	return v, nil
}

// View implements View
func (v *HomeView) View() string {
	state := v.store.State()

	var b strings.Builder

	if v.banner != "" {
		b.WriteString(v.banner + "\n")
	}
	b.WriteString(styles.TitleBar.Render(" Book Tracker ") + "\n\n")

	panelWidth := min(60, max(30, v.width-4))

	b.WriteString(styles.Panel.Width(panelWidth).Render(v.renderLastBook(state)) + "\n")
	b.WriteString(styles.Panel.Width(panelWidth).Render(v.renderStats(state)) + "\n")

	if log := v.renderReadingLog(state); log != "" {
		b.WriteString(styles.Panel.Width(panelWidth).Render(log) + "\n")
	}

	b.WriteString(styles.ButtonFocused.Render("Add New Book") + "\n\n")
	b.WriteString(v.renderFooter())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetSize implements View
func (v *HomeView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *HomeView) renderLastBook(state tracker.State) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Last Book Read") + "\n")

	book, ok := state.LastBook()
	if !ok {
		b.WriteString(styles.MutedText.Render("No books recorded yet"))
		return b.String()
	}

	b.WriteString(renderField("Title", book.Title))
	b.WriteString(renderField("Author", book.Author))
	b.WriteString(renderField("Genre", book.Genre.String()))
	b.WriteString(strings.TrimSuffix(renderField("Pages", strconv.Itoa(book.Pages)), "\n"))
	return b.String()
}

func (v *HomeView) renderStats(state tracker.State) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Statistics") + "\n")
	b.WriteString("Total Pages Read: " + styles.StatValue.Render(FormatTotal(state.TotalPagesRead)) + "\n")
	b.WriteString("Average Pages per Book: " + styles.StatValue.Render(FormatAverage(state.AveragePagesPerBook)))
	return b.String()
}

// renderReadingLog lists the books before the most recent one
func (v *HomeView) renderReadingLog(state tracker.State) string {
	if v.recentLimit <= 0 || len(state.Books) < 2 {
		return ""
	}

	earlier := state.Books[1:]
	shown := earlier
	if len(shown) > v.recentLimit {
		shown = shown[:v.recentLimit]
	}

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Reading Log"))
	for _, book := range shown {
		b.WriteString("\n" + styles.ListItem.Render(formatLogEntry(book)))
	}
	if more := len(earlier) - len(shown); more > 0 {
		b.WriteString("\n" + styles.ListItemDimmed.Render(fmt.Sprintf("… and %d more", more)))
	}
	return b.String()
}

func (v *HomeView) renderFooter() string {
	help := []string{
		styles.HelpKey.Render("a") + styles.Help.Render(" add book"),
		styles.HelpKey.Render("T") + styles.Help.Render(" theme"),
		styles.HelpKey.Render("?") + styles.Help.Render(" help"),
		styles.HelpKey.Render("q") + styles.Help.Render(" quit"),
	}
	return strings.Join(help, "  ")
}

// renderField renders a label-value pair
func renderField(label, value string) string {
	return styles.FieldLabel.Render(label+":") + " " + styles.FieldValue.Render(value) + "\n"
}

func formatLogEntry(book models.Book) string {
	return fmt.Sprintf("%s by %s · %s · %s pages",
		styles.BookTitle.Render(book.Title),
		styles.BookAuthor.Render(book.Author),
		book.Genre,
		humanize.Comma(int64(book.Pages)),
	)
}

// FormatTotal formats the total page count with thousands separators
func FormatTotal(total int) string {
	return humanize.Comma(int64(total))
}

// FormatAverage formats the average pages per book to two decimal places
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
