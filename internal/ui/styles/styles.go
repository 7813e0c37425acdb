package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color

	// Title bar
	TitleBar lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	MutedText     lipgloss.Style
	SecondaryText lipgloss.Style
	ErrorStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style

	// Input field
	InputLabel        lipgloss.Style
	InputField        lipgloss.Style
	InputFieldFocused lipgloss.Style

	// Home screen panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	FieldLabel lipgloss.Style
	FieldValue lipgloss.Style
	StatValue  lipgloss.Style

	// Reading log rows
	ListItem       lipgloss.Style
	ListItemDimmed lipgloss.Style

	// Dialog/Modal styles
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Button styles
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Genre selector
	GenreChip         lipgloss.Style
	GenreChipSelected lipgloss.Style
	GenreRowFocused   lipgloss.Style
	GenreRow          lipgloss.Style

	// Book info styles
	BookTitle  lipgloss.Style
	BookAuthor lipgloss.Style
)

// ApplyTheme rebuilds all global styles from the given theme's colors
func ApplyTheme(theme Theme) {
	Primary = theme.Primary
	Secondary = theme.Secondary
	Success = theme.Success
	Warning = theme.Warning
	Error = theme.Error
	Muted = theme.Muted
	Background = theme.Background
	Foreground = theme.Foreground
	Border = theme.Border

	TitleBar = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Background(theme.Primary).
		Padding(0, 1).
		Bold(true)

	Help = lipgloss.NewStyle().
		Foreground(theme.Muted)

	HelpKey = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	MutedText = lipgloss.NewStyle().
		Foreground(theme.Muted)

	SecondaryText = lipgloss.NewStyle().
		Foreground(theme.Secondary)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Padding(0, 1)

	InputLabel = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	InputFieldFocused = InputField.
		BorderForeground(theme.Primary)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		MarginBottom(1)

	PanelTitle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	FieldLabel = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Width(10)

	FieldValue = lipgloss.NewStyle().
		Foreground(theme.Foreground)

	StatValue = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	ListItem = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 1)

	ListItemDimmed = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Padding(0, 1)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Background(theme.Muted).
		Padding(0, 2).
		MarginRight(1)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(theme.SelectionText).
		Background(theme.Primary).
		Padding(0, 2).
		MarginRight(1).
		Bold(true)

	GenreChip = lipgloss.NewStyle().
		Foreground(theme.ChipText).
		Background(theme.Chip).
		Padding(0, 1).
		MarginRight(1)

	GenreChipSelected = lipgloss.NewStyle().
		Foreground(theme.SelectionText).
		Background(theme.Selection).
		Padding(0, 1).
		MarginRight(1).
		Bold(true)

	GenreRow = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1)

	GenreRowFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	BookTitle = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Bold(true)

	BookAuthor = lipgloss.NewStyle().
		Foreground(theme.Secondary)
}

func init() {
	ApplyTheme(DarkTheme)
}
