package views

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewType represents the screens the application can show
type ViewType int

const (
	ViewHome ViewType = iota
	ViewAddBook
)

// String returns the name of the view
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewAddBook:
		return "Add New Book"
	default:
		return "Unknown"
	}
}

// View is the interface that all views must implement
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// BannerLoadedMsg carries the rendered banner image
type BannerLoadedMsg struct {
	Banner string
	Err    error
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the current error
type ClearErrorMsg struct{}

// SendError creates an error message command
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
