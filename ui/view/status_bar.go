package view

import (
	"github.com/soocke/bbox-labeler/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the drawing state, the session status line and the last message.
type StatusBar interface {
	SetStatus(text string)
	SetStateLabel(text string)
	SetMessage(text string, isError bool)
}

type statusBar struct {
	stateLbl  *TLabelWidget
	statusLbl *TLabelWidget
	msgLbl    *TLabelWidget
}

// NewStatusBar creates the status labels inside a frame placed at row.
// Layout: state label at column 0, status line at column 1, message below both.
func NewStatusBar(row int) StatusBar {
	frame := Frame()
	Grid(frame, Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	GridColumnConfigure(frame.Window, 1, Weight(1))

	s := &statusBar{
		stateLbl:  TLabel(Style(theme.StyleStateLabel), Width(14), Txt("State: idle")),
		statusLbl: TLabel(Style(theme.StyleStatusLabel), Anchor("w"), Txt("No images")),
		msgLbl:    TLabel(Style(theme.StyleStatusLabel), Anchor("w"), Txt("File > Open Image Folder to start")),
	}
	Grid(s.stateLbl, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.statusLbl, In(frame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	Grid(s.msgLbl, In(frame), Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"))
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

func (s *statusBar) SetStateLabel(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

// SetMessage shows text in the message row, styled as an error when isError.
func (s *statusBar) SetMessage(text string, isError bool) {
	if s == nil || s.msgLbl == nil {
		return
	}
	style := theme.StyleStatusLabel
	if isError {
		style = theme.StyleErrorLabel
	}
	s.msgLbl.Configure(Style(style), Txt(text))
}
