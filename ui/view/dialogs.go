package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs wraps the Tk standard dialogs used by the presenters.
type Dialogs struct{}

// ChooseDirectory opens the native folder picker. It returns "" when cancelled.
func (Dialogs) ChooseDirectory(title string) string {
	return ChooseDirectory(Title(title))
}

// ShowError shows a modal error box.
func (Dialogs) ShowError(title, message string) {
	MessageBox(Icon("error"), Title(title), Msg(message), Type("ok"))
}

// Confirm asks a yes/no question and reports whether the answer was yes.
func (Dialogs) Confirm(title, message string) bool {
	return MessageBox(Icon("warning"), Title(title), Msg(message), Type("yesno")) == "yes"
}
