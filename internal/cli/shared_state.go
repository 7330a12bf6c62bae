package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// One-line notice shown above the status bar.
	Flash    string
	FlashErr bool
}

// chromeLines is the number of lines used by the header and status bar.
const chromeLines = 5

// ContentHeight returns the lines available to the active view.
func (s *SharedState) ContentHeight() int {
	if s.Height <= chromeLines {
		return 0
	}
	return s.Height - chromeLines
}

func (s *SharedState) SetFlash(text string, isErr bool) {
	s.Flash = text
	s.FlashErr = isErr
}

func (s *SharedState) ClearFlash() {
	s.Flash = ""
	s.FlashErr = false
}
