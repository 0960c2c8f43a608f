package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content, after the
// header (title + separator), notice line and status bar (separator + hints).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
