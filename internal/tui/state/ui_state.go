package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	GameFormMode                        // Adding or editing a game with huh
	ColumnFormMode                      // Creating or renaming a column with huh
	DeleteGameConfirmMode               // Confirming game deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	DetailMode                          // Viewing one game with its review
	HelpMode                            // Displaying help screen
)

// UIState manages navigation (lane/game selection), horizontal and vertical
// scrolling, terminal dimensions and the current interaction mode.
type UIState struct {
	selectedLane int
	selectedGame int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible lane
	viewportOffset int
	// viewportSize is the number of lanes that fit on the screen
	viewportSize int

	// gameScrollOffsets is keyed by lane ID
	gameScrollOffsets map[string]int

	showUnassigned bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		gameScrollOffsets: make(map[string]int),
	}
}

// SelectedLane returns the index of the focused lane.
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SetSelectedLane updates the focused lane index.
func (s *UIState) SetSelectedLane(index int) {
	s.selectedLane = max(0, index)
}

// SelectedGame returns the index of the focused game within the focused lane.
func (s *UIState) SelectedGame() int {
	return s.selectedGame
}

// SetSelectedGame updates the focused game index.
func (s *UIState) SetSelectedGame(index int) {
	s.selectedGame = max(0, index)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions and recalculates the viewport.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.calculateViewportSize()
}

// ContentHeight is the height left for lanes once the header and status bar
// are drawn, never less than 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2
	const statusBarHeight = 2
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible lane.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of lanes that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many lanes fit in the terminal width.
// Each lane is 30 content + 2 padding + 2 border + 2 spacing characters wide
// and 4 characters are kept for margins.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const laneWidth = 36
	const reservedWidth = 4

	s.viewportSize = max(1, (s.width-reservedWidth)/laneWidth)
}

// EnsureSelectionVisible scrolls the viewport so the focused lane is on screen.
func (s *UIState) EnsureSelectionVisible(selectedLane int) {
	if selectedLane < s.viewportOffset {
		s.viewportOffset = selectedLane
	}
	if selectedLane >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedLane - s.viewportSize + 1
	}
}

// ClampSelection keeps the lane and game indexes inside the board after the
// board shrank. gameCount is the size of the focused lane after clamping the
// lane, so callers look it up in two steps.
func (s *UIState) ClampSelection(laneCount int, gameCount func(lane int) int) {
	if laneCount == 0 {
		s.selectedLane = 0
		s.selectedGame = 0
		s.viewportOffset = 0
		return
	}
	if s.selectedLane >= laneCount {
		s.selectedLane = laneCount - 1
	}
	if n := gameCount(s.selectedLane); s.selectedGame >= n {
		s.selectedGame = max(0, n-1)
	}
	if s.viewportOffset+s.viewportSize > laneCount {
		s.viewportOffset = max(0, laneCount-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedLane)
}

// GameScrollOffset returns the vertical scroll offset of a lane.
func (s *UIState) GameScrollOffset(laneID string) int {
	return s.gameScrollOffsets[laneID]
}

// EnsureGameVisible adjusts a lane's scroll offset so the selected game is
// on screen.
func (s *UIState) EnsureGameVisible(laneID string, selectedGameIdx, visibleCount int) {
	offset := s.gameScrollOffsets[laneID]

	if selectedGameIdx < offset {
		offset = selectedGameIdx
	}
	if selectedGameIdx >= offset+visibleCount {
		offset = selectedGameIdx - visibleCount + 1
	}
	s.gameScrollOffsets[laneID] = max(0, offset)
}

// ShowUnassigned reports whether the unassigned lane is visible.
func (s *UIState) ShowUnassigned() bool {
	return s.showUnassigned
}

// ToggleUnassigned flips the unassigned lane on or off.
func (s *UIState) ToggleUnassigned() {
	s.showUnassigned = !s.showUnassigned
}
