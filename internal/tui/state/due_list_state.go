package state

// DueListState is the due-list widget's copy of the store's (index, label) view
// plus the cursor. It never owns chores: the labels are re-read from the store
// after every transition and the cursor is just an index into them.
type DueListState struct {
	labels []string
	cursor int

	// scrollOffset is the index of the first visible row
	scrollOffset int
}

// NewDueListState creates an empty list widget state.
func NewDueListState() *DueListState {
	return &DueListState{}
}

// Sync replaces the displayed labels and keeps the cursor in range.
func (s *DueListState) Sync(labels []string) {
	s.labels = append(s.labels[:0:0], labels...)
	s.clamp()
}

// Labels returns the labels currently displayed.
func (s *DueListState) Labels() []string {
	return s.labels
}

// Len returns the number of displayed rows.
func (s *DueListState) Len() int {
	return len(s.labels)
}

// Empty reports whether nothing is due.
func (s *DueListState) Empty() bool {
	return len(s.labels) == 0
}

// Cursor returns the selected index.
func (s *DueListState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up one position if possible.
func (s *DueListState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one position if possible.
func (s *DueListState) MoveDown() {
	if s.cursor < len(s.labels)-1 {
		s.cursor++
	}
}

// ScrollOffset returns the first row visible in a window of the given height,
// adjusting the stored offset so the cursor stays on screen.
func (s *DueListState) ScrollOffset(visible int) int {
	if visible <= 0 {
		return 0
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}
	s.scrollOffset = max(min(s.scrollOffset, len(s.labels)-visible), 0)
	return s.scrollOffset
}

func (s *DueListState) clamp() {
	if s.cursor >= len(s.labels) {
		s.cursor = len(s.labels) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
