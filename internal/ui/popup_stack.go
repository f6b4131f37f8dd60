package ui

// PopupCloser hides a popup and reports whether it was open
type PopupCloser func(*Model) bool

type popupEntry struct {
	name  string
	close PopupCloser
}

// PopupStack tracks open popups so the exit key closes the newest one first
type PopupStack struct {
	entries []popupEntry
}

// NewPopupStack creates an empty stack
func NewPopupStack() *PopupStack {
	return &PopupStack{}
}

// Push registers an opened popup
func (s *PopupStack) Push(name string, closer PopupCloser) {
	s.entries = append(s.entries, popupEntry{name: name, close: closer})
}

// Pop removes the topmost popup without closing it
func (s *PopupStack) Pop() PopupCloser {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.close
}

// CloseTop closes the topmost popup. Returns false if none was open.
func (s *PopupStack) CloseTop(m *Model) bool {
	closer := s.Pop()
	if closer == nil {
		return false
	}
	return closer(m)
}

// IsEmpty reports whether no popup is open
func (s *PopupStack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of open popups
func (s *PopupStack) Len() int {
	return len(s.entries)
}

// TopName returns the name of the topmost popup
func (s *PopupStack) TopName() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].name
}
