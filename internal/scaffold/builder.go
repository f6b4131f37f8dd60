package scaffold

const (
	CopiedMessage     = "Command successfully copied!"
	CopyFailedMessage = "Copying failed!"
)

// Copier writes text to the clipboard and reports whether it succeeded
type Copier interface {
	Copy(text string) bool
}

// Notifier surfaces the outcome of a copy to the user
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
}

// Builder owns the form state and keeps the generated command in sync with it.
// Every mutator recomputes the command before returning.
type Builder struct {
	state   FormState
	command string
}

// NewBuilder creates a builder with default state
func NewBuilder() *Builder {
	b := &Builder{state: DefaultState()}
	b.Recompute()
	return b
}

// State returns a copy of the current form
func (b *Builder) State() FormState {
	return b.state
}

// Command returns the current generated command
func (b *Builder) Command() string {
	return b.command
}

// Recompute re-renders the command from the current state
func (b *Builder) Recompute() string {
	b.command = Render(b.state)
	return b.command
}

// SetString updates a string field
func (b *Builder) SetString(f Field, v string) {
	b.state.SetString(f, v)
	b.Recompute()
}

// SetBool updates a bool field
func (b *Builder) SetBool(f Field, v bool) {
	b.state.SetBool(f, v)
	b.Recompute()
}

// SetTool switches the flag convention
func (b *Builder) SetTool(t Tool) {
	b.state.Tool = t
	b.Recompute()
}

// SetState replaces the whole form, e.g. when a preset is loaded
func (b *Builder) SetState(s FormState) {
	if s.Tool == "" {
		s.Tool = PackageManager
	}
	b.state = s
	b.Recompute()
}

// Reset restores every field to its default
func (b *Builder) Reset() {
	b.state = DefaultState()
	b.Recompute()
}

// Copy hands the current command to the clipboard and notifies the outcome.
// The form is not affected by a failed copy.
func (b *Builder) Copy(c Copier, n Notifier) bool {
	ok := c.Copy(b.command)
	if n != nil {
		if ok {
			n.NotifySuccess(CopiedMessage)
		} else {
			n.NotifyError(CopyFailedMessage)
		}
	}
	return ok
}

// Clone returns an independent builder with the same state
func (b *Builder) Clone() *Builder {
	c := *b
	return &c
}
