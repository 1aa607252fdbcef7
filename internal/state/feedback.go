package state

// Feedback keeps the most recent user-facing messages, oldest first.
type Feedback struct {
	messages []string
	max      int
}

func NewFeedback(max int) *Feedback {
	return &Feedback{max: max}
}

// Push appends msg, dropping the oldest messages beyond the limit.
func (f *Feedback) Push(msg string) {
	if f.max <= 0 {
		return
	}
	if len(f.messages) >= f.max {
		drop := len(f.messages) - f.max + 1
		f.messages = append(f.messages[:0], f.messages[drop:]...)
	}
	f.messages = append(f.messages, msg)
}

// Latest returns the newest message or "".
func (f *Feedback) Latest() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

func (f *Feedback) Messages() []string {
	if len(f.messages) == 0 {
		return nil
	}
	out := make([]string, len(f.messages))
	copy(out, f.messages)
	return out
}
