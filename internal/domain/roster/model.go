package roster

// Activity is a named extracurricular offering with its schedule, capacity
// and participants in signup order.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is on the activity's roster.
func (a Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

// SpotsLeft is the remaining capacity. It goes negative when the roster was
// filled past max_participants, since capacity is not enforced at signup.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

func (a Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}
