package roster

import (
	"fmt"
	"strings"
)

// Validate checks an activity before it is accepted into a roster seed.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: activity name is required", ErrInvalidInput)
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %s: max_participants must be > 0", ErrInvalidInput, a.Name)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if strings.TrimSpace(email) == "" {
			return fmt.Errorf("%w: %s: blank participant", ErrInvalidInput, a.Name)
		}
		if _, dup := seen[email]; dup {
			return fmt.Errorf("%w: %s: duplicate participant %s", ErrInvalidInput, a.Name, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// ValidateSeed validates every activity and rejects duplicate names.
func ValidateSeed(seed []Activity) error {
	names := make(map[string]struct{}, len(seed))
	for _, a := range seed {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidInput, a.Name)
		}
		names[a.Name] = struct{}{}
	}
	return nil
}

// validateEmail rejects blank emails. Anything else is taken verbatim.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return nil
}
