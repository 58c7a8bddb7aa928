package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityValidate(t *testing.T) {
	valid := Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@mergington.edu"}}
	require.NoError(t, valid.Validate())

	cases := map[string]Activity{
		"blank name":      {Name: " ", MaxParticipants: 1},
		"zero capacity":   {Name: "Chess Club"},
		"blank member":    {Name: "Chess Club", MaxParticipants: 2, Participants: []string{""}},
		"duplicate email": {Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x", "a@x"}},
	}
	for name, act := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, act.Validate(), ErrInvalidInput)
		})
	}
}

func TestValidateSeed(t *testing.T) {
	require.NoError(t, ValidateSeed(DefaultSeed()))

	seed := DefaultSeed()
	seed = append(seed, seed[0])
	require.ErrorIs(t, ValidateSeed(seed), ErrInvalidInput)
}

func TestActivityClone(t *testing.T) {
	a := Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@mergington.edu"}}
	b := a.Clone()
	b.Participants[0] = "b@mergington.edu"
	require.Equal(t, "a@mergington.edu", a.Participants[0])
	require.NotNil(t, Activity{}.Clone().Participants)
}
