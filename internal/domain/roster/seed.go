package roster

// DefaultSeed returns the activities the roster starts with.
func DefaultSeed() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		// Sports
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team for practices and matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu", "lisa@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice skills and play friendly games",
			Schedule:        "Wednesdays and Saturdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"mike@mergington.edu", "nina@mergington.edu"},
		},
		// Arts
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Mondays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting workshops and stage productions",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ashley@mergington.edu", "ben@mergington.edu"},
		},
		// Intellectual
		{
			Name:            "Debate Team",
			Description:     "Learn argumentation, public speaking, and competitive debating",
			Schedule:        "Tuesdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"chris@mergington.edu", "taylor@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Prepare for science competitions across multiple disciplines",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"oliver@mergington.edu", "sara@mergington.edu"},
		},
	}
}
