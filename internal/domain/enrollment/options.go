package enrollment

// ListOptions provides filtering options for listing journal events.
type ListOptions struct {
	Activity string
	Email    string
	Limit    int
	Offset   int
}
