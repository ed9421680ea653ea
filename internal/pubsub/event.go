package pubsub

// Event announces that something on a user's schedule changed. Topic
// names the changed surface (calendar, commitment); consumers decide
// who to fan the change out to.
type Event struct {
	User  string `json:"user"`
	Topic string `json:"topic"`
}

const (
	TopicCalendar   = "calendar"
	TopicCommitment = "commitment"
)
