package publisher

// Publisher fans rendered announcement payloads out to other consumers
// (web mirror, archive) alongside the chat delivery.
type Publisher interface {
	// Publish publishes a message under a key (the date slug)
	Publish(key string, message []byte) error

	// TrimStreams trims retained messages to the configured maximum
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
