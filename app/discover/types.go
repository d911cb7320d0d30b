package discover

// Candidate is a discovered (title, URL) pair, not yet fetched or filtered.
// Published carries the source's raw date string and may be empty; nothing
// downstream parses it.
type Candidate struct {
	Title     string
	URL       string
	Published string
}
