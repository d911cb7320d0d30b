package sources

// Kind selects the discovery strategy for a source.
type Kind string

const (
	KindFeed    Kind = "feed"
	KindListing Kind = "listing"
)

// Source describes one polled news source. Immutable after startup.
type Source struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	URL  string `yaml:"url"`
}

// fileConfig is the on-disk shape of an optional sources override file.
// Both sections are optional; an omitted section keeps the built-in
// defaults.
type fileConfig struct {
	Sources  []Source `yaml:"sources"`
	Keywords struct {
		MMA     []string `yaml:"mma"`
		Boxing  []string `yaml:"boxing"`
		StopURL []string `yaml:"stop_url"`
	} `yaml:"keywords"`
}
