package cfg

type Cfg struct {
	// Storage and output paths
	DBPath  string
	OutDir  string
	SiteDir string

	// Sources configuration
	SourcesFile string

	// Pipeline configuration
	PerSourceLimit int
	MinChars       int
	RecentDays     int
	RecentLimit    int

	// HTTP client configuration
	Timeout        int
	UserAgent      string
	AcceptLanguage string

	// Serve mode configuration
	Serve             bool
	Port              string
	SchedulerInterval int
	APIAccessKey      string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
