package config

// Config is the top-level stubgen configuration loaded from YAML.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Paths    PathsConfig    `yaml:"paths"`
	Search   SearchConfig   `yaml:"search"`
	Feed     FeedConfig     `yaml:"feed"`
	Robots   RobotsConfig   `yaml:"robots"`
	LlmsTxt  LlmsTxtConfig  `yaml:"llms_txt"`
	Manifest ManifestConfig `yaml:"manifest"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Patch    PatchConfig    `yaml:"patch"`
	Clean    CleanConfig    `yaml:"clean"`

	// ConfigDir is the directory containing the config file (set at load time).
	ConfigDir string `yaml:"-"`
}

type SiteConfig struct {
	Name        string `yaml:"name"`
	BaseURL     string `yaml:"base_url"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	Artist      string `yaml:"artist"`
	ShareImage  string `yaml:"share_image"`
	Logo        string `yaml:"logo"`
}

type PathsConfig struct {
	Songs  string `yaml:"songs"`
	Output string `yaml:"output"`
	Entry  string `yaml:"entry"`
}

// SearchConfig controls whether the WebSite schema advertises a SearchAction.
type SearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"`
	Param   string `yaml:"param"`
}

type FeedConfig struct {
	Enabled  bool   `yaml:"enabled"`
	MainFeed string `yaml:"main_feed"`
}

type RobotsConfig struct {
	AllowAll  bool     `yaml:"allow_all"`
	ExtraBots []string `yaml:"extra_bots"`
}

type LlmsTxtConfig struct {
	Enabled bool   `yaml:"enabled"`
	Tagline string `yaml:"tagline"`
}

type ManifestConfig struct {
	Enabled         bool   `yaml:"enabled"`
	ThemeColor      string `yaml:"theme_color"`
	BackgroundColor string `yaml:"background_color"`
}

type ArchiveConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PatchConfig holds the anchor substrings used when patching the SPA entry
// document. The entry document's structure is owned by another build tool, so
// both anchors are configurable.
type PatchConfig struct {
	PreconnectAnchor string `yaml:"preconnect_anchor"`
	NavAnchor        string `yaml:"nav_anchor"`
}

type CleanConfig struct {
	Enabled bool `yaml:"enabled"`
}
