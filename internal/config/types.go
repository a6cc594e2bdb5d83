package config

// QualityTier controls the model selection and trade-off between speed/cost and quality.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies a reasoning-service provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderGoogle    ProviderType = "google"
	ProviderOllama    ProviderType = "ollama"
)

// ConflictPolicy controls what the artifact writer does when a target
// file already exists.
type ConflictPolicy string

const (
	ConflictSkip      ConflictPolicy = "skip"
	ConflictOverwrite ConflictPolicy = "overwrite"
	ConflictBackup    ConflictPolicy = "backup"
)

// Config is the top-level reqforge configuration, corresponding to .reqforge.yml.
type Config struct {
	// Providers is the ladder order. Unconfigured providers are skipped
	// at startup, not errored.
	Providers         []string       `yaml:"providers" koanf:"providers"`
	Model             string         `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType   `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string         `yaml:"embedding_model" koanf:"embedding_model"`
	Quality           QualityTier    `yaml:"quality" koanf:"quality"`
	OutputDir         string         `yaml:"output_dir" koanf:"output_dir"`
	ConflictPolicy    ConflictPolicy `yaml:"conflict_policy" koanf:"conflict_policy"`
	ContextFile       string         `yaml:"context_file" koanf:"context_file"`
	DBPath            string         `yaml:"db_path" koanf:"db_path"`

	// QualityThreshold is the overall assessment score that stops the
	// refinement loop.
	QualityThreshold int `yaml:"quality_threshold" koanf:"quality_threshold"`
	// MaxRefinementRounds bounds the generate-assess-refine cycle.
	MaxRefinementRounds int `yaml:"max_refinement_rounds" koanf:"max_refinement_rounds"`
	// RequestTimeoutSeconds is the per-provider-attempt deadline.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" koanf:"port"`
}
