package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SummaryAPIKey string
	SummaryModel  string
}

func LoadConfig() Config {
	// .env is optional; system environment wins either way
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8000"),
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDatabase:   getEnv("MONGO_DB", "blog-summarizer"),
		MongoCollection: getEnv("MONGO_COLLECTION", "blogs"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBHost:          getEnv("DB_HOST", ""),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "blogsum"),
		SummaryAPIKey:   getEnv("SUMMARY_API_KEY", ""),
		SummaryModel:    getEnv("SUMMARY_MODEL", "gpt-4o-mini"),
	}
}

// MongoEnabled reports whether the document store write should be attempted.
func (c Config) MongoEnabled() bool {
	return c.MongoURI != ""
}

// RowStoreEnabled reports whether the summary row write should be attempted.
// Both the endpoint and the access credential have to be present.
func (c Config) RowStoreEnabled() bool {
	return c.DBHost != "" && c.DBPassword != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

// Settings holds non-secret tunables, overridable from a yaml file.
type Settings struct {
	FetchTimeoutSec   int    `yaml:"fetch_timeout_sec"`
	FallbackTextChars int    `yaml:"fallback_text_chars"`
	ContentCapChars   int    `yaml:"content_cap_chars"`
	ChatEndpoint      string `yaml:"chat_endpoint"`
	TranslateEndpoint string `yaml:"translate_endpoint"`
}

func DefaultSettings() Settings {
	return Settings{
		FetchTimeoutSec:   10,
		FallbackTextChars: 5000,
		ContentCapChars:   15000,
		ChatEndpoint:      "https://api.openai.com/v1/chat/completions",
		TranslateEndpoint: "https://translate.googleapis.com/translate_a/single",
	}
}

// LoadSettings reads the yaml settings file at path. A missing file is not an
// error; defaults fill in any field the file leaves at zero.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return s, err
	}
	if file.FetchTimeoutSec > 0 {
		s.FetchTimeoutSec = file.FetchTimeoutSec
	}
	if file.FallbackTextChars > 0 {
		s.FallbackTextChars = file.FallbackTextChars
	}
	if file.ContentCapChars > 0 {
		s.ContentCapChars = file.ContentCapChars
	}
	if file.ChatEndpoint != "" {
		s.ChatEndpoint = file.ChatEndpoint
	}
	if file.TranslateEndpoint != "" {
		s.TranslateEndpoint = file.TranslateEndpoint
	}
	return s, nil
}
