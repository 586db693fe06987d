package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultFontURL = "https://raw.githubusercontent.com/google/fonts/main/ofl/shipporimincho/ShipporiMincho-Bold.ttf"

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	// Typeface source: FontURL is fetched directly; if FontCSSURL is set the
	// stylesheet is fetched first and the font URL extracted from it.
	FontURL    string
	FontCSSURL string

	// Best-effort usage report endpoint; empty disables reporting.
	ReportURL string

	// Asset proxy (/image/:filename).
	GitHubUser    string
	GitHubRepo    string
	GitHubBranch  string
	GitHubToken   string
	ImageFilename string

	TelegramBotToken string

	LogLevel  string
	LogFormat string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		// Intentionally not mustEnv: a missing key is reported as a
		// configuration error on the request path, not a crash at boot.
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		FontURL:    getEnv("FONT_URL", defaultFontURL),
		FontCSSURL: os.Getenv("FONT_CSS_URL"),

		ReportURL: os.Getenv("REPORT_URL"),

		GitHubUser:    os.Getenv("GITHUB_USER"),
		GitHubRepo:    os.Getenv("GITHUB_REPO"),
		GitHubBranch:  getEnv("GITHUB_BRANCH", "main"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		ImageFilename: getEnv("IMAGE_FILENAME", "1767440233185.jpg"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// MustTelegram is used by the bot binary, where the token is not optional.
func (c *Config) MustTelegram() string {
	if c.TelegramBotToken == "" {
		return mustEnv("TELEGRAM_BOT_TOKEN")
	}
	return c.TelegramBotToken
}
