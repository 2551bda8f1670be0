// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	//Search criteria
	Site       string `yaml:"site"`
	City       string `yaml:"city"`
	Experience string `yaml:"experience"`
	WithSalary bool   `yaml:"with_salary"`
	//Browser
	Headless    bool `yaml:"headless"`
	WaitTimeout int  `yaml:"wait_timeout_seconds"`
	//Round-loop bounds
	MaxRounds      int `yaml:"max_rounds"`
	MaxStaleRounds int `yaml:"max_stale_rounds"`
	//Paths
	RawDataDir     string `yaml:"raw_data_dir"`
	StagingDataDir string `yaml:"staging_data_dir"`
	//Notifications (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	//booleans default to true and are only flipped by explicit yaml keys
	cfg := &Config{
		WithSalary: true,
		Headless:   true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.Site == "" {
		cfg.Site = "justjoinit"
	}
	if cfg.City == "" {
		cfg.City = "trojmiasto"
	}
	if cfg.Experience == "" {
		cfg.Experience = "junior"
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 10
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = 400
	}
	if cfg.MaxStaleRounds <= 0 {
		cfg.MaxStaleRounds = 5
	}
	if cfg.RawDataDir == "" {
		cfg.RawDataDir = "data/raw"
	}
	if cfg.StagingDataDir == "" {
		cfg.StagingDataDir = "data/staging"
	}

	return cfg
}
