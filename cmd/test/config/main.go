package main

import (
	"fmt"

	"go-jobboard-automation/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load(config.DefaultPath)
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Site: %s\n", cfg.Site)
	fmt.Printf("   City: %s\n", cfg.City)
	fmt.Printf("   Experience: %s\n", cfg.Experience)
	fmt.Printf("   With salary: %t\n", cfg.WithSalary)
	fmt.Printf("   Headless: %t\n", cfg.Headless)
	fmt.Printf("   Wait timeout: %ds\n", cfg.WaitTimeout)
	fmt.Printf("   Rounds: %d (stale %d)\n", cfg.MaxRounds, cfg.MaxStaleRounds)
	fmt.Printf("   Raw dir: %s\n", cfg.RawDataDir)
	fmt.Printf("   Staging dir: %s\n", cfg.StagingDataDir)
	fmt.Printf("   Telegram configured: %t\n", cfg.TelegramToken != "")
}
