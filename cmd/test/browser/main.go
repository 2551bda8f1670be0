package main

import (
	"fmt"
	"log"
	"time"

	"go-jobboard-automation/internal/browser"
)

func main() {
	fmt.Println("🌐 Testing browser manager...")

	manager, err := browser.NewManager(true)
	if err != nil {
		log.Fatalf("Failed to start browser: %v", err)
	}
	defer manager.Close()

	fmt.Println("✅ Browser started")

	page, err := manager.NewPage(10 * time.Second)
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Println("🔍 Navigating to justjoin.it...")
	if err := page.Navigate("https://justjoin.it/job-offers/all-locations"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	if page.TryClick("#cookiescript_accept") {
		fmt.Println("🍪 Cookie banner dismissed")
	}

	if err := page.WaitFor("#up-offers-list ul li[data-index]"); err != nil {
		log.Fatalf("Offer list never rendered: %v", err)
	}

	fragments, err := page.Snapshot("#up-offers-list ul li[data-index]", "data-index")
	if err != nil {
		log.Fatalf("Failed to snapshot offers: %v", err)
	}

	fmt.Printf("✅ Snapshot captured %d offer items\n", len(fragments))
	for i, f := range fragments {
		if i >= 3 {
			break
		}
		fmt.Printf("   [%s] %d bytes of markup\n", f.Key, len(f.HTML))
	}
}
