package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/cardbot/internal/bot"
	"github.com/example/cardbot/internal/database"
	"github.com/example/cardbot/internal/excel"
	"github.com/example/cardbot/internal/scheduler"
	"github.com/example/cardbot/internal/session"
)

func main() {
	// .env is optional, deployments may set real environment variables
	_ = godotenv.Load()

	if err := database.Connect(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	catalog := database.DefaultCatalog
	if path := os.Getenv("DEFAULT_WORDS_FILE"); path != "" {
		imported, err := excel.ImportCatalog(path)
		if err != nil {
			log.Fatalf("Failed to import default catalog from %s: %v", path, err)
		}
		log.Printf("Loaded %d default words from %s", len(imported), path)
		catalog = imported
	}

	if err := database.NewWordRepository().SeedDefaults(catalog); err != nil {
		log.Fatalf("Failed to seed default words: %v", err)
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	b, err := bot.New(token, session.NewMemoryStore())
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		s := scheduler.New(b)
		if err := s.Start(); err != nil {
			log.Printf("Failed to start reminder scheduler: %v", err)
		} else {
			defer s.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped")
}
