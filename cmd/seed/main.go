// Command main seeds demo data through the persistence gateway.
package main

import (
	"context"
	"flag"
	"log"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/gateway"
	"retrospace/internal/seed"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultOptions.Users, "Number of users to create")
	numPosts := flag.Int("posts", seed.DefaultOptions.Posts, "Number of posts to create")
	numMessages := flag.Int("messages", seed.DefaultOptions.Messages, "Number of messages to create")
	randSeed := flag.Uint64("seed", 0, "Deterministic seed (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := document.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	gw := gateway.Select(ctx, cfg, store)
	log.Printf("Seeding via %s backend: %d users, %d posts, %d messages",
		gw.Mode(), *numUsers, *numPosts, *numMessages)

	opts := seed.Options{
		Users:    *numUsers,
		Posts:    *numPosts,
		Messages: *numMessages,
		Seed:     *randSeed,
	}
	if err := seed.Run(ctx, gw, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Done.")
}
