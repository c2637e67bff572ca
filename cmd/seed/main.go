// Command main runs the database seeder for Murmur.
package main

import (
	"flag"
	"log"
	"strings"

	"murmur/internal/config"
	"murmur/internal/database"
	"murmur/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numComments := flag.Int("comments", 300, "Number of comments to create")
	numFollows := flag.Int("follows", 100, "Number of follow edges to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (fast, dev only)")
	profile := flag.String("profile", "", "Seed profile: a built-in name ("+
		strings.Join(seed.ProfileNames(), ", ")+") or a YAML file path; overrides count flags")
	flag.Parse()

	log.Println("Murmur database seeder")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	p := seed.Profile{
		Name:     "flags",
		Users:    *numUsers,
		Posts:    *numPosts,
		Comments: *numComments,
		Follows:  *numFollows,
		Clean:    *shouldClean,
	}
	if *profile != "" {
		p, err = seed.LoadProfile(*profile)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
	}

	s := seed.NewSeeder(db, seed.Options{SkipBcrypt: *skipBcrypt})
	if err := s.Apply(p); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done.")
	log.Printf("All seeded accounts use the password: %s", seed.DemoPassword)
}
