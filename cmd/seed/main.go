// Command seed populates the database with demo data for WeCare.
package main

import (
	"flag"
	"log"

	"wecare/internal/config"
	"wecare/internal/database"
	"wecare/internal/seed"
	"wecare/internal/storage"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of members to create")
	numPosts := flag.Int("posts", 100, "Number of forum posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to open upload directory: %v", err)
	}

	s := seed.NewSeeder(db, files)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Every seeded account uses the password %q.", seed.DemoPassword)
}
