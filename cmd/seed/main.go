package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"userform/internal/cache"
	"userform/internal/config"
	"userform/internal/db"
	"userform/internal/model"
	"userform/internal/repository"
	"userform/internal/service"
	"userform/internal/validation"
)

//go:embed users.json
var sampleUsers []byte

// SeedUser is one entry of the seed file, keyed like the form fields.
type SeedUser struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Region        string `json:"region"`
	PostalCode    string `json:"postalCode"`
}

func (s SeedUser) toModel() *model.User {
	return &model.User{
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		Country:       s.Country,
		StreetAddress: s.StreetAddress,
		City:          s.City,
		Region:        s.Region,
		PostalCode:    s.PostalCode,
	}
}

func main() {
	file := flag.String("file", "", "JSON file of users to seed (defaults to the built-in sample)")
	flag.Parse()

	log.Println("Starting seed script...")

	data := sampleUsers
	if *file != "" {
		var err error
		if data, err = os.ReadFile(*file); err != nil {
			log.Fatalf("Failed to read %s: %v", *file, err)
		}
	}

	users, err := parseSeedUsers(data)
	if err != nil {
		log.Fatalf("Failed to parse seed users: %v", err)
	}
	log.Printf("Loaded %d users", len(users))

	cfg := config.Load()
	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB, false, &model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	svc := service.NewUserService(repository.NewUserRepository(gormDB), cacheClient)
	saved, skipped, err := seed(context.Background(), svc, validation.New(), users)
	if err != nil {
		log.Fatalf("Seed failed after %d users: %v", saved, err)
	}
	log.Printf("Seed completed: %d saved, %d skipped", saved, skipped)
}

func parseSeedUsers(data []byte) ([]SeedUser, error) {
	var users []SeedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// seed saves every user that passes validation and counts the rest as skipped.
func seed(ctx context.Context, svc service.UserService, v *validation.Validator, users []SeedUser) (saved, skipped int, err error) {
	for i, su := range users {
		user := su.toModel()
		if res := v.Check(user); !res.OK() {
			log.Printf("Skipping user #%d: %s", i, res.Error())
			skipped++
			continue
		}
		if _, err := svc.SaveUser(ctx, user); err != nil {
			return saved, skipped, fmt.Errorf("save user #%d: %w", i, err)
		}
		saved++
	}
	return saved, skipped, nil
}
