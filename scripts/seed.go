package main

import (
	"context"
	"log"
	"os"

	"github.com/hiddenspaces/backend/internal/adapters/database"
	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/postgres"
	"github.com/hiddenspaces/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	userRepo := database.NewUserAdapter(pgClient)
	spaceRepo := database.NewSpaceAdapter(pgClient)
	featureRepo := database.NewFeatureAdapter(pgClient)
	reviewRepo := database.NewReviewAdapter(pgClient)

	userService := services.NewUserService(userRepo)
	featureService := services.NewFeatureService(featureRepo)
	spaceService := services.NewSpaceService(spaceRepo, userRepo, featureService, services.OwnershipPolicy{})
	reviewService := services.NewReviewService(reviewRepo, spaceRepo, userRepo, nil)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				reviews,
				space_features,
				spaces,
				accessibility_features,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Seed users
	users := []map[string]any{
		{
			"email": "amina@example.com", "name": "Amina Yusuf", "ethnicity": "Somali",
			"language": "Somali", "hobby": "Reading", "gender": "Female", "age": "29",
			"city": "Helsinki", "sexual_orientation": "Heterosexual", "password": "seedpass1",
		},
		{
			"email": "jules@example.com", "name": "Jules Laine", "ethnicity": "Finnish",
			"language": "Finnish", "hobby": "Cycling", "gender": "Non-binary", "age": "34",
			"city": "Tampere", "sexual_orientation": "Bisexual", "password": "seedpass2",
		},
		{
			"email": "rosa@example.com", "name": "Rosa Mendez", "ethnicity": "Hispanic",
			"language": "Spanish", "hobby": "Photography", "gender": "Female", "age": "41",
			"city": "Helsinki", "sexual_orientation": "Lesbian", "password": "seedpass3",
		},
	}
	userResult, err := userService.RegisterBatch(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d user(s), skipped %d", userResult.Report.CreatedCount(), userResult.Report.SkippedCount())

	// 2. Seed accessibility features
	features := []map[string]any{
		{"name": "Wheelchair accessible", "description": "Step-free entrance and interior", "icon": "♿"},
		{"name": "Accessible restroom", "description": "Restroom sized for wheelchair users", "icon": "🚻"},
		{"name": "Hearing loop", "description": "Induction loop for hearing aid users", "icon": "🦻"},
		{"name": "Braille signage", "description": "Signage readable by touch", "icon": "⠃"},
		{"name": "Quiet area", "description": "Low-stimulus space available", "icon": "🤫"},
	}
	created, err := featureService.CreateBatch(ctx, features)
	if err != nil {
		log.Fatalf("Failed to seed features: %v", err)
	}
	log.Printf("Seeded %d feature(s)", len(created))

	// 3. Seed spaces
	spaces := []map[string]any{
		{
			"name": "Oodi Central Library", "type": "library", "category": "Culture",
			"address": "Töölönlahdenkatu 4, Helsinki",
			"description": "Open public library with maker spaces and quiet floors.",
			"contactEmail": "info@oodi.fi", "website": "https://oodi.fi", "phone": "+358 9 310 85000",
			"latitude": 60.1741, "longitude": 24.9382,
			"indoor": true, "wifi": true, "created_by": float64(1),
			"features": []any{float64(1), float64(2), float64(5)},
		},
		{
			"name": "Sinisalo Community Garden", "type": "garden", "category": "Outdoors",
			"address": "Puutarhakatu 12, Tampere",
			"description": "Shared garden plots and a covered picnic area.",
			"contactEmail": "garden@sinisalo.fi",
			"latitude": 61.4981, "longitude": 23.7610,
			"indoor": false, "outdoor": true, "parking": true, "created_by": float64(2),
			"features": []any{float64(1)},
		},
		{
			"name": "Kulma Cafe", "type": "cafe", "category": "Food & Drink",
			"address": "Iso Roobertinkatu 3, Helsinki",
			"description": "Quiet corner cafe with loop-equipped counter.",
			"contactEmail": "hello@kulmacafe.fi", "wifi": true, "created_by": float64(3),
			"features": []any{float64(2), float64(3)},
		},
	}
	spaceResult, err := spaceService.CreateBatch(ctx, spaces)
	if err != nil {
		log.Fatalf("Failed to seed spaces: %v", err)
	}
	log.Printf("Seeded %d space(s), %d error(s)", spaceResult.Report.CreatedCount(), len(spaceResult.Report.Errors))

	// 4. Seed reviews
	reviews := []map[string]any{
		{"space_id": float64(1), "user_id": float64(2), "rating": float64(5), "comment": "Fully step-free, staff were great."},
		{"space_id": float64(1), "user_id": float64(3), "rating": float64(4), "comment": "Quiet floor is genuinely quiet."},
		{"space_id": float64(2), "user_id": float64(1), "rating": nil, "comment": "Visited once, will rate after summer."},
		{"space_id": float64(3), "user_id": float64(1), "rating": float64(4), "comment": "Loop at the counter worked well."},
	}
	reviewResult, err := reviewService.CreateBatch(ctx, reviews)
	if err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}
	log.Printf("Seeded %d review(s), %d error(s)", reviewResult.Report.CreatedCount(), len(reviewResult.Report.Errors))

	log.Println("Seeding complete")
}
