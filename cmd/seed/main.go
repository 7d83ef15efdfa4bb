// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed is a one-shot loader for the poem catalog. It reads a JSON
// array of poems, skips the ones whose title already exists in the store,
// inserts the rest, and reports verification counts.
//
// Usage:
//
//	seed -file poems.json -d postgres://...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/models"
)

func main() {
	var filePath string
	var databaseDSN string
	flag.StringVar(&filePath, "file", "poems.json", "Path to the JSON poem file")
	flag.StringVar(&databaseDSN, "d", os.Getenv("STORAGE_DB_DATABASE_URI"), "Database DSN")
	flag.Parse()

	log := logger.NewLogger("seed")
	ctx := context.Background()

	poems, err := loadPoems(filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("error loading poem file")
	}
	log.Info().Int("count", len(poems)).Msg("poem file loaded")

	db, err := store.NewConnectPostgres(ctx, config.DB{DSN: databaseDSN}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repo := store.NewPoemRepository(db, log)

	existing, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error listing existing poems")
	}

	// de-dup key is the title, matching the original loader's convention
	seen := make(map[string]struct{}, len(existing))
	for _, poem := range existing {
		seen[poem.Title] = struct{}{}
	}

	var inserted, skipped, failed int
	for _, poem := range poems {
		if _, ok := seen[poem.Title]; ok {
			skipped++
			continue
		}

		now := time.Now()
		poem.CreatedAt = now
		poem.UpdatedAt = now
		if poem.Tags == nil {
			poem.Tags = models.TagList{}
		}

		if _, err := repo.Create(ctx, poem); err != nil {
			log.Err(err).Str("title", poem.Title).Msg("failed to insert poem")
			failed++
			continue
		}
		seen[poem.Title] = struct{}{}
		inserted++
	}

	stored, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error verifying stored poems")
	}

	log.Info().
		Int("inserted", inserted).
		Int("skipped", skipped).
		Int("failed", failed).
		Int("stored_total", len(stored)).
		Msg("seeding finished")

	if failed > 0 {
		os.Exit(1)
	}
}

func loadPoems(path string) ([]models.Poem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var poems []models.Poem
	if err := json.NewDecoder(file).Decode(&poems); err != nil {
		return nil, err
	}

	return poems, nil
}
