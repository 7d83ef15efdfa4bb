// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command passwdfix repairs stored password checksums. It reads a JSON map
// of username to plaintext password, recomputes the legacy checksum for each
// entry, and overwrites the stored value. Intended for recovering accounts
// whose checksums were written by a buggy or foreign client.
//
// Usage:
//
//	passwdfix -file passwords.json -d postgres://...
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/internal/utils"
)

func main() {
	var filePath string
	var databaseDSN string
	flag.StringVar(&filePath, "file", "passwords.json", "Path to the JSON username->password map")
	flag.StringVar(&databaseDSN, "d", os.Getenv("STORAGE_DB_DATABASE_URI"), "Database DSN")
	flag.Parse()

	log := logger.NewLogger("passwdfix")
	ctx := context.Background()

	passwords, err := loadPasswords(filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("error loading password file")
	}
	log.Info().Int("count", len(passwords)).Msg("password file loaded")

	db, err := store.NewConnectPostgres(ctx, config.DB{DSN: databaseDSN}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	repo := store.NewUserRepository(db, log)

	var fixed, missing, failed int
	for username, plaintext := range passwords {
		checksum := utils.LegacyPasswordChecksum(plaintext)

		err := repo.UpdatePassword(ctx, username, checksum)
		switch {
		case err == nil:
			log.Info().Str("username", username).Msg("checksum updated")
			fixed++
		case errors.Is(err, store.ErrUserNotFound):
			log.Warn().Str("username", username).Msg("no such user, skipping")
			missing++
		default:
			log.Err(err).Str("username", username).Msg("failed to update checksum")
			failed++
		}
	}

	log.Info().
		Int("fixed", fixed).
		Int("missing", missing).
		Int("failed", failed).
		Msg("password fix finished")

	if failed > 0 {
		os.Exit(1)
	}
}

func loadPasswords(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var passwords map[string]string
	if err := json.NewDecoder(file).Decode(&passwords); err != nil {
		return nil, err
	}

	return passwords, nil
}
