// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/store"
	"github.com/MKhiriev/poem-catalog/models"
)

// supplementaryDynasties is unioned into every successful distinct-dynasty
// listing so these filter options appear in a selector even when no stored
// poem carries them. The exact set is load-bearing for the frontend.
var supplementaryDynasties = []string{"先秦", "两汉", "魏晋", "隋", "金", "元", "明", "清"}

type poemService struct {
	repo   store.PoemRepository
	logger *logger.Logger
}

// NewPoemService constructs a [PoemService] backed by the given repository.
func NewPoemService(repo store.PoemRepository, logger *logger.Logger) PoemService {
	logger.Debug().Msg("creating poem service")
	return &poemService{
		repo:   repo,
		logger: logger,
	}
}

// GetAllPoems returns the whole catalog, or an empty slice on store failure.
func (s *poemService) GetAllPoems(ctx context.Context) []models.Poem {
	poems, err := s.repo.GetAll(ctx)
	return s.degradeToEmpty(ctx, "poemService.GetAllPoems", poems, err)
}

// GetPoemsByTag returns poems whose tag list contains tag, or an empty slice
// on store failure.
func (s *poemService) GetPoemsByTag(ctx context.Context, tag string) []models.Poem {
	poems, err := s.repo.GetByTag(ctx, tag)
	return s.degradeToEmpty(ctx, "poemService.GetPoemsByTag", poems, err)
}

// GetPoemsByDynasty returns poems with the exact dynasty label, or an empty
// slice on store failure.
func (s *poemService) GetPoemsByDynasty(ctx context.Context, dynasty string) []models.Poem {
	poems, err := s.repo.GetByDynasty(ctx, dynasty)
	return s.degradeToEmpty(ctx, "poemService.GetPoemsByDynasty", poems, err)
}

// GetPoemsByAuthor returns poems with the exact author name, or an empty
// slice on store failure.
func (s *poemService) GetPoemsByAuthor(ctx context.Context, author string) []models.Poem {
	poems, err := s.repo.GetByAuthor(ctx, author)
	return s.degradeToEmpty(ctx, "poemService.GetPoemsByAuthor", poems, err)
}

// SearchPoems returns poems matching keyword in title, author or content,
// or an empty slice on store failure. An empty keyword matches everything.
func (s *poemService) SearchPoems(ctx context.Context, keyword string) []models.Poem {
	poems, err := s.repo.Search(ctx, keyword)
	return s.degradeToEmpty(ctx, "poemService.SearchPoems", poems, err)
}

// GetAllTags returns the sorted distinct tags across the catalog, or an empty
// slice on store failure.
func (s *poemService) GetAllTags(ctx context.Context) []string {
	lists, err := s.repo.GetAllTags(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "poemService.GetAllTags").
			Msg("store failure degraded to empty tag list")
		return []string{}
	}

	// tags is multi-valued per poem: flatten before deduplicating
	flat := make([]string, 0, len(lists))
	for _, list := range lists {
		flat = append(flat, list...)
	}
	return distinctSorted(flat)
}

// GetAllDynasties returns the sorted distinct dynasties across the catalog,
// unioned with the supplementary historical-era labels. Store failure
// degrades to an empty slice like every other read.
func (s *poemService) GetAllDynasties(ctx context.Context) []string {
	dynasties, err := s.repo.GetAllDynasties(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "poemService.GetAllDynasties").
			Msg("store failure degraded to empty dynasty list")
		return []string{}
	}

	return distinctSorted(append(dynasties, supplementaryDynasties...))
}

// GetAllAuthors returns the sorted distinct authors across the catalog, or an
// empty slice on store failure.
func (s *poemService) GetAllAuthors(ctx context.Context) []string {
	authors, err := s.repo.GetAllAuthors(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "poemService.GetAllAuthors").
			Msg("store failure degraded to empty author list")
		return []string{}
	}

	return distinctSorted(authors)
}

// AddPoem stamps creation timestamps and persists the poem. Unlike the read
// methods, a store failure propagates to the caller.
func (s *poemService) AddPoem(ctx context.Context, poem models.Poem) (models.Poem, error) {
	if poem.Title == "" || poem.Author == "" || poem.Dynasty == "" {
		return models.Poem{}, ErrInvalidDataProvided
	}

	now := time.Now()
	poem.CreatedAt = now
	poem.UpdatedAt = now
	if poem.Tags == nil {
		poem.Tags = models.TagList{}
	}

	return s.repo.Create(ctx, poem)
}

// UpdatePoem replaces the mutable fields of the poem identified by poem.ID,
// stamping updated_at. Store failure propagates; a missing row surfaces as
// [store.ErrPoemNotFound].
func (s *poemService) UpdatePoem(ctx context.Context, poem models.Poem) (models.Poem, error) {
	if poem.ID == 0 || poem.Title == "" || poem.Author == "" || poem.Dynasty == "" {
		return models.Poem{}, ErrInvalidDataProvided
	}

	poem.UpdatedAt = time.Now()
	if poem.Tags == nil {
		poem.Tags = models.TagList{}
	}

	return s.repo.Update(ctx, poem)
}

// DeletePoem removes the poem with the given id. Store failure propagates;
// a missing row surfaces as [store.ErrPoemNotFound].
func (s *poemService) DeletePoem(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrInvalidDataProvided
	}

	return s.repo.Delete(ctx, id)
}

// degradeToEmpty applies the read policy: log the store failure and hand the
// caller an empty slice. Successful results are normalized to non-nil.
func (s *poemService) degradeToEmpty(ctx context.Context, caller string, poems []models.Poem, err error) []models.Poem {
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", caller).
			Msg("store failure degraded to empty poem list")
		return []models.Poem{}
	}
	if poems == nil {
		return []models.Poem{}
	}
	return poems
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}

	sort.Strings(distinct)
	return distinct
}
