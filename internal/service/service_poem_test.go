// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("connection refused")

func newTestPoemService(repo *poemRepoMock) PoemService {
	return NewPoemService(repo, logger.Nop())
}

func TestGetAllPoems_Success(t *testing.T) {
	want := []models.Poem{{ID: 1, Title: "静夜思", Author: "李白", Dynasty: "唐"}}
	svc := newTestPoemService(&poemRepoMock{
		getAllFunc: func(ctx context.Context) ([]models.Poem, error) {
			return want, nil
		},
	})

	assert.Equal(t, want, svc.GetAllPoems(context.Background()))
}

func TestGetAllPoems_StoreFailureDegradesToEmpty(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getAllFunc: func(ctx context.Context) ([]models.Poem, error) {
			return nil, errStoreDown
		},
	})

	poems := svc.GetAllPoems(context.Background())
	require.NotNil(t, poems)
	assert.Empty(t, poems)
}

func TestGetPoemsByTag_StoreFailureDegradesToEmpty(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getByTagFunc: func(ctx context.Context, tag string) ([]models.Poem, error) {
			return nil, errStoreDown
		},
	})

	poems := svc.GetPoemsByTag(context.Background(), "思乡")
	require.NotNil(t, poems)
	assert.Empty(t, poems)
}

func TestSearchPoems_NilResultNormalizedToEmpty(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		searchFunc: func(ctx context.Context, keyword string) ([]models.Poem, error) {
			return nil, nil
		},
	})

	poems := svc.SearchPoems(context.Background(), "月")
	require.NotNil(t, poems)
	assert.Empty(t, poems)
}

func TestGetAllTags_FlattensAndDeduplicates(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getAllTagsFunc: func(ctx context.Context) ([]models.TagList, error) {
			return []models.TagList{
				{"思乡", "月亮"},
				{"月亮", "送别"},
				{},
			}, nil
		},
	})

	assert.Equal(t, []string{"思乡", "月亮", "送别"}, svc.GetAllTags(context.Background()))
}

func TestGetAllDynasties_UnionsSupplementarySet(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getAllDynastiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"唐", "宋", "唐"}, nil
		},
	})

	got := svc.GetAllDynasties(context.Background())

	// stored dynasties survive, deduplicated
	assert.Contains(t, got, "唐")
	assert.Contains(t, got, "宋")

	// the eight supplementary labels join every successful listing
	for _, label := range []string{"先秦", "两汉", "魏晋", "隋", "金", "元", "明", "清"} {
		assert.Contains(t, got, label)
	}
	assert.Len(t, got, 10)
	assert.IsIncreasing(t, got)
}

func TestGetAllDynasties_StoreFailureDegradesToEmpty(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getAllDynastiesFunc: func(ctx context.Context) ([]string, error) {
			return nil, errStoreDown
		},
	})

	got := svc.GetAllDynasties(context.Background())

	// the supplementary union applies to successful reads only; a failed
	// read degrades to empty like every other listing
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAllAuthors_SortedDistinct(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		getAllAuthorsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"李白", "杜甫", "李白"}, nil
		},
	})

	got := svc.GetAllAuthors(context.Background())
	assert.Len(t, got, 2)
	assert.IsIncreasing(t, got)
}

func TestAddPoem_StampsTimestampsAndPropagatesError(t *testing.T) {
	var captured models.Poem
	svc := newTestPoemService(&poemRepoMock{
		createFunc: func(ctx context.Context, poem models.Poem) (models.Poem, error) {
			captured = poem
			poem.ID = 7
			return poem, nil
		},
	})

	created, err := svc.AddPoem(context.Background(), models.Poem{
		Title:   "春晓",
		Author:  "孟浩然",
		Dynasty: "唐",
		Content: "春眠不觉晓",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, created.ID)

	assert.False(t, captured.CreatedAt.IsZero())
	assert.Equal(t, captured.CreatedAt, captured.UpdatedAt)
	assert.WithinDuration(t, time.Now(), captured.CreatedAt, time.Minute)
	assert.NotNil(t, captured.Tags)
}

func TestAddPoem_StoreFailurePropagates(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		createFunc: func(ctx context.Context, poem models.Poem) (models.Poem, error) {
			return models.Poem{}, errStoreDown
		},
	})

	_, err := svc.AddPoem(context.Background(), models.Poem{Title: "春晓", Author: "孟浩然", Dynasty: "唐"})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestAddPoem_MissingRequiredFields(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{})

	_, err := svc.AddPoem(context.Background(), models.Poem{Author: "孟浩然", Dynasty: "唐"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdatePoem_RequiresID(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{})

	_, err := svc.UpdatePoem(context.Background(), models.Poem{Title: "春晓", Author: "孟浩然", Dynasty: "唐"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeletePoem_StoreFailurePropagates(t *testing.T) {
	svc := newTestPoemService(&poemRepoMock{
		deleteFunc: func(ctx context.Context, id int64) error {
			return errStoreDown
		},
	})

	assert.ErrorIs(t, svc.DeletePoem(context.Background(), 3), errStoreDown)
}
