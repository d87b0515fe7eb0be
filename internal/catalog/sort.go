// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/videographus/internal/models"
)

// sortVideos orders the matched set in place. The sort is stable, so
// records comparing equal on the sort key keep their file (scan) order,
// which makes pagination deterministic across identical queries.
//
// Absent optional keys sort below every present value: a nil rating
// compares as -1 (under any real rating), a nil upload date as the zero
// time. Titles compare lowercased, plain ordinal, no locale collation.
func sortVideos(videos []models.Video, sortBy, sortOrder string) {
	less := lessFunc(sortBy)
	if sortOrder == models.SortOrderDesc {
		asc := less
		less = func(a, b *models.Video) bool {
			return asc(b, a)
		}
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return less(&videos[i], &videos[j])
	})
}

// lessFunc returns the ascending comparator for a sort key. Unrecognized
// keys fall back to views; Normalize should have canonicalized already.
func lessFunc(sortBy string) func(a, b *models.Video) bool {
	switch sortBy {
	case models.SortByDate:
		return func(a, b *models.Video) bool {
			return sortDate(a).Before(sortDate(b))
		}
	case models.SortByDuration:
		return func(a, b *models.Video) bool {
			return a.DurationSeconds < b.DurationSeconds
		}
	case models.SortByRating:
		return func(a, b *models.Video) bool {
			return sortRating(a) < sortRating(b)
		}
	case models.SortByTitle:
		return func(a, b *models.Video) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		return func(a, b *models.Video) bool {
			return a.Views < b.Views
		}
	}
}

func sortDate(v *models.Video) time.Time {
	if v.UploadedDate == nil {
		return time.Time{}
	}
	return *v.UploadedDate
}

func sortRating(v *models.Video) float64 {
	if v.Rating == nil {
		return -1
	}
	return *v.Rating
}

// paginate slices the sorted matched set to the requested window. A page
// past the end yields an empty (non-nil) slice, never an error.
func paginate(videos []models.Video, page, limit int) []models.Video {
	start := (page - 1) * limit
	if start < 0 || start >= len(videos) {
		return []models.Video{}
	}
	end := start + limit
	if end > len(videos) {
		end = len(videos)
	}
	return videos[start:end]
}
