// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"strings"

	"github.com/tomtom215/videographus/internal/models"
)

// predicate is one filter dimension compiled from a QuerySpec. All
// predicates for a query are ANDed; a record must pass every one.
type predicate func(*models.Video) bool

// buildPredicates compiles a normalized QuerySpec into its predicate set.
//
// Each configured dimension contributes exactly one pure predicate over the
// record; unset dimensions contribute nothing, so an unfiltered query scans
// with an empty set and matches everything. The spec must already be
// normalized (match keys lowercased) — predicates compare against decoded
// values case-insensitively but never re-normalize the spec side.
//
// Dimensions, in evaluation order:
//
//  1. Free-text search: case-insensitive substring, OR across title,
//     performers, tags, and categories
//  2. Category equality: record's categories contain the key
//  3. Source equality: derived source equals the key
//  4. Performer membership: record's performers contain the key
//  5. Duration range: inclusive, either bound optional
//  6. View-count minimum
//  7. HD/VR equality, each only when explicitly set (tri-state)
func buildPredicates(spec models.QuerySpec) []predicate {
	preds := make([]predicate, 0, 9)

	if spec.Search != "" {
		needle := spec.Search
		preds = append(preds, func(v *models.Video) bool {
			return matchesSearch(v, needle)
		})
	}

	if spec.Category != "" {
		key := spec.Category
		preds = append(preds, func(v *models.Video) bool {
			return containsValue(v.Categories, key)
		})
	}

	if spec.Source != "" {
		key := spec.Source
		preds = append(preds, func(v *models.Video) bool {
			// Derived sources are lowercased at decode time
			return v.Source == key
		})
	}

	if spec.Performer != "" {
		key := spec.Performer
		preds = append(preds, func(v *models.Video) bool {
			return containsValue(v.Performers, key)
		})
	}

	if spec.MinDuration != nil {
		min := *spec.MinDuration
		preds = append(preds, func(v *models.Video) bool {
			return int64(v.DurationSeconds) >= min
		})
	}

	if spec.MaxDuration != nil {
		max := *spec.MaxDuration
		preds = append(preds, func(v *models.Video) bool {
			return int64(v.DurationSeconds) <= max
		})
	}

	if spec.MinViews != nil {
		min := *spec.MinViews
		preds = append(preds, func(v *models.Video) bool {
			return v.Views >= min
		})
	}

	if spec.IsHD != nil {
		want := *spec.IsHD
		preds = append(preds, func(v *models.Video) bool {
			return v.IsHD == want
		})
	}

	if spec.IsVR != nil {
		want := *spec.IsVR
		preds = append(preds, func(v *models.Video) bool {
			return v.IsVR == want
		})
	}

	return preds
}

// matchAll reports whether v passes every predicate.
func matchAll(v *models.Video, preds []predicate) bool {
	for _, p := range preds {
		if !p(v) {
			return false
		}
	}
	return true
}

// matchesSearch implements the free-text dimension: substring match against
// the title, then membership lists. needle is already lowercase.
func matchesSearch(v *models.Video, needle string) bool {
	if strings.Contains(strings.ToLower(v.Title), needle) {
		return true
	}
	for _, list := range [][]string{v.Performers, v.Tags, v.Categories} {
		for _, item := range list {
			if strings.Contains(strings.ToLower(item), needle) {
				return true
			}
		}
	}
	return false
}

// containsValue reports whether values contains key by whole-value
// case-insensitive comparison. key is already lowercase.
func containsValue(values []string, key string) bool {
	for _, val := range values {
		if strings.EqualFold(val, key) {
			return true
		}
	}
	return false
}
