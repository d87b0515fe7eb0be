// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package models

import (
	"time"
)

// Video represents one decoded catalog record from the pipe-delimited dump.
// Records are immutable once decoded; all derived fields (Source, IsHD, IsVR,
// Rating, UploadedDate) are computed at decode time by internal/catalog and
// never recomputed afterwards.
//
// Field semantics:
//   - Embed: raw embed markup or URL, treated as opaque except for source
//     derivation (host of the first URL, "www." stripped)
//   - Tags/Categories/Performers: order preserved for display; matching
//     against them is case-insensitive
//   - DurationSeconds/Views/Likes/Dislikes: always >= 0 after decode
//     (malformed numerics fall back to 0 and are counted as warnings)
//   - UploadedDate: populated from an optional trailing date column when
//     present and parseable, absent otherwise
//   - IsHD/IsVR: heuristic flags derived from tags+categories by whole-value
//     case-insensitive equality; false negatives are acceptable
//   - Rating: likes/(likes+dislikes)*100 when the denominator is positive,
//     absent otherwise (never 0-by-default)
type Video struct {
	Embed                      string     `json:"embed"`
	PrimaryThumbnail           string     `json:"primaryThumbnail"`
	ThumbnailSequence          []string   `json:"thumbnailSequence"`
	Title                      string     `json:"title"`
	Tags                       []string   `json:"tags"`
	Categories                 []string   `json:"categories"`
	Performers                 []string   `json:"performers"`
	DurationSeconds            int        `json:"durationSeconds"`
	Views                      int64      `json:"views"`
	Likes                      int64      `json:"likes"`
	Dislikes                   int64      `json:"dislikes"`
	SecondaryThumbnail         string     `json:"secondaryThumbnail"`
	SecondaryThumbnailSequence []string   `json:"secondaryThumbnailSequence"`
	Source                     string     `json:"source,omitempty"`
	UploadedDate               *time.Time `json:"uploadedDate,omitempty"`
	IsHD                       bool       `json:"isHD"`
	IsVR                       bool       `json:"isVR"`
	Rating                     *float64   `json:"rating,omitempty"`
}
