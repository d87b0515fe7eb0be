// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/videographus/internal/models"
)

// The catalog dump is pipe-delimited with a fixed 13-field arity. Some dumps
// append a 14th column carrying the upload date; anything beyond that is
// ignored.
const (
	fieldEmbed = iota
	fieldPrimaryThumbnail
	fieldThumbnailSequence
	fieldTitle
	fieldTags
	fieldCategories
	fieldPerformers
	fieldDuration
	fieldViews
	fieldLikes
	fieldDislikes
	fieldSecondaryThumbnail
	fieldSecondarySequence
	fieldUploadedDate

	minFieldCount = 13
)

// uploadedDateLayout is the date form emitted by the catalog exporter.
const uploadedDateLayout = "2006-01-02"

// decodeLine parses one pipe-delimited line into a Video.
//
// It is pure: no logging, no shared state, deterministic for a given input.
// The second return is the count of malformed numeric fields that fell back
// to 0 (the record is still yielded; degraded data beats data loss at this
// dataset's quality level). ok=false rejects the line entirely when it has
// fewer than the 13 mandatory fields.
func decodeLine(line string) (models.Video, int, bool) {
	fields := strings.Split(line, "|")
	if len(fields) < minFieldCount {
		return models.Video{}, 0, false
	}

	warnings := 0
	v := models.Video{
		Embed:                      strings.TrimSpace(fields[fieldEmbed]),
		PrimaryThumbnail:           strings.TrimSpace(fields[fieldPrimaryThumbnail]),
		ThumbnailSequence:          splitList(fields[fieldThumbnailSequence]),
		Title:                      strings.TrimSpace(fields[fieldTitle]),
		Tags:                       splitList(fields[fieldTags]),
		Categories:                 splitList(fields[fieldCategories]),
		Performers:                 splitList(fields[fieldPerformers]),
		SecondaryThumbnail:         strings.TrimSpace(fields[fieldSecondaryThumbnail]),
		SecondaryThumbnailSequence: splitList(fields[fieldSecondarySequence]),
	}

	duration := parseNumeric(fields[fieldDuration], &warnings)
	if duration > int64(int(^uint(0)>>1)) {
		duration = 0
		warnings++
	}
	v.DurationSeconds = int(duration)
	v.Views = parseNumeric(fields[fieldViews], &warnings)
	v.Likes = parseNumeric(fields[fieldLikes], &warnings)
	v.Dislikes = parseNumeric(fields[fieldDislikes], &warnings)

	v.Source = deriveSource(v.Embed)
	if len(fields) > fieldUploadedDate {
		v.UploadedDate = parseUploadedDate(fields[fieldUploadedDate])
	}
	v.IsHD, v.IsVR = deriveFlags(v.Tags, v.Categories)
	v.Rating = deriveRating(v.Likes, v.Dislikes)

	return v, warnings, true
}

// splitList splits a comma-delimited sub-list, trimming whitespace and
// dropping empties. An empty field yields an empty (non-nil) slice so the
// API serializes [] rather than null.
func splitList(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return []string{}
	}
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseNumeric parses a non-negative integer field. Malformed or negative
// values fall back to 0 and bump the warning count; an empty field is a
// plain 0 without a warning (absent, not malformed).
func parseNumeric(field string, warnings *int) int64 {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil || n < 0 {
		*warnings++
		return 0
	}
	return n
}

// parseUploadedDate parses the optional trailing date column. Unparseable
// values yield an absent date, not a warning; the column is best-effort.
func parseUploadedDate(field string) *time.Time {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	t, err := time.Parse(uploadedDateLayout, field)
	if err != nil {
		return nil
	}
	return &t
}

// deriveSource recovers the origin site from the embed markup: the host of
// the first http(s) URL, lowercased, "www." stripped, port dropped. Returns
// "" when the embed carries no recognizable URL.
func deriveSource(embed string) string {
	lower := strings.ToLower(embed)

	at, schemeLen := -1, 0
	for _, scheme := range []string{"https://", "http://"} {
		if i := strings.Index(lower, scheme); i >= 0 && (at < 0 || i < at) {
			at, schemeLen = i, len(scheme)
		}
	}
	if at < 0 {
		return ""
	}

	host := lower[at+schemeLen:]
	if i := strings.IndexAny(host, "/?#\"'<> \t"); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	return host
}

// deriveFlags computes the HD/VR heuristics from tags and categories by
// whole-value case-insensitive equality. These are best-effort: a title
// that merely mentions "4K" does not set HD, and false negatives are
// acceptable.
func deriveFlags(tags, categories []string) (isHD, isVR bool) {
	check := func(value string) {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "hd", "1080p", "4k":
			isHD = true
		case "vr", "virtual reality":
			isVR = true
		}
	}
	for _, t := range tags {
		check(t)
	}
	for _, c := range categories {
		check(c)
	}
	return isHD, isVR
}

// deriveRating computes likes/(likes+dislikes)*100, or absent when the
// record has no reactions. A zero-reaction record must not be conflated
// with a 0%-rated one.
func deriveRating(likes, dislikes int64) *float64 {
	total := likes + dislikes
	if total <= 0 {
		return nil
	}
	r := float64(likes) / float64(total) * 100.0
	return &r
}
