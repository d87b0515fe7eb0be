// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	// Test that GetValidator returns the same instance
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// queryParamsStruct mirrors the shape of the videos query request.
type queryParamsStruct struct {
	Search    string `validate:"omitempty,max=256"`
	Category  string `validate:"omitempty,max=128"`
	Performer string `validate:"omitempty,max=128"`
	SortBy    string `validate:"omitempty,oneof=views date duration rating title"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Page      int    `validate:"min=0,max=1000000"`
	Limit     int    `validate:"min=0,max=1000"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input queryParamsStruct
	}{
		{
			name: "all fields set",
			input: queryParamsStruct{
				Search:    "sunset",
				Category:  "Documentary",
				Performer: "Jane Doe",
				SortBy:    "views",
				SortOrder: "desc",
				Page:      3,
				Limit:     20,
			},
		},
		{
			name:  "zero value",
			input: queryParamsStruct{},
		},
		{
			name: "boundary values",
			input: queryParamsStruct{
				Search: strings.Repeat("a", 256),
				Page:   1000000,
				Limit:  1000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     queryParamsStruct
		wantField string
		wantTag   string
	}{
		{
			name:      "search too long",
			input:     queryParamsStruct{Search: strings.Repeat("a", 257)},
			wantField: "Search",
			wantTag:   "max",
		},
		{
			name:      "category too long",
			input:     queryParamsStruct{Category: strings.Repeat("x", 129)},
			wantField: "Category",
			wantTag:   "max",
		},
		{
			name:      "unknown sort key",
			input:     queryParamsStruct{SortBy: "popularity"},
			wantField: "SortBy",
			wantTag:   "oneof",
		},
		{
			name:      "unknown sort order",
			input:     queryParamsStruct{SortOrder: "descending"},
			wantField: "SortOrder",
			wantTag:   "oneof",
		},
		{
			name:      "negative page",
			input:     queryParamsStruct{Page: -1},
			wantField: "Page",
			wantTag:   "min",
		},
		{
			name:      "limit too high",
			input:     queryParamsStruct{Limit: 2000},
			wantField: "Limit",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) == 0 {
				t.Fatal("ValidationErrors should contain at least one error")
			}

			found := false
			for _, e := range errs {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, errs)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	input := queryParamsStruct{SortBy: "popularity"}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	if apiErr.Message == "" {
		t.Error("Expected non-empty message")
	}

	// Should contain field name in details
	if apiErr.Details == nil {
		t.Error("Expected details to be set")
	}

	if field, ok := apiErr.Details["field"]; !ok || field != "SortBy" {
		t.Errorf("Expected details.field = SortBy, got %v", field)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	input := queryParamsStruct{
		Search:    strings.Repeat("a", 300),
		SortBy:    "popularity",
		SortOrder: "sideways",
		Page:      -1,
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	// Details should contain field information
	if apiErr.Details == nil {
		t.Error("Expected details to contain field information")
	}

	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Expected details to contain 'fields' key")
	}
}

// ===================================================================================================
// Oneof Validation Tests
// ===================================================================================================

type sortKeyStruct struct {
	SortBy string `validate:"omitempty,oneof=views date duration rating title"`
}

func TestOneofValidation_Valid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"views", "views"},
		{"date", "date"},
		{"duration", "duration"},
		{"rating", "rating"},
		{"title", "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sortKeyStruct{SortBy: tt.key}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for key %q: %v", tt.key, err)
			}
		})
	}
}

func TestOneofValidation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"unknown key", "popularity"},
		{"partial match", "viewsx"},
		{"case sensitive", "Views"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sortKeyStruct{SortBy: tt.key}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for key %q", tt.key)
			}
		})
	}
}

// ===================================================================================================
// WithRequiredStructEnabled Tests
// ===================================================================================================

type NestedStruct struct {
	Inner InnerStruct `validate:"required"`
}

type InnerStruct struct {
	Value string `validate:"required"`
}

func TestNestedStructValidation(t *testing.T) {
	// Valid nested struct
	valid := NestedStruct{
		Inner: InnerStruct{Value: "test"},
	}

	err := ValidateStruct(&valid)
	if err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}

	// Invalid - missing inner value
	invalid := NestedStruct{
		Inner: InnerStruct{Value: ""},
	}

	err = ValidateStruct(&invalid)
	if err == nil {
		t.Error("ValidateStruct() should have returned error for invalid nested struct")
	}
}

// ===================================================================================================
// Integer Range Validation Tests
// ===================================================================================================

type rangeStruct struct {
	MinDuration int64 `validate:"omitempty,gte=0"`
	TopN        int   `validate:"min=0,max=100"`
}

func TestRangeValidation_Valid(t *testing.T) {
	tests := []struct {
		name        string
		minDuration int64
		topN        int
	}{
		{"zero values", 0, 0},
		{"typical values", 300, 25},
		{"max topN", 600, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rangeStruct{MinDuration: tt.minDuration, TopN: tt.topN}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestRangeValidation_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		minDuration int64
		topN        int
		wantField   string
	}{
		{"negative duration when set", -1, 25, "MinDuration"},
		{"topN too high", 300, 101, "TopN"},
		{"topN negative", 300, -1, "TopN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rangeStruct{MinDuration: tt.minDuration, TopN: tt.topN}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for minDuration=%d, topN=%d", tt.minDuration, tt.topN)
			}
		})
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	input := queryParamsStruct{
		Search: strings.Repeat("a", 300),
		SortBy: "popularity",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	// Error message should be human-readable
	msg := err.Error()
	if msg == "" {
		t.Error("Error message should not be empty")
	}

	// Should contain field name
	if !strings.Contains(msg, "Search") && !strings.Contains(msg, "SortBy") {
		t.Errorf("Error message should reference failed field: %s", msg)
	}
}

func TestErrorMessageTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input queryParamsStruct
		want  string
	}{
		{
			name:  "string max message counts characters",
			input: queryParamsStruct{Search: strings.Repeat("a", 257)},
			want:  "Search must be at most 256 characters",
		},
		{
			name:  "oneof message lists options",
			input: queryParamsStruct{SortOrder: "sideways"},
			want:  "SortOrder must be one of: asc desc",
		},
		{
			name:  "numeric min message",
			input: queryParamsStruct{Page: -5},
			want:  "Page must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
