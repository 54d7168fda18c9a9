// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/assetwatch/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateVar_CustomRules(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tag   string
		ok    bool
	}{
		{"iso8601 full", "2024-01-15T10:30:00Z", "iso8601", true},
		{"iso8601 datetime-local", "2024-01-15T10:30", "iso8601", true},
		{"iso8601 garbage", "next tuesday", "iso8601", false},
		{"iso8601 empty allowed with omitempty", "", "omitempty,iso8601", true},
		{"assettype known", "AIRCRAFT", "assettype", true},
		{"assettype unknown", "BOAT", "assettype", false},
		{"regionid numeric", "42", "regionid", true},
		{"regionid zero", "0", "regionid", false},
		{"regionid text", "harbor", "regionid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVar("field", tt.value, tt.tag)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateVar(%q, %q) = %v, want ok=%v", tt.value, tt.tag, err, tt.ok)
			}
		})
	}
}

func TestValidateVar_UsesFieldName(t *testing.T) {
	err := ValidateVar("start_time", "bogus", "iso8601")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Errors()[0].Field(); got != "start_time" {
		t.Errorf("Field() = %q", got)
	}
	if !strings.Contains(err.Error(), "start_time must be an ISO-8601") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidateStruct_NewPosition(t *testing.T) {
	valid := models.NewPosition{
		AssetID:   "V-100",
		AssetType: models.AssetVessel,
		Timestamp: "2024-01-15T10:30:00",
		Latitude:  40.7,
		Longitude: -74.0,
	}
	if err := ValidateStruct(&valid); err != nil {
		t.Fatalf("valid position rejected: %v", err)
	}

	invalid := valid
	invalid.AssetType = "BLIMP"
	invalid.Latitude = 120
	err := ValidateStruct(&invalid)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(err.Errors()), err)
	}
	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multiple errors should list fields")
	}
}

func TestToAPIError_Single(t *testing.T) {
	err := ValidateVar("region_id", "x", "regionid")
	apiErr := err.ToAPIError()
	if apiErr.Details["field"] != "region_id" {
		t.Errorf("details = %v", apiErr.Details)
	}
}
