// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package filter

import (
	"errors"
	"sync"
	"testing"

	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/query"
	"github.com/tomtom215/assetwatch/internal/validation"
)

func TestEdit_OnlyTouchesPending(t *testing.T) {
	s := NewState()

	if err := s.Edit("start_time", "2024-01-01T00:00"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if err := s.Edit("regionId", "5"); err != nil {
		t.Fatalf("Edit(regionId) error = %v", err)
	}

	if got := s.Pending(); got.StartTime != "2024-01-01T00:00" || got.RegionID != "5" {
		t.Errorf("pending = %+v", got)
	}
	if !s.Committed().IsEmpty() {
		t.Errorf("committed changed before apply: %+v", s.Committed())
	}
	if !s.Dirty() {
		t.Error("state should be dirty after edit")
	}
}

func TestEdit_Errors(t *testing.T) {
	s := NewState()

	if err := s.Edit("speed", "10"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field error = %v", err)
	}

	err := s.Edit("end_time", "not a time")
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s.Pending().EndTime != "" {
		t.Error("rejected edit must not change pending")
	}

	if err := s.Edit("asset_types", "VESSEL,BLIMP"); err == nil {
		t.Error("unknown asset type should be rejected")
	}
}

func TestEdit_EmptyValueClears(t *testing.T) {
	s := NewState()
	_ = s.Edit("region_id", "4")
	if err := s.Edit("region_id", ""); err != nil {
		t.Fatal(err)
	}
	if s.Pending().RegionID != "" {
		t.Error("empty value should clear field")
	}
}

func TestEdit_AssetTypesList(t *testing.T) {
	s := NewState()
	if err := s.Edit("asset_types", "aircraft, vessel, AIRCRAFT"); err != nil {
		t.Fatal(err)
	}
	got := s.Pending().AssetTypes
	want := []models.AssetType{models.AssetAircraft, models.AssetVessel}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("asset types = %v, want %v", got, want)
	}
}

func TestToggleAssetType(t *testing.T) {
	s := NewState()

	s.ToggleAssetType(models.AssetVessel)
	s.ToggleAssetType(models.AssetAircraft)
	got := s.ToggleAssetType(models.AssetVessel)
	if len(got.AssetTypes) != 1 || got.AssetTypes[0] != models.AssetAircraft {
		t.Fatalf("after removing VESSEL: %v", got.AssetTypes)
	}
	if got.HasAssetType(models.AssetVessel) || !got.HasAssetType(models.AssetAircraft) {
		t.Errorf("HasAssetType disagrees with %v", got.AssetTypes)
	}

	got = s.ToggleAssetType(models.AssetVessel)
	if got.AssetTypes[0] != models.AssetAircraft || got.AssetTypes[1] != models.AssetVessel {
		t.Errorf("re-added type should go last: %v", got.AssetTypes)
	}

	// Toggling twice restores the original set.
	before := s.Pending()
	s.ToggleAssetType(models.AssetVehicle)
	s.ToggleAssetType(models.AssetVehicle)
	if !s.Pending().Equal(before) {
		t.Errorf("double toggle changed selection: %v -> %v", before.AssetTypes, s.Pending().AssetTypes)
	}
}

func TestApply_CommitsCopyAndNotifies(t *testing.T) {
	s := NewState()
	var got []models.FilterCriteria
	s.OnCommit(func(action CommitAction, c models.FilterCriteria) {
		if action != ActionApply {
			t.Errorf("action = %s", action)
		}
		got = append(got, c)
	})

	s.ToggleAssetType(models.AssetVehicle)
	committed := s.Apply()

	if !committed.Equal(s.Pending()) {
		t.Errorf("committed %+v != pending %+v", committed, s.Pending())
	}
	if len(got) != 1 || !got[0].Equal(committed) {
		t.Fatalf("listener calls = %v", got)
	}

	// Later pending edits must not leak into committed.
	s.ToggleAssetType(models.AssetVessel)
	_ = s.Edit("start_time", "2024-05-01")
	c := s.Committed()
	if len(c.AssetTypes) != 1 || c.StartTime != "" {
		t.Errorf("committed changed after apply: %+v", c)
	}
	if s.Dirty() != true {
		t.Error("expected dirty after post-apply edits")
	}
}

func TestApply_InvertedRangeStillCommits(t *testing.T) {
	s := NewState()
	_ = s.Edit("start_time", "2024-02-01T00:00")
	_ = s.Edit("end_time", "2024-01-01T00:00")
	c := s.Apply()
	if c.StartTime == "" || c.EndTime == "" {
		t.Errorf("inverted range dropped: %+v", c)
	}
}

func TestClear(t *testing.T) {
	s := NewState()
	var actions []CommitAction
	s.OnCommit(func(action CommitAction, c models.FilterCriteria) {
		actions = append(actions, action)
		if action == ActionClear && !c.IsEmpty() {
			t.Errorf("clear delivered non-empty criteria %+v", c)
		}
	})

	_ = s.Edit("region_id", "3")
	s.ToggleAssetType(models.AssetAircraft)
	s.Apply()
	s.Clear()

	if !s.Pending().IsEmpty() || !s.Committed().IsEmpty() {
		t.Errorf("clear left state: pending=%+v committed=%+v", s.Pending(), s.Committed())
	}
	if len(actions) != 2 || actions[1] != ActionClear {
		t.Errorf("actions = %v", actions)
	}
}

func TestCommittedDrivesQuery(t *testing.T) {
	s := NewState()
	s.ToggleAssetType(models.AssetVessel)
	_ = s.Edit("region_id", "9")

	// Nothing applied yet: query must still be the empty one.
	if got := query.Build(s.Committed()).Encode(); got != "limit=100" {
		t.Errorf("query before apply = %q", got)
	}
	s.Apply()
	if got := query.Build(s.Committed()).Encode(); got != "asset_type=VESSEL&limit=100&region_id=9" {
		t.Errorf("query after apply = %q", got)
	}
}

func TestConcurrentEdits(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); s.ToggleAssetType(models.AssetVessel) }()
		go func() { defer wg.Done(); _ = s.Edit("region_id", "1") }()
		go func() { defer wg.Done(); s.Apply() }()
	}
	wg.Wait()
	_ = s.Committed()
}
