// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

// Package filter holds the user's pending and committed filter criteria.
//
// Edits only touch the pending criteria. Apply copies pending into
// committed, and only committed criteria ever reach a query. Listeners
// registered with OnCommit run after every Apply and Clear.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tomtom215/assetwatch/internal/logging"
	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/validation"
)

// Editable field names.
const (
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldRegionID   = "region_id"
	FieldAssetTypes = "asset_types"
)

// ErrUnknownField is returned by Edit for a field name it does not know.
var ErrUnknownField = errors.New("unknown filter field")

// fieldAliases accepts the form control names used by the browser page.
var fieldAliases = map[string]string{
	"starttime":  FieldStartTime,
	"endtime":    FieldEndTime,
	"regionid":   FieldRegionID,
	"assettypes": FieldAssetTypes,
}

// fieldRules are validator tags applied to a non-empty edit value.
var fieldRules = map[string]string{
	FieldStartTime: "iso8601",
	FieldEndTime:   "iso8601",
	FieldRegionID:  "regionid",
}

// CommitAction tells listeners why the committed criteria changed.
type CommitAction string

const (
	ActionApply CommitAction = "apply"
	ActionClear CommitAction = "clear"
)

// CommitListener receives a copy of the newly committed criteria.
type CommitListener func(action CommitAction, committed models.FilterCriteria)

// State is safe for concurrent use.
type State struct {
	mu        sync.Mutex
	pending   models.FilterCriteria
	committed models.FilterCriteria
	listeners []CommitListener
}

// NewState returns a State with empty pending and committed criteria.
func NewState() *State {
	return &State{
		pending:   models.FilterCriteria{AssetTypes: []models.AssetType{}},
		committed: models.FilterCriteria{AssetTypes: []models.AssetType{}},
	}
}

// OnCommit registers l to run after every Apply and Clear. Listeners run
// outside the state lock, in registration order.
func (s *State) OnCommit(l CommitListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Pending returns a copy of the pending criteria.
func (s *State) Pending() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Clone()
}

// Committed returns a copy of the committed criteria.
func (s *State) Committed() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed.Clone()
}

// Edit sets one pending field from a form value. An empty value clears the
// field. asset_types takes a comma-separated list and replaces the whole
// selection in the given order.
func (s *State) Edit(field, value string) error {
	name := normalizeField(field)
	value = strings.TrimSpace(value)

	switch name {
	case FieldStartTime, FieldEndTime, FieldRegionID:
		if value != "" {
			if verr := validation.ValidateVar(name, value, fieldRules[name]); verr != nil {
				return verr
			}
		}
	case FieldAssetTypes:
		types, err := parseAssetTypes(value)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.pending.AssetTypes = types
		s.mu.Unlock()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case FieldStartTime:
		s.pending.StartTime = value
	case FieldEndTime:
		s.pending.EndTime = value
	case FieldRegionID:
		s.pending.RegionID = value
	}
	return nil
}

// ToggleAssetType adds t to the pending selection if absent, or removes it
// if present. A re-added type goes to the end of the selection.
func (s *State) ToggleAssetType(t models.AssetType) models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.AssetType, 0, len(s.pending.AssetTypes)+1)
	for _, existing := range s.pending.AssetTypes {
		if existing != t {
			kept = append(kept, existing)
		}
	}
	if !s.pending.HasAssetType(t) {
		kept = append(kept, t)
	}
	s.pending.AssetTypes = kept
	return s.pending.Clone()
}

// Apply commits a copy of the pending criteria and notifies listeners.
// An inverted time range is committed as is and logged.
func (s *State) Apply() models.FilterCriteria {
	s.mu.Lock()
	s.committed = s.pending.Clone()
	committed := s.committed.Clone()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if committed.TimeRangeInverted() {
		logging.Warn().
			Str("start_time", committed.StartTime).
			Str("end_time", committed.EndTime).
			Msg("Applied filter has start_time after end_time")
	}

	metrics.RecordFilterCommit(string(ActionApply))
	notify(listeners, ActionApply, committed)
	return committed
}

// Clear resets both pending and committed criteria and notifies listeners.
func (s *State) Clear() models.FilterCriteria {
	s.mu.Lock()
	s.pending = models.FilterCriteria{AssetTypes: []models.AssetType{}}
	s.committed = models.FilterCriteria{AssetTypes: []models.AssetType{}}
	committed := s.committed.Clone()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	metrics.RecordFilterCommit(string(ActionClear))
	notify(listeners, ActionClear, committed)
	return committed
}

// Dirty reports whether pending differs from committed.
func (s *State) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.pending.Equal(s.committed)
}

func (s *State) snapshotListeners() []CommitListener {
	out := make([]CommitListener, len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []CommitListener, action CommitAction, committed models.FilterCriteria) {
	for _, l := range listeners {
		l(action, committed.Clone())
	}
}

func normalizeField(field string) string {
	f := strings.ToLower(strings.TrimSpace(field))
	if alias, ok := fieldAliases[f]; ok {
		return alias
	}
	return f
}

// parseAssetTypes splits a comma list, rejects unknown types and drops
// duplicates while keeping first-seen order.
func parseAssetTypes(value string) ([]models.AssetType, error) {
	types := []models.AssetType{}
	if value == "" {
		return types, nil
	}
	seen := make(map[models.AssetType]bool)
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, ok := models.ParseAssetType(part)
		if !ok {
			if verr := validation.ValidateVar(FieldAssetTypes, string(t), "assettype"); verr != nil {
				return nil, verr
			}
			return nil, fmt.Errorf("invalid asset type %q", t)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}
