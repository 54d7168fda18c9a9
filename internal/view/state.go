// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package view

import (
	"sync"
	"time"

	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/models"
)

// Dataset names one independently refreshed collection.
type Dataset string

const (
	Positions Dataset = "positions"
	Regions   Dataset = "regions"
	Crossings Dataset = "crossings"
	Track     Dataset = "track"
)

// Datasets lists every dataset in display order.
var Datasets = []Dataset{Positions, Regions, Crossings, Track}

// Ticket identifies one dispatched fetch. Seq increases per dataset.
type Ticket struct {
	Dataset Dataset
	Seq     uint64
}

// State holds the synchronized datasets and the current selection.
// Every Apply* and Fail call is one critical section, so readers never see
// a partially applied result.
type State struct {
	mu      sync.RWMutex
	ordered bool

	positions []models.Position
	regions   []models.Region
	crossings []models.Crossing
	track     *models.Track

	selectedPosition *models.Position
	selectedAssetID  string

	status     map[Dataset]*Status
	dispatched map[Dataset]uint64
}

// New creates an empty State. With ordered set, a result is discarded when
// a newer fetch for the same dataset has already been dispatched; otherwise
// whichever result arrives last wins.
func New(ordered bool) *State {
	s := &State{
		ordered:    ordered,
		positions:  []models.Position{},
		regions:    []models.Region{},
		crossings:  []models.Crossing{},
		status:     make(map[Dataset]*Status, len(Datasets)),
		dispatched: make(map[Dataset]uint64, len(Datasets)),
	}
	for _, d := range Datasets {
		s.status[d] = &Status{}
	}
	return s
}

// Ordered reports whether stale results are discarded.
func (s *State) Ordered() bool {
	return s.ordered
}

// Begin records that a fetch for d was dispatched and returns its ticket.
func (s *State) Begin(d Dataset) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched[d]++
	s.status[d].InFlight++
	return Ticket{Dataset: d, Seq: s.dispatched[d]}
}

// settle must be called with mu held. It closes out t and reports whether
// its result may be applied.
func (s *State) settle(t Ticket) bool {
	st := s.status[t.Dataset]
	if st.InFlight > 0 {
		st.InFlight--
	}
	if s.ordered && t.Seq < s.dispatched[t.Dataset] {
		metrics.RecordStaleResponse(string(t.Dataset))
		return false
	}
	return true
}

// succeed must be called with mu held.
func (s *State) succeed(d Dataset, count int) {
	st := s.status[d]
	st.Loaded = true
	st.LastError = ""
	st.FailedAt = time.Time{}
	st.UpdatedAt = time.Now()
	st.Count = count
	metrics.RecordDatasetApplied(string(d), count)
}

// ApplyPositions wholly replaces the positions. It returns false when the
// result was discarded as stale.
func (s *State) ApplyPositions(t Ticket, positions []models.Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(t) {
		return false
	}
	s.positions = nonNil(positions)
	s.succeed(Positions, len(s.positions))
	return true
}

// ApplyRegions wholly replaces the regions.
func (s *State) ApplyRegions(t Ticket, regions []models.Region) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(t) {
		return false
	}
	s.regions = nonNil(regions)
	s.succeed(Regions, len(s.regions))
	return true
}

// ApplyCrossings wholly replaces the crossings.
func (s *State) ApplyCrossings(t Ticket, crossings []models.Crossing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(t) {
		return false
	}
	s.crossings = nonNil(crossings)
	s.succeed(Crossings, len(s.crossings))
	return true
}

// ApplyTrack replaces the selected track.
func (s *State) ApplyTrack(t Ticket, track *models.Track) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(t) {
		return false
	}
	s.track = track
	count := 0
	if track != nil {
		count = len(track.Path)
	}
	s.succeed(Track, count)
	return true
}

// Fail records a failed fetch. The dataset keeps its previous data.
func (s *State) Fail(t Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(t) {
		return false
	}
	st := s.status[t.Dataset]
	st.LastError = err.Error()
	st.FailedAt = time.Now()
	return true
}

// SelectAsset records the asset whose track should be shown.
func (s *State) SelectAsset(assetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedAssetID = assetID
}

// SelectPosition selects the position with id from the current positions.
// It returns false, leaving the selection unchanged, when id is not present.
func (s *State) SelectPosition(id int64) (models.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.positions {
		if s.positions[i].ID == id {
			p := s.positions[i]
			s.selectedPosition = &p
			return p, true
		}
	}
	return models.Position{}, false
}

// Status returns the status of one dataset.
func (s *State) Status(d Dataset) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.status[d]; ok {
		return *st
	}
	return Status{}
}

// Snapshot returns a consistent copy of the whole view state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Positions:       append([]models.Position(nil), s.positions...),
		Regions:         append([]models.Region(nil), s.regions...),
		Crossings:       append([]models.Crossing(nil), s.crossings...),
		SelectedAssetID: s.selectedAssetID,
		Status:          make(map[Dataset]Status, len(s.status)),
	}
	if snap.Positions == nil {
		snap.Positions = []models.Position{}
	}
	if snap.Regions == nil {
		snap.Regions = []models.Region{}
	}
	if snap.Crossings == nil {
		snap.Crossings = []models.Crossing{}
	}
	if s.track != nil {
		tr := *s.track
		snap.SelectedTrack = &tr
	}
	if s.selectedPosition != nil {
		p := *s.selectedPosition
		snap.SelectedPosition = &p
	}
	for d, st := range s.status {
		snap.Status[d] = *st
	}
	return snap
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
