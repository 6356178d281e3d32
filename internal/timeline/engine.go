// Package timeline implements the editorial timeline engine: the track and
// clip model, the time-to-pixel mapper, layout, snapping, the playhead and
// end-marker controllers, and pointer routing.
//
// The engine is single-threaded. It is meant to be owned by one event loop
// which is its only caller; it does no locking. Tracks and clips must not be
// mutated from outside while a drag is in progress.
package timeline

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/timecode"
)

// DefaultEndPadding is the distance kept between the last clip end and the
// end marker.
const DefaultEndPadding = 1.0

// Engine is the timeline aggregate root plus its controllers.
type Engine struct {
	theme  theme.Theme
	labels timecode.Formatter
	log    *zap.Logger
	newID  func() string

	model    model
	playhead Playhead
	end      EndMarker
	hZoom    float64
	vZoom    float64
	selected string
	drag     Drag
	subs     []*Subscription
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTimeUnit sets the unit of time values and the frame rate used for
// labels.
func WithTimeUnit(u timecode.Unit, fps int) Option {
	return func(e *Engine) { e.labels = timecode.New(u, fps) }
}

// WithEndPadding sets the gap kept after the last clip. Negative values are
// treated as zero.
func WithEndPadding(p float64) Option {
	return func(e *Engine) {
		if finite(p) {
			e.end.padding = math.Max(p, 0)
		}
	}
}

// WithEmptyEnd sets the end-marker floor used when there are no clips.
func WithEmptyEnd(t float64) Option {
	return func(e *Engine) {
		if finite(t) {
			e.end.emptyEnd = math.Max(t, 0)
		}
	}
}

// WithZoom sets the initial zoom factors. Invalid values are ignored.
func WithZoom(h, v float64) Option {
	return func(e *Engine) {
		if validateZoom("", h, v) == nil {
			e.hZoom, e.vZoom = h, v
		}
	}
}

// WithIDGenerator replaces the UUID generator used for empty IDs.
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) {
		if f != nil {
			e.newID = f
		}
	}
}

// New creates an empty timeline using the resolved configuration th.
func New(th theme.Theme, opts ...Option) *Engine {
	e := &Engine{
		theme:  th,
		labels: timecode.New(timecode.Frames, timecode.DefaultFPS),
		log:    zap.NewNop(),
		newID:  uuid.NewString,
		hZoom:  1,
		vZoom:  1,
		end:    EndMarker{padding: DefaultEndPadding},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.end.time = e.end.floor(nil)
	return e
}

// Theme returns the configuration the engine was built with.
func (e *Engine) Theme() theme.Theme { return e.theme }

// Labels returns the time label formatter.
func (e *Engine) Labels() timecode.Formatter { return e.labels }

// Mapper returns a mapper for the current zoom.
func (e *Engine) Mapper() Mapper {
	return NewMapper(e.theme.Metrics, e.hZoom, e.vZoom)
}

// --- Tracks and clips ---

// AddTrack appends a track (with any clips it carries) at the bottom and
// returns its ID. Empty track or clip IDs are generated.
func (e *Engine) AddTrack(track TrackData) (string, error) {
	const op = "add track"
	track = track.clone()
	if track.ID == "" {
		track.ID = e.newID()
	} else if e.model.trackIndex(track.ID) >= 0 {
		return "", e.reject(invalid(op, "track id", fmt.Sprintf("%q already exists", track.ID)))
	}

	seen := make(map[string]bool, len(track.Clips))
	for i := range track.Clips {
		c := &track.Clips[i]
		if err := c.validate(op); err != nil {
			return "", e.reject(err)
		}
		if c.ID == "" {
			c.ID = e.newID()
		}
		if seen[c.ID] || e.clipExists(c.ID) {
			return "", e.reject(invalid(op, "clip id", fmt.Sprintf("%q already exists", c.ID)))
		}
		seen[c.ID] = true
	}

	e.model.tracks = append(e.model.tracks, track)
	e.log.Debug("track added",
		zap.String("track", track.ID),
		zap.String("name", track.Name),
		zap.Int("clips", len(track.Clips)))
	e.afterChange(DirtyAll)
	return track.ID, nil
}

// RemoveTrack deletes a track and its clips. The end marker does not shrink.
func (e *Engine) RemoveTrack(id string) error {
	i := e.model.trackIndex(id)
	if i < 0 {
		return e.reject(fmt.Errorf("remove track %q: %w", id, ErrTrackNotFound))
	}
	removed := e.model.tracks[i]
	if removed.clipIndex(e.selected) >= 0 {
		e.selected = ""
	}
	if e.drag.TrackID == id {
		e.drag = Drag{}
	}
	e.model.tracks = slices.Delete(e.model.tracks, i, i+1)
	e.log.Debug("track removed", zap.String("track", id))
	e.afterChange(DirtyAll)
	return nil
}

// ReorderTrack moves a track to index, shifting the others.
func (e *Engine) ReorderTrack(id string, index int) error {
	i := e.model.trackIndex(id)
	if i < 0 {
		return e.reject(fmt.Errorf("reorder track %q: %w", id, ErrTrackNotFound))
	}
	if index < 0 || index >= len(e.model.tracks) {
		return e.reject(invalid("reorder track", "index", fmt.Sprintf("%d outside [0, %d)", index, len(e.model.tracks))))
	}
	if i == index {
		return nil
	}
	t := e.model.tracks[i]
	e.model.tracks = slices.Delete(e.model.tracks, i, i+1)
	e.model.tracks = slices.Insert(e.model.tracks, index, t)
	e.log.Debug("track reordered", zap.String("track", id), zap.Int("from", i), zap.Int("to", index))
	e.afterChange(DirtyAll)
	return nil
}

// AddClip appends a clip to a track and returns its ID.
func (e *Engine) AddClip(trackID string, clip ClipData) (string, error) {
	const op = "add clip"
	ti := e.model.trackIndex(trackID)
	if ti < 0 {
		return "", e.reject(fmt.Errorf("%s to %q: %w", op, trackID, ErrTrackNotFound))
	}
	if err := clip.validate(op); err != nil {
		return "", e.reject(err)
	}
	if clip.ID == "" {
		clip.ID = e.newID()
	} else if e.clipExists(clip.ID) {
		return "", e.reject(invalid(op, "clip id", fmt.Sprintf("%q already exists", clip.ID)))
	}

	e.model.tracks[ti].Clips = append(e.model.tracks[ti].Clips, clip)
	e.log.Debug("clip added",
		zap.String("track", trackID),
		zap.String("clip", clip.ID),
		zap.Float64("start", clip.Start),
		zap.Float64("duration", clip.Duration))
	e.afterChange(DirtyAll)
	return clip.ID, nil
}

// RemoveClip deletes a clip from a track. The end marker does not shrink.
func (e *Engine) RemoveClip(trackID, clipID string) error {
	ti := e.model.trackIndex(trackID)
	if ti < 0 {
		return e.reject(fmt.Errorf("remove clip from %q: %w", trackID, ErrTrackNotFound))
	}
	ci := e.model.tracks[ti].clipIndex(clipID)
	if ci < 0 {
		return e.reject(fmt.Errorf("remove clip %q: %w", clipID, ErrClipNotFound))
	}
	if e.selected == clipID {
		e.selected = ""
	}
	if e.drag.ClipID == clipID {
		e.drag = Drag{}
	}
	e.model.tracks[ti].Clips = slices.Delete(e.model.tracks[ti].Clips, ci, ci+1)
	e.log.Debug("clip removed", zap.String("track", trackID), zap.String("clip", clipID))
	e.afterChange(DirtyAll)
	return nil
}

// MoveClip sets a clip's start, keeping its duration and track.
func (e *Engine) MoveClip(clipID string, start float64) error {
	const op = "move clip"
	ti, ci, ok := e.model.findClip(clipID)
	if !ok {
		return e.reject(fmt.Errorf("%s %q: %w", op, clipID, ErrClipNotFound))
	}
	moved := *e.model.clip(ti, ci)
	moved.Start = start
	if err := moved.validate(op); err != nil {
		return e.reject(err)
	}
	*e.model.clip(ti, ci) = moved
	e.log.Debug("clip moved", zap.String("clip", clipID), zap.Float64("start", start))
	e.afterChange(DirtyClip)
	return nil
}

// ResizeClip sets a clip's duration, keeping its start.
func (e *Engine) ResizeClip(clipID string, duration float64) error {
	const op = "resize clip"
	ti, ci, ok := e.model.findClip(clipID)
	if !ok {
		return e.reject(fmt.Errorf("%s %q: %w", op, clipID, ErrClipNotFound))
	}
	resized := *e.model.clip(ti, ci)
	resized.Duration = duration
	if err := resized.validate(op); err != nil {
		return e.reject(err)
	}
	*e.model.clip(ti, ci) = resized
	e.log.Debug("clip resized", zap.String("clip", clipID), zap.Float64("duration", duration))
	e.afterChange(DirtyClip)
	return nil
}

// MoveClipToTrack reassigns a clip to another track, appending it there and
// keeping its times. This is the only way a clip changes track.
func (e *Engine) MoveClipToTrack(clipID, trackID string) error {
	const op = "move clip to track"
	to := e.model.trackIndex(trackID)
	if to < 0 {
		return e.reject(fmt.Errorf("%s %q: %w", op, trackID, ErrTrackNotFound))
	}
	from, ci, ok := e.model.findClip(clipID)
	if !ok {
		return e.reject(fmt.Errorf("%s %q: %w", op, clipID, ErrClipNotFound))
	}
	if from == to {
		return nil
	}
	if e.drag.ClipID == clipID {
		e.drag = Drag{}
	}
	c := *e.model.clip(from, ci)
	e.model.tracks[from].Clips = slices.Delete(e.model.tracks[from].Clips, ci, ci+1)
	e.model.tracks[to].Clips = append(e.model.tracks[to].Clips, c)
	e.log.Debug("clip reassigned", zap.String("clip", clipID), zap.String("track", trackID))
	e.afterChange(DirtyAll)
	return nil
}

// Tracks returns a deep copy of all tracks in display order.
func (e *Engine) Tracks() []TrackData {
	return e.model.snapshot()
}

// Track returns a copy of the track with the given ID.
func (e *Engine) Track(id string) (TrackData, bool) {
	i := e.model.trackIndex(id)
	if i < 0 {
		return TrackData{}, false
	}
	return e.model.tracks[i].clone(), true
}

// Clip returns a copy of a clip and the ID of its track.
func (e *Engine) Clip(id string) (ClipData, string, bool) {
	ti, ci, ok := e.model.findClip(id)
	if !ok {
		return ClipData{}, "", false
	}
	return *e.model.clip(ti, ci), e.model.tracks[ti].ID, true
}

// TrackCount returns the number of tracks.
func (e *Engine) TrackCount() int { return len(e.model.tracks) }

// ClipCount returns the number of clips across all tracks.
func (e *Engine) ClipCount() int { return e.model.clipCount() }

// Selected returns the selected clip ID, or "".
func (e *Engine) Selected() string { return e.selected }

// Select selects a clip by ID. "" clears the selection.
func (e *Engine) Select(id string) error {
	if id != "" && !e.clipExists(id) {
		return fmt.Errorf("select %q: %w", id, ErrClipNotFound)
	}
	e.emitLayout(e.selectClip(id))
	return nil
}

// SelectAdjacent moves the selection dir clips along the track-then-start
// order, wrapping around. With nothing selected it starts from the first
// (dir > 0) or last clip.
func (e *Engine) SelectAdjacent(dir int) {
	var ids []string
	for _, t := range e.model.tracks {
		clips := slices.Clone(t.Clips)
		slices.SortStableFunc(clips, func(a, b ClipData) int {
			return cmp.Compare(a.Start, b.Start)
		})
		for _, c := range clips {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 || dir == 0 {
		return
	}
	i := slices.Index(ids, e.selected)
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = len(ids) - 1
	default:
		i = ((i+dir)%len(ids) + len(ids)) % len(ids)
	}
	e.emitLayout(e.selectClip(ids[i]))
}

func (e *Engine) clipExists(id string) bool {
	_, _, ok := e.model.findClip(id)
	return ok
}

// --- Zoom ---

// Zoom returns the horizontal and vertical zoom factors.
func (e *Engine) Zoom() (h, v float64) {
	return e.hZoom, e.vZoom
}

// SetZoom changes the zoom factors. A zero argument keeps the current value.
func (e *Engine) SetZoom(h, v float64) error {
	if h == 0 {
		h = e.hZoom
	}
	if v == 0 {
		v = e.vZoom
	}
	if err := validateZoom("set zoom", h, v); err != nil {
		return e.reject(err)
	}
	if h == e.hZoom && v == e.vZoom {
		return nil
	}
	e.hZoom, e.vZoom = h, v
	e.emitLayout(DirtyAll)
	return nil
}

// SetZoomFromSlider applies a zoom slider value in [SliderMin, SliderMax].
func (e *Engine) SetZoomFromSlider(axis Axis, value float64) error {
	z := SliderToZoom(axis, value)
	if axis == AxisVertical {
		return e.SetZoom(0, z)
	}
	return e.SetZoom(z, 0)
}

// --- Playhead and end marker ---

// CurrentTime returns the playhead time.
func (e *Engine) CurrentTime() float64 { return e.playhead.Time() }

// EndMarkerTime returns the end-of-timeline time.
func (e *Engine) EndMarkerTime() float64 { return e.end.Time() }

// EndFloor returns the minimum end-marker time for the current clips.
func (e *Engine) EndFloor() float64 { return e.end.floor(e.model.tracks) }

// Seek moves the playhead, clamping to the end marker. Negative or
// non-finite times are rejected.
func (e *Engine) Seek(t float64) error {
	if !finite(t) || t < 0 {
		return e.reject(&OutOfRangeError{Op: "seek", Value: t})
	}
	e.emitLayout(e.setPlayhead(t))
	return nil
}

// Step moves the playhead by delta, clamping like a drag.
func (e *Engine) Step(delta float64) {
	if !finite(delta) {
		return
	}
	e.emitLayout(e.setPlayhead(e.playhead.Time() + delta))
}

// SetEndMarker moves the end marker, stopping at the floor. Negative or
// non-finite times are rejected.
func (e *Engine) SetEndMarker(t float64) error {
	if !finite(t) || t < 0 {
		return e.reject(&OutOfRangeError{Op: "set end marker", Value: t})
	}
	e.emitLayout(e.dragEnd(t))
	return nil
}

func (e *Engine) setPlayhead(t float64) Dirty {
	if !e.playhead.set(t, e.end.Time()) {
		return DirtyNone
	}
	for _, s := range e.subs {
		s.sendTime(TimeChanged{Time: e.playhead.Time()})
	}
	return DirtyPlayhead
}

// dragEnd moves the end marker within its floor and pulls the playhead back
// if the marker passed it.
func (e *Engine) dragEnd(t float64) Dirty {
	floor := e.end.floor(e.model.tracks)
	if !e.end.drag(t, floor) {
		return DirtyNone
	}
	e.emitEnd(floor)
	return DirtyEndMarker | e.setPlayhead(e.playhead.Time())
}

// advanceEnd raises the end marker to the floor if clips now pass it.
func (e *Engine) advanceEnd() Dirty {
	floor := e.end.floor(e.model.tracks)
	if !e.end.advance(floor) {
		return DirtyNone
	}
	e.log.Debug("end marker advanced", zap.Float64("end", e.end.Time()))
	e.emitEnd(floor)
	return DirtyEndMarker
}

func (e *Engine) afterChange(d Dirty) {
	e.emitLayout(d | e.advanceEnd())
}

// --- Layout ---

// Layout computes the full scene geometry for the current state.
func (e *Engine) Layout() (Geometry, error) {
	return ComputeLayout(Snapshot{
		Tracks:   e.model.tracks,
		Playhead: e.playhead.Time(),
		End:      e.end.Time(),
		HZoom:    e.hZoom,
		VZoom:    e.vZoom,
		Selected: e.selected,
	}, e.layoutOptions())
}

// LayoutClip computes the geometry of one clip, for renderers that only
// refresh the clip being dragged.
func (e *Engine) LayoutClip(clipID string) (ClipBox, error) {
	const op = "layout clip"
	ti, ci, ok := e.model.findClip(clipID)
	if !ok {
		return ClipBox{}, fmt.Errorf("%s %q: %w", op, clipID, ErrClipNotFound)
	}
	if err := validateZoom(op, e.hZoom, e.vZoom); err != nil {
		return ClipBox{}, err
	}
	c := *e.model.clip(ti, ci)
	if err := c.validate(op); err != nil {
		return ClipBox{}, err
	}
	return clipBox(e.Mapper(), e.labels, e.model.tracks[ti].ID, c, ti, ci, e.selected), nil
}

// HitTest resolves a content-space point against the current layout.
func (e *Engine) HitTest(x, y float64) Target {
	g, err := e.Layout()
	if err != nil {
		return Target{}
	}
	return HitTest(g, x, y, e.theme.Metrics.HandleTolerance)
}

func (e *Engine) layoutOptions() LayoutOptions {
	return LayoutOptions{Metrics: e.theme.Metrics, Labels: e.labels}
}

// --- Notifications ---

// Subscribe registers a new subscriber.
func (e *Engine) Subscribe() *Subscription {
	s := newSubscription()
	e.subs = append(e.subs, s)
	return s
}

// Unsubscribe removes a subscriber and closes its Done channel.
func (e *Engine) Unsubscribe(s *Subscription) {
	if i := slices.Index(e.subs, s); i >= 0 {
		e.subs = slices.Delete(e.subs, i, i+1)
		s.close()
	}
}

// Close unsubscribes everyone.
func (e *Engine) Close() {
	for _, s := range e.subs {
		s.close()
	}
	e.subs = nil
}

func (e *Engine) emitEnd(floor float64) {
	for _, s := range e.subs {
		s.sendEnd(EndChanged{Time: e.end.Time(), Floor: floor})
	}
}

func (e *Engine) emitLayout(d Dirty) {
	if d == DirtyNone {
		return
	}
	for _, s := range e.subs {
		s.sendLayout(LayoutChanged{Dirty: d})
	}
}

func (e *Engine) reject(err error) error {
	e.log.Warn("timeline operation rejected", zap.Error(err))
	return err
}
