package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// Session errors.
var (
	ErrNoFileLoaded  = errors.New("no file loaded")
	ErrEmptyDocument = errors.New("loaded file is empty")
)

// State is the lifecycle state of an editing session.
type State int

// Session states. Applied falls back to Loaded as soon as a channel is edited.
const (
	StateNoFile State = iota
	StateLoaded
	StateApplied
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNoFile:
		return "no_file"
	case StateLoaded:
		return "loaded"
	case StateApplied:
		return "applied"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session binds one particle file to the channel sliders.
type Session struct {
	log      *zap.Logger
	channels *Channels

	state       State
	path        string
	doc         string
	values      sfx.Values
	occurrences []sfx.Occurrence
	pending     bool
}

// NewSession creates a session with no file loaded. A nil logger disables
// logging.
func NewSession(initial sfx.Color, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:      log,
		channels: NewChannels(initial),
		values:   sfx.Values{},
	}
	s.channels.Subscribe(s.onChannelChange)
	return s
}

// Channels returns the slider state.
func (s *Session) Channels() *Channels { return s.channels }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Path returns the loaded file path, or "" before the first load.
func (s *Session) Path() string { return s.path }

// Name returns the base name of the loaded file.
func (s *Session) Name() string {
	if s.path == "" {
		return ""
	}
	return filepath.Base(s.path)
}

// Document returns the in-memory document text.
func (s *Session) Document() string { return s.doc }

// Values returns the values extracted from the current document.
func (s *Session) Values() sfx.Values { return s.values }

// Occurrences returns every field occurrence in the current document.
func (s *Session) Occurrences() []sfx.Occurrence { return s.occurrences }

// PendingChanges reports whether applying now would change any field value.
// Pure reformatting (0.7 to 0.700000) does not count.
func (s *Session) PendingChanges() bool { return s.pending }

// Load reads path and extracts its values. The sliders take the Start_*
// values; channels without one keep their current value. On error the
// session is left unchanged.
func (s *Session) Load(path string) error {
	doc, err := sfx.LoadFile(path)
	if err != nil {
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load particle file: %w", err)
	}

	s.path = path
	s.doc = doc
	s.refresh()
	s.state = StateLoaded

	s.log.Info("file loaded",
		zap.String("path", path),
		zap.Int("bytes", len(doc)),
		zap.Int("fields", len(s.values)),
		zap.Int("occurrences", len(s.occurrences)))
	return nil
}

// Apply writes the slider values into every field occurrence and saves the
// document over the loaded file. If the save fails the in-memory document
// keeps its previous contents, which may no longer match the file on disk.
func (s *Session) Apply() error {
	if s.state == StateNoFile || s.path == "" {
		return ErrNoFileLoaded
	}
	if s.doc == "" {
		return ErrEmptyDocument
	}

	color := s.channels.Color()
	updated := sfx.Write(s.doc, color)
	if err := sfx.SaveFile(s.path, updated); err != nil {
		s.log.Error("save failed", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("apply changes: %w", err)
	}

	s.doc = updated
	s.refresh()
	s.state = StateApplied

	s.log.Info("changes applied",
		zap.String("path", s.path),
		zap.String("red", sfx.FormatValue(color[sfx.Red])),
		zap.String("green", sfx.FormatValue(color[sfx.Green])),
		zap.String("blue", sfx.FormatValue(color[sfx.Blue])),
		zap.String("alpha", sfx.FormatValue(color[sfx.Alpha])))
	return nil
}

// refresh re-extracts values from the document and syncs the sliders.
func (s *Session) refresh() {
	s.values = sfx.Extract(s.doc)
	s.occurrences = sfx.Find(s.doc)
	s.channels.SetColor(s.values.StartColor(s.channels.Color()))
	s.updatePending()
}

func (s *Session) onChannelChange(ch sfx.Channel, v float64) {
	if s.state == StateApplied {
		s.state = StateLoaded
	}
	s.updatePending()
	s.log.Debug("channel changed", zap.Stringer("channel", ch), zap.Float64("value", v))
}

func (s *Session) updatePending() {
	color := s.channels.Color()
	s.pending = false
	for _, o := range s.occurrences {
		if sfx.FormatValue(o.Value) != sfx.FormatValue(color[o.Key.Channel]) {
			s.pending = true
			return
		}
	}
}
