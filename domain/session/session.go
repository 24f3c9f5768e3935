package session

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/soocke/bbox-labeler/config"
	"github.com/soocke/bbox-labeler/domain/annotation"
	"github.com/soocke/bbox-labeler/domain/dataset"
)

// ErrDecode is returned (wrapped) when the next image cannot be decoded.
var ErrDecode = errors.New("image decode failed")

// Session is the in-memory state of one running labeler window: folders, the image
// cursor, the current class and the boxes drawn on the current image.
// It is not safe for concurrent use; every call happens on the UI thread.
type Session struct {
	logger  *slog.Logger
	decoder dataset.Decoder
	exts    []string
	policy  annotation.Policy
	classes *annotation.ClassTable

	imageDir  string
	outputDir string
	images    []string
	index     int // -1 before the first image, never decreases

	current     image.Image
	currentName string
	class       annotation.ClassID
	boxes       []annotation.Box
	dirty       bool
}

// Options configures a Session.
type Options struct {
	Extensions []string
	Policy     annotation.Policy
	Classes    *annotation.ClassTable
	Decoder    dataset.Decoder
	Logger     *slog.Logger
}

// OptionsFromConfig derives session options from cfg.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		Extensions: cfg.Extensions,
		Policy:     annotation.ParsePolicy(cfg.BoxPolicy),
		Classes:    annotation.NewClassTable(cfg.Classes),
		Decoder:    dataset.NewFileDecoder(logger),
		Logger:     logger,
	}
}

// New returns an empty session with the cursor before the first image.
func New(opts Options) *Session {
	if len(opts.Extensions) == 0 {
		opts.Extensions = config.DefaultExtensions()
	}
	if opts.Classes == nil {
		opts.Classes = annotation.NewClassTable(config.DefaultClasses())
	}
	if opts.Decoder == nil {
		opts.Decoder = dataset.NewFileDecoder(opts.Logger)
	}
	return &Session{
		logger:  opts.Logger,
		decoder: opts.Decoder,
		exts:    opts.Extensions,
		policy:  opts.Policy,
		classes: opts.Classes,
		index:   -1,
		class:   opts.Classes.Default(),
	}
}

// OpenFolder lists the images in dir, resets the cursor and loads the first image.
// An empty dir (cancelled picker) is a no-op. A listing failure keeps the previous
// folder and list. The previous image is dropped even when dir holds no images.
// It reports whether an image was loaded.
func (s *Session) OpenFolder(dir string) (bool, error) {
	if dir == "" {
		return false, nil
	}
	names, err := dataset.ListImages(dir, s.exts)
	if err != nil {
		return false, err
	}
	s.imageDir = dir
	s.images = names
	s.index = -1
	s.current, s.currentName = nil, ""
	s.boxes, s.dirty = nil, false
	if s.logger != nil {
		s.logger.Info("image folder opened", "dir", dir, "count", len(names))
	}
	return s.Next()
}

// SetOutputFolder stores dir as the export target. An empty dir is ignored.
func (s *Session) SetOutputFolder(dir string) bool {
	if dir == "" {
		return false
	}
	s.outputDir = dir
	if s.logger != nil {
		s.logger.Info("output folder set", "dir", dir)
	}
	return true
}

// HasNext reports whether Next would load an image.
func (s *Session) HasNext() bool { return s.index+1 < len(s.images) }

// Next advances the cursor and loads that image, clearing the boxes. Past the last
// image (or with no folder opened) it is a silent no-op that keeps the display.
// On a decode failure the cursor stays advanced and the current image and boxes are
// cleared, so a later Save cannot write stale boxes under the failed file's name.
func (s *Session) Next() (bool, error) {
	if !s.HasNext() {
		if s.index < len(s.images) {
			s.index = len(s.images)
		}
		return false, nil
	}
	s.index++
	name := s.images[s.index]
	path := filepath.Join(s.imageDir, name)
	img, err := s.decoder.Decode(path)
	s.boxes = nil
	s.dirty = false
	if err != nil {
		s.current = nil
		s.currentName = ""
		if s.logger != nil {
			s.logger.Error("image load failed", "path", path, "index", s.index, "error", err)
		}
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	s.current = img
	s.currentName = name
	if s.logger != nil {
		s.logger.Info("image loaded", "path", path, "index", s.index)
	}
	return true, nil
}

// SetClass selects the class applied to boxes committed from now on.
func (s *Session) SetClass(id annotation.ClassID) {
	if s.class == id {
		return
	}
	s.class = id
	if s.logger != nil {
		s.logger.Debug("class selected", "class", int(id))
	}
}

// Class returns the current class.
func (s *Session) Class() annotation.ClassID { return s.class }

// Classes returns the class table.
func (s *Session) Classes() *annotation.ClassTable { return s.classes }

// AddBox applies the box policy and appends the result. Boxes are ignored while no
// image is loaded. It returns the stored box and whether it was kept.
func (s *Session) AddBox(b annotation.Box) (annotation.Box, bool) {
	if s.current == nil {
		return annotation.Box{}, false
	}
	b, keep := s.policy.Apply(b)
	if !keep {
		if s.logger != nil {
			s.logger.Debug("box rejected", "box", b.String(), "policy", s.policy.String())
		}
		return b, false
	}
	s.boxes = append(s.boxes, b)
	s.dirty = true
	return b, true
}

// Boxes returns a copy of the boxes drawn on the current image, in drawing order.
func (s *Session) Boxes() []annotation.Box {
	out := make([]annotation.Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Dirty reports whether boxes changed since the image was loaded or last saved.
func (s *Session) Dirty() bool { return s.dirty }

// Image returns the current decoded image, or nil.
func (s *Session) Image() image.Image { return s.current }

// ImageName returns the file name of the current image, or "".
func (s *Session) ImageName() string { return s.currentName }

// Index returns the cursor position (-1 before the first image).
func (s *Session) Index() int { return s.index }

// Count returns the number of images in the opened folder.
func (s *Session) Count() int { return len(s.images) }

// Images returns a copy of the listed image names.
func (s *Session) Images() []string {
	out := make([]string, len(s.images))
	copy(out, s.images)
	return out
}

func (s *Session) ImageDir() string  { return s.imageDir }
func (s *Session) OutputDir() string { return s.outputDir }

// LabelPath returns the label file the current image saves to, or "" when either the
// output folder or the image is unset.
func (s *Session) LabelPath() string {
	if s.outputDir == "" || s.current == nil {
		return ""
	}
	return dataset.LabelPath(s.outputDir, s.currentName)
}

// Save writes the current boxes to the label file of the current image, overwriting
// any existing file. Without an output folder or image it is a silent no-op.
// It returns the written path and whether a file was written.
func (s *Session) Save() (string, bool, error) {
	path := s.LabelPath()
	if path == "" {
		return "", false, nil
	}
	content := annotation.FormatBoxes(s.boxes, s.current.Bounds().Size())
	if err := dataset.WriteLabels(path, content); err != nil {
		if s.logger != nil {
			s.logger.Error("save failed", "path", path, "error", err)
		}
		return path, false, err
	}
	s.dirty = false
	if s.logger != nil {
		s.logger.Info("annotations saved", "path", path, "count", len(s.boxes))
	}
	return path, true, nil
}

// ExistingLabels reports how many labels the current image already has on disk.
func (s *Session) ExistingLabels() (int, bool) {
	path := s.LabelPath()
	if path == "" {
		return 0, false
	}
	labels, err := dataset.ReadLabels(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && s.logger != nil {
			s.logger.Warn("existing labels unreadable", "path", path, "error", err)
		}
		return 0, false
	}
	return len(labels), true
}

// Snapshot is a read-only view of the session for presenters.
type Snapshot struct {
	ImageName string
	Index     int
	Count     int
	Class     annotation.ClassID
	Boxes     int
	Dirty     bool
	OutputDir string
	HasImage  bool
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ImageName: s.currentName,
		Index:     s.index,
		Count:     len(s.images),
		Class:     s.class,
		Boxes:     len(s.boxes),
		Dirty:     s.dirty,
		OutputDir: s.outputDir,
		HasImage:  s.current != nil,
	}
}
