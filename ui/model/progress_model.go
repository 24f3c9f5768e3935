package model

// Progress is a point-in-time view of the labeling progress of one window.
type Progress struct {
	Visited    int // images loaded since start
	FilesSaved int // distinct label files written
	BoxesSaved int // boxes in the latest save of each file
}

// ProgressModel accumulates labeling progress for the status bar.
// It is decoupled from the UI; presenters feed it events and read Values().
// The zero value is ready to use.
type ProgressModel struct {
	visited int
	saved   map[string]int // image name -> boxes written in its latest save
	boxes   int
}

// NewProgressModel returns a pointer to a ready-to-use ProgressModel.
func NewProgressModel() *ProgressModel { return &ProgressModel{} }

// OnImageLoaded records that name was shown.
func (m *ProgressModel) OnImageLoaded(name string) {
	if m == nil || name == "" {
		return
	}
	m.visited++
}

// OnSaved records a successful save of count boxes for name. Saving the same image
// again replaces its previous box count.
func (m *ProgressModel) OnSaved(name string, count int) {
	if m == nil || name == "" {
		return
	}
	if m.saved == nil {
		m.saved = make(map[string]int)
	}
	m.boxes += count - m.saved[name]
	m.saved[name] = count
}

// Values returns the accumulated progress.
func (m *ProgressModel) Values() Progress {
	if m == nil {
		return Progress{}
	}
	return Progress{Visited: m.visited, FilesSaved: len(m.saved), BoxesSaved: m.boxes}
}
