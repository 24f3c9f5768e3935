package annotation

import (
	"fmt"

	"github.com/soocke/bbox-labeler/config"
)

// fallbackColors are cycled for class ids missing from the configured table.
var fallbackColors = []string{"green", "orange", "magenta", "cyan", "yellow", "purple", "brown", "pink"}

// Class is one entry of the class table.
type Class struct {
	ID    ClassID
	Name  string
	Color string
}

// ClassTable is the ordered set of classes offered in the Class menu.
type ClassTable struct {
	classes []Class
	byID    map[ClassID]int
}

// NewClassTable builds a table from config entries. Empty names become "Class <id>"
// and empty colors take a fallback palette entry.
func NewClassTable(entries []config.ClassConfig) *ClassTable {
	t := &ClassTable{byID: make(map[ClassID]int, len(entries))}
	for _, e := range entries {
		id := ClassID(e.ID)
		if _, dup := t.byID[id]; dup {
			continue
		}
		c := Class{ID: id, Name: e.Name, Color: e.Color}
		if c.Name == "" {
			c.Name = fmt.Sprintf("Class %d", e.ID)
		}
		if c.Color == "" {
			c.Color = fallbackColor(id)
		}
		t.byID[id] = len(t.classes)
		t.classes = append(t.classes, c)
	}
	return t
}

// Classes returns a copy of the table in menu order.
func (t *ClassTable) Classes() []Class {
	if t == nil {
		return nil
	}
	out := make([]Class, len(t.classes))
	copy(out, t.classes)
	return out
}

// Lookup returns the class with id, if configured.
func (t *ClassTable) Lookup(id ClassID) (Class, bool) {
	if t == nil {
		return Class{}, false
	}
	i, ok := t.byID[id]
	if !ok {
		return Class{}, false
	}
	return t.classes[i], true
}

// Color returns the outline color for id.
func (t *ClassTable) Color(id ClassID) string {
	if c, ok := t.Lookup(id); ok {
		return c.Color
	}
	return fallbackColor(id)
}

// Default returns the first class in the table (id 0 for the default config).
func (t *ClassTable) Default() ClassID {
	if t == nil || len(t.classes) == 0 {
		return 0
	}
	return t.classes[0].ID
}

func fallbackColor(id ClassID) string {
	i := int(id)
	if i < 0 {
		i = -i
	}
	return fallbackColors[i%len(fallbackColors)]
}
