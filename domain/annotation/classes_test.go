package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soocke/bbox-labeler/config"
)

func TestClassTable_DefaultColors(t *testing.T) {
	tbl := NewClassTable(config.DefaultClasses())
	assert.Equal(t, "red", tbl.Color(0))
	assert.Equal(t, "blue", tbl.Color(1))
	assert.Equal(t, ClassID(0), tbl.Default())
	assert.Len(t, tbl.Classes(), 2)
}

func TestClassTable_FallbacksAndDuplicates(t *testing.T) {
	tbl := NewClassTable([]config.ClassConfig{{ID: 4}, {ID: 4, Name: "dup", Color: "black"}})
	c, ok := tbl.Lookup(4)
	assert.True(t, ok)
	assert.Equal(t, "Class 4", c.Name)
	assert.NotEmpty(t, c.Color)
	assert.Len(t, tbl.Classes(), 1)

	_, ok = tbl.Lookup(9)
	assert.False(t, ok)
	assert.NotEmpty(t, tbl.Color(9))
}
