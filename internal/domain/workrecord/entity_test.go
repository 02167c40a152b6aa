package workrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemNote(t *testing.T) {
	assert.Equal(t, "Item: Cotton Roll", ItemNote("Cotton Roll", ""))
	assert.Equal(t, "Item: Cotton Roll | bale 3", ItemNote("Cotton Roll", "bale 3"))
}

func TestItemName(t *testing.T) {
	note := "Item: Cotton Roll | bale 3"
	rec := WorkRecord{Notes: &note}
	assert.Equal(t, "Cotton Roll", rec.ItemName())

	bare := "Item: Cotton Roll"
	rec = WorkRecord{Notes: &bare}
	assert.Equal(t, "Cotton Roll", rec.ItemName())

	freeform := "manual entry"
	rec = WorkRecord{Notes: &freeform}
	assert.Equal(t, "", rec.ItemName())

	rec = WorkRecord{}
	assert.Equal(t, "", rec.ItemName())
}
