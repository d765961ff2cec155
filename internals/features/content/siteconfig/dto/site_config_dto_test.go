package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every section must own its columns exclusively, otherwise saving one
// section could silently clobber another editor's work.
func TestSectionPatchesAreDisjoint(t *testing.T) {
	patches := map[string]SectionPatch{
		"contact":    ContactPatch{},
		"helix":      HelixPatch{},
		"appearance": AppearancePatch{},
		"promotion":  PromotionPatch{},
		"social":     SocialPatch{},
		"hours":      HoursPatch{},
		"layout":     LayoutPatch{},
		"stock":      StockPatch{CerakoteStock: map[string]bool{}},
	}

	owner := map[string]string{}
	for section, patch := range patches {
		for column := range patch.Columns() {
			prev, taken := owner[column]
			assert.False(t, taken, "column %q owned by both %q and %q", column, prev, section)
			owner[column] = section
		}
	}

	// show_reviews belongs to the review settings endpoint, not to any
	// section patch.
	_, taken := owner["show_reviews"]
	assert.False(t, taken)
}

func TestContactPatchColumns(t *testing.T) {
	patch := ContactPatch{
		Owner: "Colm", Phone: "+353 86 123 4567", Email: "hello@helixmotorcycles.com",
		Address: "Unit 4, Dublin 12", Hours: "Mon-Fri 9-6", Offer: "10% off cerakote",
	}
	cols := patch.Columns()
	assert.Len(t, cols, 6)
	assert.Equal(t, "Colm", cols["owner"])
	assert.Equal(t, "+353 86 123 4567", cols["phone"])
}
