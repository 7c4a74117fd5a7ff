package models

import (
	"fmt"
	"sort"

	"github.com/color-collector/api/colorcode"
)

// CollectionView is how a listing of the collection is arranged
type CollectionView string

const (
	ViewGrid     CollectionView = "grid"
	ViewSpectrum CollectionView = "spectrum"
	ViewTimeline CollectionView = "timeline"
	ViewMap      CollectionView = "map"
)

// ParseCollectionView defaults to the grid view when s is empty
func ParseCollectionView(s string) (CollectionView, error) {
	switch v := CollectionView(s); v {
	case "":
		return ViewGrid, nil
	case ViewGrid, ViewSpectrum, ViewTimeline, ViewMap:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q, expected grid, spectrum, timeline or map", s)
}

// SortSpectrum orders records in place by hue then lightness. Grays have no
// hue and go last, dark to light.
func SortSpectrum(records []ColorRecord) {
	type key struct {
		gray bool
		h, l float64
	}
	keys := make(map[string]key, len(records))
	for _, r := range records {
		hsl := colorcode.ToHSL(r.Hex)
		keys[r.ID] = key{gray: hsl.S == 0, h: hsl.H, l: hsl.L}
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := keys[records[i].ID], keys[records[j].ID]
		if a.gray != b.gray {
			return !a.gray
		}
		if !a.gray && a.h != b.h {
			return a.h < b.h
		}
		return a.l < b.l
	})
}

// ColorFamily is the hue bucket name of hex, or Gray for achromatic colors
func ColorFamily(hex string) string {
	hsl := colorcode.ToHSL(hex)
	if hsl.S == 0 {
		return "Gray"
	}
	return colorcode.HueName(hsl.H)
}

func Summarize(records []ColorRecord) CollectionStats {
	stats := CollectionStats{
		Total:       len(records),
		ByProximity: make(map[Proximity]int),
		ByFamily:    make(map[string]int),
	}
	for _, r := range records {
		if r.Location != nil {
			stats.Located++
		}
		if r.Approximated {
			stats.Approximated++
		}
		if r.Proximity != nil {
			stats.ByProximity[*r.Proximity]++
		}
		stats.ByFamily[ColorFamily(r.Hex)]++
	}
	return stats
}
