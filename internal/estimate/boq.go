// internal/estimate/boq.go
package estimate

import "renovation-core/internal/models"

// materialSpec is one material line in a process's bill of quantities.
// Category paths end in a grade segment; the engine substitutes the tier
// recommendation's grade before lookup.
type materialSpec struct {
	categoryBase string // without the grade segment
	qtyPerPyeong float64
	unit         string
}

// processSpec is the closed bill-of-quantities entry for one process.
type processSpec struct {
	materials         []materialSpec
	trade             string
	laborQtyPerPyeong float64 // in the trade's output unit
}

// boq maps every estimable process to its bill of quantities. A required
// process absent from this table is an engine validation error, never a
// silently skipped block.
var boq = map[models.ProcessID]processSpec{
	models.ProcessDemolition: {
		materials: []materialSpec{
			{categoryBase: "demolition/disposal", qtyPerPyeong: 0.8, unit: "ton"},
		},
		trade:             "demolition-crew",
		laborQtyPerPyeong: 1.0,
	},
	models.ProcessWaterproofing: {
		materials: []materialSpec{
			{categoryBase: "waterproofing/membrane", qtyPerPyeong: 3.3, unit: "sqm"},
			{categoryBase: "waterproofing/primer", qtyPerPyeong: 0.5, unit: "liter"},
		},
		trade:             "waterproofer",
		laborQtyPerPyeong: 3.3,
	},
	models.ProcessPlumbing: {
		materials: []materialSpec{
			{categoryBase: "plumbing/pipe", qtyPerPyeong: 2.0, unit: "meter"},
			{categoryBase: "plumbing/fittings", qtyPerPyeong: 1.2, unit: "set"},
		},
		trade:             "plumber",
		laborQtyPerPyeong: 2.0,
	},
	models.ProcessElectrical: {
		materials: []materialSpec{
			{categoryBase: "electrical/wiring", qtyPerPyeong: 4.0, unit: "meter"},
			{categoryBase: "electrical/outlets", qtyPerPyeong: 0.6, unit: "unit"},
		},
		trade:             "electrician",
		laborQtyPerPyeong: 4.0,
	},
	models.ProcessVentilation: {
		materials: []materialSpec{
			{categoryBase: "ventilation/duct", qtyPerPyeong: 0.8, unit: "meter"},
		},
		trade:             "hvac-fitter",
		laborQtyPerPyeong: 0.8,
	},
	models.ProcessStorageBuiltin: {
		materials: []materialSpec{
			{categoryBase: "storage/carcass", qtyPerPyeong: 0.4, unit: "unit"},
			{categoryBase: "storage/hardware", qtyPerPyeong: 0.4, unit: "set"},
		},
		trade:             "carpenter",
		laborQtyPerPyeong: 0.4,
	},
	models.ProcessSoundproofing: {
		materials: []materialSpec{
			{categoryBase: "soundproofing/panel", qtyPerPyeong: 2.5, unit: "sqm"},
		},
		trade:             "carpenter",
		laborQtyPerPyeong: 2.5,
	},
	models.ProcessWindows: {
		materials: []materialSpec{
			{categoryBase: "windows/frame", qtyPerPyeong: 0.3, unit: "unit"},
			{categoryBase: "windows/glazing", qtyPerPyeong: 1.0, unit: "sqm"},
		},
		trade:             "window-fitter",
		laborQtyPerPyeong: 0.3,
	},
	models.ProcessFlooring: {
		materials: []materialSpec{
			{categoryBase: "flooring/surface", qtyPerPyeong: 3.3, unit: "sqm"},
			{categoryBase: "flooring/underlay", qtyPerPyeong: 3.3, unit: "sqm"},
		},
		trade:             "floor-layer",
		laborQtyPerPyeong: 3.3,
	},
	models.ProcessBathroom: {
		materials: []materialSpec{
			{categoryBase: "bathroom/tile", qtyPerPyeong: 1.5, unit: "sqm"},
			{categoryBase: "bathroom/fixtures", qtyPerPyeong: 0.2, unit: "set"},
		},
		trade:             "tiler",
		laborQtyPerPyeong: 1.5,
	},
	models.ProcessKitchen: {
		materials: []materialSpec{
			{categoryBase: "kitchen/cabinet", qtyPerPyeong: 0.5, unit: "unit"},
			{categoryBase: "kitchen/worktop", qtyPerPyeong: 0.4, unit: "meter"},
		},
		trade:             "kitchen-installer",
		laborQtyPerPyeong: 0.5,
	},
	models.ProcessLighting: {
		materials: []materialSpec{
			{categoryBase: "lighting/fixture", qtyPerPyeong: 0.5, unit: "unit"},
		},
		trade:             "electrician",
		laborQtyPerPyeong: 0.5,
	},
	models.ProcessFilm: {
		materials: []materialSpec{
			{categoryBase: "film/sheet", qtyPerPyeong: 2.0, unit: "sqm"},
		},
		trade:             "film-applicator",
		laborQtyPerPyeong: 2.0,
	},
	models.ProcessPainting: {
		materials: []materialSpec{
			{categoryBase: "painting/paint", qtyPerPyeong: 1.2, unit: "liter"},
		},
		trade:             "painter",
		laborQtyPerPyeong: 3.3,
	},
}

// difficultyMultipliers is the separate labor difficulty rule table. A
// process absent here multiplies by one; that is the table's documented
// shape (the multiplier is optional), not a catalog fallback.
var difficultyMultipliers = map[models.ProcessID]float64{
	models.ProcessWaterproofing: 1.3,
	models.ProcessPlumbing:      1.2,
	models.ProcessBathroom:      1.15,
	models.ProcessDemolition:    1.1,
}

// gradeSegment maps a tier hint to the category grade segment.
var gradeSegment = map[models.Tier]string{
	models.TierBasic:    "basic",
	models.TierStandard: "standard",
	models.TierPremium:  "premium",
}
