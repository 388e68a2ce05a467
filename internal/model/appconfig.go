package model

// EstimateSettings holds the sheet-goods parameters used when summarizing box parts.
type EstimateSettings struct {
	SheetWidth          float64 `json:"sheet_width"`           // in
	SheetHeight         float64 `json:"sheet_height"`          // in
	KerfWidth           float64 `json:"kerf_width"`            // Blade width in inches
	WastePercent        float64 `json:"waste_percent"`         // Sheet waste factor
	BandingWastePercent float64 `json:"banding_waste_percent"` // Edge banding waste factor
	BoxThickness        float64 `json:"box_thickness"`         // Carcass material thickness
}

func DefaultEstimateSettings() EstimateSettings {
	return EstimateSettings{
		SheetWidth:          48,
		SheetHeight:         96,
		KerfWidth:           0.125,
		WastePercent:        15,
		BandingWastePercent: 10,
		BoxThickness:        0.75,
	}
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new cabinets
	DefaultDepth   float64 `json:"default_depth"`
	DefaultStyleID int     `json:"default_style_id"`
	DefaultTypeID  int     `json:"default_type_id"`

	// Estimate defaults
	SheetWidth          float64 `json:"sheet_width"`
	SheetHeight         float64 `json:"sheet_height"`
	KerfWidth           float64 `json:"kerf_width"`
	WastePercent        float64 `json:"waste_percent"`
	BandingWastePercent float64 `json:"banding_waste_percent"`
	BoxThickness        float64 `json:"box_thickness"`

	// Editing preferences
	DisplayScale   float64  `json:"display_scale"` // Screen pixels per inch when dragging
	CatalogPath    string   `json:"catalog_path"`  // YAML or TOML catalog, empty = built-in
	RecentCabinets []string `json:"recent_cabinets"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultEstimateSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultEstimateSettings()
	return AppConfig{
		DefaultDepth:        StandardDepth,
		DefaultStyleID:      1,
		DefaultTypeID:       1,
		SheetWidth:          defaults.SheetWidth,
		SheetHeight:         defaults.SheetHeight,
		KerfWidth:           defaults.KerfWidth,
		WastePercent:        defaults.WastePercent,
		BandingWastePercent: defaults.BandingWastePercent,
		BoxThickness:        defaults.BoxThickness,
		DisplayScale:        8,
		CatalogPath:         "",
		RecentCabinets:      []string{},
	}
}

// ApplyToSettings copies the estimate defaults from AppConfig into an EstimateSettings struct.
func (c AppConfig) ApplyToSettings(s *EstimateSettings) {
	s.SheetWidth = c.SheetWidth
	s.SheetHeight = c.SheetHeight
	s.KerfWidth = c.KerfWidth
	s.WastePercent = c.WastePercent
	s.BandingWastePercent = c.BandingWastePercent
	s.BoxThickness = c.BoxThickness
}
