// Constants for the SFX editor.
package main

import "time"

// Layout
const (
	ControlsPanelWidth = 420
	StatusBarHeight    = 30
	SwatchWidth        = 160
	SwatchHeight       = 64
)

// NotificationDuration is how long the overlay message stays visible.
const NotificationDuration = 2 * time.Second

// Popup identifiers
const (
	ColorPickerPopup = "Choose Colour"
)

// File dialog filters
const (
	TextFilesFilter = "Text Files"
	AllFilesFilter  = "All Files"
)
