package core

// Color is a foreground color for a sketch cell.
type Color uint8

// Sketch palette. The platform maps these to terminal colors.
const (
	ColorDefault Color = iota
	ColorFrame         // Canvas outline
	ColorGear          // Logo gear
	ColorRack          // Rack
	ColorEpicyclic     // Orbiting gear
	ColorTravel        // Path of a moving element
	ColorWarning       // Element with an advisory warning
)
