package parameter

import "time"

// Layout & Margins
const (
	// TopMargin for the HUD line
	TopMargin = 1

	// BottomMargin for the key hint line
	BottomMargin = 1

	// MinScreenWidth and MinScreenHeight are the smallest terminal the field is drawn in
	MinScreenWidth  = 30
	MinScreenHeight = 16
)

// Glyphs
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	HeartChar  = '♥'
	StarChar   = '★'
	NoStarChar = '☆'

	// AudioStr marks the HUD when sound is on
	AudioStr = "♫"
)

// Overlay Configuration
const (
	// OverlayPaddingX is the horizontal padding inside the message box
	OverlayPaddingX = 2
)

// FrameInterval is the terminal redraw period, decoupled from the simulation step
const FrameInterval = 33 * time.Millisecond
