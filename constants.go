package main

import "time"

const (
	frameInterval = 66 * time.Millisecond

	// proximityCells widens the evasive button's hit area so it dodges
	// before the pointer reaches it.
	proximityCells = 1

	buttonHeight  = 3
	buttonPadding = 3

	maxCardWidth     = 96
	successMinHeight = 9
	fallbackHeight   = 7

	// Rows between the card's top border and its playground.
	playgroundOffset = 6
)

const (
	colorBackground = "#1A1020"
	colorCard       = "#2A1530"
	colorText       = "#FCE7F3"
	colorMuted      = "#B58FB0"
	colorYes        = "#FF6B9D"
	colorNo         = "#9CA3AF"
	colorAgain      = "#C77DFF"
	colorStatus     = "#6B5B6E"
	colorError      = "#F87171"
)

const keepsakeTimeFormat = "20060102-150405"
