package main

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *model) copyMessage() {
	text := fmt.Sprintf("%s\n%s %s", m.cfg.Question, m.cfg.YesLabel, m.cfg.Celebration)
	if err := writeClipboard(text); err != nil {
		log.Printf("clipboard: %v", err)
		m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.successMessage = "Copied to clipboard"
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
