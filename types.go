package main

import (
	"time"

	"proposal/internal/config"
	"proposal/internal/decor"
	"proposal/internal/session"
)

type model struct {
	cfg     *config.Config
	session *session.Session
	now     func() time.Time

	width   int
	height  int
	mouse   bool
	started bool
	ticking bool

	// glide animates the evasive button in layout units relative to the
	// playground.
	glide     glide
	teaseText string

	// static is set when the scene lacks an attachment point. Only the
	// question is shown and nothing reacts.
	static bool

	successMessage string
	errorMessage   string
}

type frameMsg time.Time

type particleDoneMsg struct {
	kind decor.Kind
	id   int
}
