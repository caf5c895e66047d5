package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainNotFound is returned when no compiler executable is
	// discoverable on the search path. Fatal; there is no sensible
	// corrective action without operator intervention.
	ErrToolchainNotFound = zerr.New("no suitable toolchain found")

	// ErrResourceCompileFailed is returned when the Windows resource
	// compilation step fails. Fatal; aborts before any compile step.
	ErrResourceCompileFailed = zerr.New("resource compilation failed")

	// ErrCompileFailed is returned when the compile+link step fails.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrInvalidTarget is returned when the build target configuration is
	// incomplete or inconsistent.
	ErrInvalidTarget = zerr.New("invalid build target")
)
