package domain

import "path/filepath"

// BuildTarget holds the fixed build inputs supplied by the caller.
// It is read-only to the planning core.
type BuildTarget struct {
	// SourcePath is the single source unit to compile.
	SourcePath string
	// BuildDir receives intermediate artifacts (objects, resource objects).
	BuildDir string
	// BinDir receives the final executable.
	BinDir string
	// OutputName is the executable base name, without platform suffix.
	OutputName string
	// ResourceScript is an optional Windows resource-definition file.
	// Empty means no resource compilation is attempted.
	ResourceScript string
}

// OutputFile returns the final executable path, named per OS convention.
func (t BuildTarget) OutputFile(os OSFamily) string {
	name := t.OutputName
	if os == OSWindows {
		name += ".exe"
	}
	return filepath.Join(t.BinDir, name)
}

// ObjectFile returns the intermediate object path used by the MSVC branch.
func (t BuildTarget) ObjectFile() string {
	return filepath.Join(t.BuildDir, t.OutputName+".obj")
}

// ResourceObject returns the compiled resource output path used by the MSVC
// branch.
func (t BuildTarget) ResourceObject() string {
	return filepath.Join(t.BuildDir, t.OutputName+".res")
}
