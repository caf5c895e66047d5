package planner

// SetFileExists overrides the resource-script existence check. Tests only.
func (p *Planner) SetFileExists(fn func(string) bool) {
	p.fileExists = fn
}
