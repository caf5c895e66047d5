package domain

// FlagClass distinguishes the semantic role of an argument in a toolchain
// command line. Flag semantics stay distinct from their textual form until
// serialization at the process boundary.
type FlagClass string

const (
	// FlagSource marks the input source file.
	FlagSource FlagClass = "source"
	// FlagOutput marks object/executable output path arguments.
	FlagOutput FlagClass = "output"
	// FlagResource marks a compiled resource object consumed by the linker.
	FlagResource FlagClass = "resource"
	// FlagStandard marks language-standard selection.
	FlagStandard FlagClass = "standard"
	// FlagDiagnostics marks warning and warning-escalation flags.
	FlagDiagnostics FlagClass = "diagnostics"
	// FlagOptimize marks optimization-level flags.
	FlagOptimize FlagClass = "optimize"
	// FlagDefine marks preprocessor defines.
	FlagDefine FlagClass = "define"
	// FlagLinker marks linker-scoped flags (subsystem, hardening, pthread).
	FlagLinker FlagClass = "linker"
	// FlagArch marks architecture selection flags.
	FlagArch FlagClass = "arch"
	// FlagTuning marks microarchitecture tuning flags.
	FlagTuning FlagClass = "tuning"
)

// Arg is a single command-line argument tagged with its class.
type Arg struct {
	Class FlagClass
	Text  string
}

// ArgList accumulates classified arguments in insertion order.
// Order is significant: it is preserved exactly through serialization.
type ArgList struct {
	args []Arg
}

// Add appends one or more argument texts under the given class and returns
// the list for chaining.
func (l *ArgList) Add(class FlagClass, texts ...string) *ArgList {
	for _, t := range texts {
		l.args = append(l.args, Arg{Class: class, Text: t})
	}
	return l
}

// Strings serializes the accumulated arguments in order.
func (l *ArgList) Strings() []string {
	out := make([]string, len(l.args))
	for i, a := range l.args {
		out[i] = a.Text
	}
	return out
}

// Args returns a copy of the classified argument records.
func (l *ArgList) Args() []Arg {
	out := make([]Arg, len(l.args))
	copy(out, l.args)
	return out
}

// HasClass reports whether any accumulated argument carries the given class.
func (l *ArgList) HasClass(class FlagClass) bool {
	for _, a := range l.args {
		if a.Class == class {
			return true
		}
	}
	return false
}
