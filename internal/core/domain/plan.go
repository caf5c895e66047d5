package domain

import "strings"

// CommandRole identifies the build stage a command belongs to, which in turn
// determines how its failure is classified.
type CommandRole string

const (
	// RoleResourceCompile is the optional Windows resource compilation step.
	RoleResourceCompile CommandRole = "resource-compile"
	// RoleCompile is the compile+link step producing the executable.
	RoleCompile CommandRole = "compile"
)

// Command is one fully resolved toolchain invocation.
type Command struct {
	Role CommandRole
	// Path is the executable name, resolved against the search path at
	// execution time.
	Path string
	// Args is the ordered, fully serialized argument list.
	Args []string
	// Produces is the file the command is expected to leave on disk.
	Produces string
}

// String renders the command the way it would appear in a shell, for
// diagnostics and dry runs.
func (c Command) String() string {
	return c.Path + " " + strings.Join(c.Args, " ")
}

// InvocationPlan is the ordered set of commands for one build run.
// It is a value: re-derivable deterministically from (HostProfile,
// ToolchainKind, BuildTarget) and never mutated after construction.
type InvocationPlan struct {
	Toolchain ToolchainKind
	Commands  []Command
	// Output is the final artifact path reported on success.
	Output string
}
