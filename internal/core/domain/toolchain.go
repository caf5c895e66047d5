package domain

// ToolchainKind identifies a compiler/linker family capable of producing a
// native executable.
type ToolchainKind string

const (
	// ToolchainMSVC is the Microsoft Visual C++ toolchain (cl + rc).
	ToolchainMSVC ToolchainKind = "msvc"
	// ToolchainGCC is the GNU toolchain (g++).
	ToolchainGCC ToolchainKind = "gcc"
	// ToolchainClang is the LLVM toolchain (clang++).
	ToolchainClang ToolchainKind = "clang"
	// ToolchainNone means no suitable compiler was found on the search path.
	ToolchainNone ToolchainKind = "none"
)

// Compiler returns the compiler executable name for the kind.
// ToolchainNone has no compiler and returns "".
func (k ToolchainKind) Compiler() string {
	switch k {
	case ToolchainMSVC:
		return "cl"
	case ToolchainGCC:
		return "g++"
	case ToolchainClang:
		return "clang++"
	default:
		return ""
	}
}
