package domain

import "time"

// BuildReceipt records the outcome of a fully successful build run.
// It is a write-only output artifact; planning never reads it back.
type BuildReceipt struct {
	Toolchain  ToolchainKind `json:"toolchain,omitzero"`
	Host       string        `json:"host,omitzero"`
	OutputPath string        `json:"output_path,omitzero"`
	OutputHash string        `json:"output_hash,omitzero"`
	Duration   time.Duration `json:"duration,omitzero"`
	Timestamp  time.Time     `json:"timestamp,omitzero"`
}
