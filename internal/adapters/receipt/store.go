// Package receipt persists the record of a successful build run.
package receipt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is where the receipt of the last successful build lands.
const DefaultFilename = "anvil_receipt.json"

// Store implements ports.ReceiptStore using a flat JSON file.
// Receipts are write-only output: nothing in planning ever reads them back.
type Store struct {
	path string
}

// NewStore creates a receipt store writing to the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

var _ ports.ReceiptStore = (*Store)(nil)

// Put writes the receipt. The artifact hash is computed here if the caller
// left it empty and the artifact is readable.
func (s *Store) Put(r domain.BuildReceipt) error {
	if r.OutputHash == "" && r.OutputPath != "" {
		if h, err := hashFile(r.OutputPath); err == nil {
			r.OutputHash = h
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build receipt")
	}

	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build receipt")
	}

	return nil
}

// hashFile computes the XXHash of a file's content.
func hashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash artifact"), "path", path)
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}
