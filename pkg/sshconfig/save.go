package sshconfig

import (
	"fmt"
	"os"
	"sort"
)

// SaveAll writes the document back to disk: the main file first, then
// every included file, each rendered from the shared line sequence. Files
// are overwritten in place with no backup and no atomic rename. The first
// write error aborts the remaining writes; files already written stay in
// their new state.
func (d *Document) SaveAll(mainPath string) error {
	if err := writeConfigFile(mainPath, d.Render(mainPath)); err != nil {
		return err
	}

	// Sorted for deterministic write order.
	paths := make([]string, 0, len(d.IncludedFiles))
	for path := range d.IncludedFiles {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := writeConfigFile(path, d.Render(path)); err != nil {
			return err
		}
	}

	return nil
}

func writeConfigFile(path, content string) error {
	// 0600 matches what OpenSSH expects for files under ~/.ssh.
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
