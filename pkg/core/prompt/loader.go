package prompt

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadDirectory builds a library from every .json file under dir. A missing
// directory is not an error; it just means no overrides are deployed. A
// template with no explicit ID gets one from its relative path, so
// extraction/balance_sheet.json becomes "extraction.balance_sheet".
func LoadDirectory(dir string) (*Library, error) {
	lib := NewLibrary()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return lib, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if t.ID == "" {
			t.ID = idFromPath(dir, path)
		}
		return lib.Register(&t)
	})
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func idFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, ".json")
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}
