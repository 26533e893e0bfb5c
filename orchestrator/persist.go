package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/silvercare-lab/doll-pipeline/report"
)

func mkRunDir(outputsRoot, kind string) (string, string, error) {
	rid := uuid.NewString()
	dir := filepath.Join(outputsRoot, kind+"_"+rid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return rid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(path string, t report.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.WriteCSV(f)
}

// persist writes the run table plus its manifest into a fresh run directory
// and returns the directory path.
func persist(outputsRoot string, manifest RunManifest, tableName string, t report.Table) (string, error) {
	rid, dir, err := mkRunDir(outputsRoot, manifest.Kind)
	if err != nil {
		return "", err
	}
	manifest.RunID = rid

	if err := writeTable(filepath.Join(dir, tableName), t); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "manifest.json"), manifest); err != nil {
		return "", err
	}
	return dir, nil
}
