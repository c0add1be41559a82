package dbfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Service copies or deletes the underlying database file wholesale. It must
// only run while no connection holds the file; the core tolerates starting
// against a freshly reset (empty) database because EnsureSchema rebuilds it.
type Service struct {
	dbPath    string
	exportDir string
}

func NewService(dbPath, exportDir string) *Service {
	return &Service{dbPath: dbPath, exportDir: exportDir}
}

// Export copies the database file into the export directory under a
// timestamped name and returns the destination path.
func (s *Service) Export() (string, error) {
	src, err := os.Open(s.dbPath)
	if err != nil {
		return "", fmt.Errorf("opening database file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%s%s",
		trimExt(filepath.Base(s.dbPath)),
		time.Now().Format("20060102-150405"),
		filepath.Ext(s.dbPath))
	dstPath := filepath.Join(s.exportDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("copying database file: %w", err)
	}
	return dstPath, nil
}

// Reset deletes the database file. A missing file is not an error; the next
// start simply begins from an empty schema.
func (s *Service) Reset() error {
	if err := os.Remove(s.dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing database file: %w", err)
	}
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
