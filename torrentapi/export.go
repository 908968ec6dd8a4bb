package torrentapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"
)

const magnetExt = ".magnet"

var unsafeNameChars = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// Export writes the magnet link into dir as <name>.magnet and returns the file path.
// The name is the title, else the filename, else a random UUID.
func (t *Torrent) Export(dir string) (string, error) {
	name := unsafeNameChars.Replace(t.Name())
	if name == "" || name == "." || name == ".." {
		id, err := uuid.NewV4()
		if err != nil {
			return "", fmt.Errorf("failed to generate export name: %w", err)
		}
		name = id.String()
	}

	path := filepath.Join(dir, name+magnetExt)
	if err := os.WriteFile(path, []byte(t.Download), 0o644); err != nil {
		return "", fmt.Errorf("failed to export %q: %w", name, err)
	}
	return path, nil
}
