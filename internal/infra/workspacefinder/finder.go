package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

// ConfigFileName marks a petspeak workspace root.
const ConfigFileName = "petspeak.yaml"

const opLocate = "workspace.locate"

// Finder walks up from a directory to the nearest one holding a petspeak
// config file. The roster path in that config is resolved against it.
type Finder struct {
	ConfigFile string // empty means ConfigFileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	dir, err := searchStart(startDir)
	if err != nil {
		return "", err
	}

	for {
		if f.hasConfig(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &domain.OpError{
				Op:   opLocate,
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  fmt.Errorf("no %s above this directory: %w", f.configFile(), domain.ErrNotFound),
			}
		}
		dir = parent
	}
}

func (f *Finder) configFile() string {
	if f.ConfigFile == "" {
		return ConfigFileName
	}
	return f.ConfigFile
}

// hasConfig ignores a directory that happens to carry the config file's name.
func (f *Finder) hasConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, f.configFile()))
	return err == nil && !info.IsDir()
}

// searchStart makes start absolute. A path to a file (typically the config
// itself) starts the search from its directory.
func searchStart(start string) (string, error) {
	if strings.TrimSpace(start) == "" {
		return "", &domain.OpError{
			Op:   opLocate,
			Kind: domain.KindInvalidInput,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", &domain.OpError{Op: opLocate, Kind: domain.KindExecution, Path: start, Err: err}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
