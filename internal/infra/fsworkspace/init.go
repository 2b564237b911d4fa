package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

const (
	logDir          = ".petspeak/logs"
	ignoreEntry     = ".petspeak/"
	gitignoreHeader = "# petspeak"
)

// Initializer seeds a directory with petspeak.yaml, a sample roster and a
// .gitignore entry for the log directory.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes the starter files into spec.Root. Existing files are left alone
// unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(logDir)), 0o755); err != nil {
		return &domain.OpError{Op: "workspace.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureIgnored(root, ignoreEntry); err != nil {
		return &domain.OpError{Op: "workspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return &domain.OpError{Op: "workspace.init", Kind: domain.KindExecution, Err: err}
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		dst := filepath.Join(root, e.Name())
		if err := writeTemplate(e.Name(), dst, force); err != nil {
			return &domain.OpError{Op: "workspace.init", Kind: domain.KindExecution, Path: dst, Err: err}
		}
	}
	return nil
}

// writeTemplate copies templates/<name> to dst. Without force an existing
// dst is kept as is.
func writeTemplate(name, dst string, force bool) error {
	b, err := templatesFS.ReadFile(path.Join("templates", name))
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(dst, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ensureIgnored appends entry to root/.gitignore under the petspeak header,
// unless a line with the same entry is already there.
func ensureIgnored(root, entry string) error {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	existing := string(b)
	hasHeader := false
	for _, line := range strings.Split(existing, "\n") {
		switch strings.TrimSpace(line) {
		case entry:
			return nil
		case gitignoreHeader:
			hasHeader = true
		}
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !hasHeader {
		out.WriteString(gitignoreHeader + "\n")
	}
	out.WriteString(entry + "\n")

	return os.WriteFile(p, []byte(out.String()), 0o644)
}
