package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/ioadapt"
)

// resultWriter lays out emitted cages under results/<basename>/<N>/ per
// spec.md §6, where N is the added-atom count for that cage (active atoms
// with no substrate parent, i.e. those path synthesis placed) and i is a
// monotonically increasing per-N counter, matching writeShellOutput's
// createDir/createUnderDir scheme.
type resultWriter struct {
	basename string
	counters map[int]int
}

func newResultWriter(basename string) *resultWriter {
	return &resultWriter{basename: basename, counters: make(map[int]int)}
}

func (w *resultWriter) write(s *envelope.Shell) (string, error) {
	n := 0
	for _, id := range s.Active() {
		if s.Atoms[id].Parent == -1 {
			n++
		}
	}
	dir := filepath.Join("results", w.basename, fmt.Sprintf("%d", n))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cagegen: creating %s: %w", dir, err)
	}

	i := w.counters[n]
	w.counters[n] = i + 1

	path := filepath.Join(dir, fmt.Sprintf("%s_mot%d.mol2", w.basename, i))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cagegen: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := ioadapt.SaveCageMOL2(f, s); err != nil {
		return "", fmt.Errorf("cagegen: writing %s: %w", path, err)
	}
	return path, nil
}
