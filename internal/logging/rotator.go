package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// RotatorOptions bounds the on-disk log footprint.
type RotatorOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Rotator is an io.WriteCloser that rolls the log file once it grows past MaxSizeMB.
type Rotator struct {
	mu       sync.Mutex
	dir      string
	name     string
	opts     RotatorOptions
	file     *os.File
	size     int64
	now      func() time.Time
	warnings io.Writer
}

// NewRotator opens (or creates) dir/name for appending.
func NewRotator(dir, name string, opts RotatorOptions) (*Rotator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &Rotator{
		dir:      dir,
		name:     name,
		opts:     opts,
		now:      time.Now,
		warnings: os.Stderr,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *Rotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *Rotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *Rotator) limit() int64 {
	return int64(r.opts.MaxSizeMB) * 1024 * 1024
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.limit() > 0 && r.size > 0 && r.size+int64(len(p)) > r.limit() {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *Rotator) warn(format string, args ...any) {
	fmt.Fprintf(r.warnings, "tabcast: "+format+"\n", args...)
}

func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		r.warn("close log file: %v", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, fmt.Sprintf("%s.%s", r.name, r.now().Format("20060102-150405.000")))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			r.warn("compress %s: %v", backup, err)
		} else if err := os.Remove(backup); err != nil {
			r.warn("remove %s: %v", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune drops backups past MaxAgeDays, then the oldest beyond MaxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	cutoff := r.now().Add(-time.Duration(r.opts.MaxAgeDays) * 24 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.name+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.opts.MaxAgeDays > 0 && info.ModTime().Before(cutoff) {
			r.remove(entry.Name())
			continue
		}
		backups = append(backups, backup{name: entry.Name(), mod: info.ModTime()})
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int { return a.mod.Compare(b.mod) })
	for _, b := range backups[:len(backups)-r.opts.MaxBackups] {
		r.remove(b.name)
	}
}

func (r *Rotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
		r.warn("remove old log %s: %v", name, err)
	}
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
