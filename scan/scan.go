// Package scan walks a directory hierarchy on disk and records it as
// an ntree.Tree, one node per directory entry. Directories fan out to
// a bounded pool of workers, so wide layouts scan in parallel; all
// insertions into the tree are serialized by a single mutex because
// the tree itself is not safe for concurrent mutation.
//
// The resulting tree can then be traversed like any other: the
// LargestFiles helper and the treescan command under cmd/ are built on
// nothing but the public iterator surface.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"go.lepak.sg/ntree"
)

// FileType classifies a scanned directory entry.
type FileType int

const (
	Regular FileType = iota
	Directory
	Symlink
)

func (ft FileType) String() string {
	switch ft {
	case Regular:
		return "file"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "<invalid scan.FileType>"
	}
}

// FileInfo is the payload carried by every node of a scanned tree.
// Name holds the base name without its extension; Extension keeps the
// leading dot, mirroring filepath.Ext. Size is the file's byte length
// for regular files; for directories it is filled in after the scan
// with the total size of everything beneath them.
type FileInfo struct {
	Name      string
	Extension string
	Size      int64
	Type      FileType
}

// Progress exposes the counters a running scan updates. It may be
// polled from any goroutine while Start is in flight; workers touch it
// with atomic increments only.
type Progress struct {
	files atomic.Uint64
	dirs  atomic.Uint64
	bytes atomic.Uint64
	done  atomic.Bool
}

// Files reports how many non-directory entries have been examined,
// including symlinks and files that did not make it into the tree.
func (p *Progress) Files() uint64 { return p.files.Load() }

// Directories reports how many subdirectories have been discovered.
// The scan root itself is not counted.
func (p *Progress) Directories() uint64 { return p.dirs.Load() }

// Bytes reports the total size of the regular files seen so far.
func (p *Progress) Bytes() uint64 { return p.bytes.Load() }

// Done reports whether the scan has finished, including the directory
// size aggregation pass.
func (p *Progress) Done() bool { return p.done.Load() }

// Reset zeroes the counters and clears the done flag. Start calls it;
// resetting a Progress that a scan is still updating loses counts.
func (p *Progress) Reset() {
	p.files.Store(0)
	p.dirs.Store(0)
	p.bytes.Store(0)
	p.done.Store(false)
}

// DefaultWorkers is the pool size used when New is given a worker
// count below 1.
const DefaultWorkers = 4

// Scanner walks one directory hierarchy into a tree. Create it with
// New, run it with Start, then read the result with Tree. A Scanner is
// single-shot: running Start twice on the same Scanner rescans into
// the same tree and produces duplicate nodes.
type Scanner struct {
	root    string
	workers int

	mu   sync.Mutex
	tree *ntree.Tree[FileInfo]

	progress Progress
}

// New prepares a scanner rooted at dir. The worker count bounds how
// many directories are read concurrently; values below 1 fall back to
// DefaultWorkers.
func New(dir string, workers int) (*Scanner, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan: %s is not a directory", dir)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Scanner{
		root:    dir,
		workers: workers,
		tree:    ntree.New(FileInfo{Name: dir, Type: Directory}),
	}, nil
}

// Tree returns the scanned tree. The head carries the root directory.
// Only read it after Start has returned; while the scan runs the tree
// belongs to the workers.
func (s *Scanner) Tree() *ntree.Tree[FileInfo] {
	return s.tree
}

// Progress returns the scan's counters.
func (s *Scanner) Progress() *Progress {
	return &s.progress
}

// Start runs the scan and blocks until every worker has finished and
// directory sizes have been aggregated bottom-up. Entries that cannot
// be read are logged and skipped; they never abort the scan. The
// returned error is non-nil only when ctx was canceled, in which case
// the tree holds whatever was scanned up to that point.
func (s *Scanner) Start(ctx context.Context) error {
	s.progress.Reset()

	var g errgroup.Group
	g.SetLimit(s.workers)

	s.scanDirectory(ctx, &g, s.root, s.tree.Head())
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	// Workers have quiesced; the tree is ours again.
	aggregateDirectorySizes(s.tree)
	s.progress.done.Store(true)
	return err
}

// scanDirectory reads one directory and fans its subdirectories out to
// the worker pool. When the pool is saturated the subdirectory is
// walked inline on this goroutine instead of queueing, so recursive
// dispatch cannot deadlock on the pool limit.
func (s *Scanner) scanDirectory(ctx context.Context, g *errgroup.Group, dir string, node *ntree.Node[FileInfo]) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.Warnf("scan: skipping %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}

		switch {
		case entry.Type()&os.ModeSymlink != 0:
			s.recordSymlink(entry.Name(), node)
		case entry.IsDir():
			child := s.recordDirectory(entry.Name(), node)
			path := filepath.Join(dir, entry.Name())
			started := g.TryGo(func() error {
				s.scanDirectory(ctx, g, path, child)
				return ctx.Err()
			})
			if !started {
				s.scanDirectory(ctx, g, path, child)
			}
		default:
			s.recordFile(entry, node)
		}
	}
}

// recordFile counts a regular file and appends it to the tree. Files
// whose size cannot be read are logged and skipped; zero-byte files
// are counted but take up no node.
func (s *Scanner) recordFile(entry os.DirEntry, node *ntree.Node[FileInfo]) {
	s.progress.files.Add(1)

	info, err := entry.Info()
	if err != nil {
		logrus.Warnf("scan: skipping %s: %v", entry.Name(), err)
		return
	}
	size := info.Size()
	if size == 0 {
		return
	}
	s.progress.bytes.Add(uint64(size))

	ext := filepath.Ext(entry.Name())
	fi := FileInfo{
		Name:      strings.TrimSuffix(entry.Name(), ext),
		Extension: ext,
		Size:      size,
		Type:      Regular,
	}

	s.mu.Lock()
	node.AppendChild(fi)
	s.mu.Unlock()
}

// recordDirectory appends a directory node and returns it for the
// recursive walk. Its Size stays zero until aggregation.
func (s *Scanner) recordDirectory(name string, node *ntree.Node[FileInfo]) *ntree.Node[FileInfo] {
	s.progress.dirs.Add(1)

	s.mu.Lock()
	child := node.AppendChild(FileInfo{Name: name, Type: Directory})
	s.mu.Unlock()
	return child
}

// recordSymlink appends a leaf for the link itself. Links are never
// followed: a symlinked directory would let one scan visit the same
// files twice, or forever.
func (s *Scanner) recordSymlink(name string, node *ntree.Node[FileInfo]) {
	s.progress.files.Add(1)

	ext := filepath.Ext(name)
	fi := FileInfo{
		Name:      strings.TrimSuffix(name, ext),
		Extension: ext,
		Type:      Symlink,
	}

	s.mu.Lock()
	node.AppendChild(fi)
	s.mu.Unlock()
}

// aggregateDirectorySizes folds every node's size into its parent
// directory. Post-order makes a single pass enough: by the time a
// directory is added to its parent, its own subtotal is already final.
func aggregateDirectorySizes(t *ntree.Tree[FileInfo]) {
	for n := range t.All() {
		parent := n.Parent()
		if parent == nil {
			continue
		}
		if parent.Value.Type == Directory {
			parent.Value.Size += n.Value.Size
		}
	}
}
