// Package resolver applies the filename-evolution predicates against a
// directory listing and turns a single-argument rename request into at most
// one filesystem rename.
//
// The protocol is: resolve the target path, refuse early if the destination
// already exists, scan the directory for regular-file entries related to
// the target under match.Evolved, then decide by candidate count. Zero
// candidates and two-or-more candidates both refuse; ambiguity is never
// resolved by guessing.
package resolver

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/harrison/rn/internal/match"
)

// Rename is the resolved outcome: exactly one source renamed to the target.
type Rename struct {
	Source    string // source filename
	Target    string // destination filename
	SourceURL string // full source location
	TargetURL string // full destination location
}

// String renders the confirmation form "source → target".
func (r *Rename) String() string {
	return r.Source + " → " + r.Target
}

// Resolver finds the unique directory entry a rename target refers to and
// performs the rename. It holds no per-call state: every resolution is a
// function of the directory passed in, so callers can point it at a real
// directory or an in-memory mem:// fixture.
type Resolver struct {
	fs      afs.Service
	related match.Predicate
	exclude []string
}

// New returns a Resolver over the given filesystem service. exclude lists
// glob patterns for entries the scan never considers as candidates; a
// malformed pattern is an error.
func New(fs afs.Service, exclude ...string) (*Resolver, error) {
	for _, pattern := range exclude {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}
	return &Resolver{
		fs:      fs,
		related: match.Evolved,
		exclude: exclude,
	}, nil
}

// SplitTarget splits a user-supplied target into its containing directory
// and bare filename. Relative directory components resolve against workDir,
// and the returned directory is canonicalized to an absolute path.
func SplitTarget(workDir, target string) (dir, name string, err error) {
	dir, name = filepath.Split(target)
	if name == "" || name == "." || name == ".." {
		return "", "", &Error{Kind: KindInvalidPath, Target: target}
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", &Error{Kind: KindDirectoryUnreadable, Target: target, Err: err}
	}
	return abs, name, nil
}

// Resolve runs the full protocol for a target that may embed a directory
// path, renaming the single qualifying entry to the target when exactly one
// exists. It performs at most one rename per call; under force an existing
// destination is replaced by that rename.
func (r *Resolver) Resolve(ctx context.Context, workDir, target string, force bool) (*Rename, error) {
	dir, name, err := SplitTarget(workDir, target)
	if err != nil {
		return nil, err
	}
	return r.ResolveIn(ctx, dir, name, force)
}

// ResolveIn runs the protocol inside one already-resolved directory. dirURL
// may use any scheme the filesystem service understands.
func (r *Resolver) ResolveIn(ctx context.Context, dirURL, name string, force bool) (*Rename, error) {
	targetURL := url.Join(dirURL, name)

	// The collision check comes before the scan: the clearest refusal
	// first, and no wasted directory read. Under force the existing
	// destination is remembered so the rename can replace it.
	exists, err := r.fs.Exists(ctx, targetURL)
	if err != nil {
		return nil, &Error{Kind: KindDirectoryUnreadable, Target: name, Err: err}
	}
	if exists && !force {
		return nil, &Error{Kind: KindTargetExists, Target: name}
	}

	candidates, err := r.scan(ctx, dirURL, name)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return nil, &Error{Kind: KindNoMatch, Target: name}
	case 1:
		rename := &Rename{
			Source:    candidates[0],
			Target:    name,
			SourceURL: url.Join(dirURL, candidates[0]),
			TargetURL: targetURL,
		}
		// Move does not overwrite an existing destination; a forced
		// rename clears it first.
		if exists {
			if err := r.fs.Delete(ctx, targetURL); err != nil {
				return nil, &Error{Kind: KindRenameFailed, Target: name, Err: err}
			}
		}
		if err := r.fs.Move(ctx, rename.SourceURL, rename.TargetURL); err != nil {
			return nil, &Error{Kind: KindRenameFailed, Target: name, Err: err}
		}
		return rename, nil
	default:
		return nil, &Error{Kind: KindAmbiguous, Target: name, Candidates: candidates}
	}
}

// scan lists dirURL and returns, in listing order, every regular-file entry
// whose name relates to target. A listing error aborts the whole scan;
// partial results would make the ambiguity decision unreliable.
func (r *Resolver) scan(ctx context.Context, dirURL, target string) ([]string, error) {
	objects, err := r.fs.List(ctx, dirURL)
	if err != nil {
		return nil, &Error{Kind: KindDirectoryUnreadable, Target: target, Err: err}
	}

	var candidates []string
	for _, object := range objects {
		// Regularity is the inclusion filter: directories, symlinks and
		// other special entries are never candidates.
		if object.IsDir() || !object.Mode().IsRegular() {
			continue
		}
		entry := object.Name()
		// A rename never considers itself a candidate.
		if entry == target || r.excluded(entry) {
			continue
		}
		if r.related(entry, target) {
			candidates = append(candidates, entry)
		}
	}
	return candidates, nil
}

// excluded reports whether entry matches one of the configured exclude
// globs. Patterns are validated in New, so Match cannot fail here.
func (r *Resolver) excluded(entry string) bool {
	for _, pattern := range r.exclude {
		if ok, _ := path.Match(pattern, entry); ok {
			return true
		}
	}
	return false
}
