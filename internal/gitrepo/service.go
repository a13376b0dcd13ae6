// Package gitrepo records published site documents as commits in one git
// repository per project, so every publication can be listed, restored and
// tagged.
package gitrepo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"vitrin/api/internal/persist"
)

const siteFile = "site.json"

var (
	ErrNotPublished   = errors.New("project has no publications")
	ErrInvalidProject = errors.New("invalid project id")
)

type Publication struct {
	Hash        string    `json:"hash"`
	Message     string    `json:"message"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []string  `json:"tags,omitempty"`
	// Unchanged is set when Publish found nothing new to commit.
	Unchanged bool `json:"unchanged,omitempty"`
}

type Service struct {
	baseDir string
	now     func() time.Time
	lockMu  sync.Mutex
	locks   map[string]*sync.Mutex
}

func New(baseDir string) *Service {
	return &Service{
		baseDir: baseDir,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Publish commits rec as site.json on main, creating the repository on first
// use. Publishing an unchanged document returns the current head.
func (s *Service) Publish(projectID string, rec persist.Record, author, message string) (Publication, error) {
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.openOrInit(projectID)
	if err != nil {
		return Publication{}, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return Publication{}, fmt.Errorf("open worktree: %w", err)
	}

	envelope, err := rec.Envelope()
	if err != nil {
		return Publication{}, err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, envelope, "", "  "); err != nil {
		return Publication{}, fmt.Errorf("format %s: %w", siteFile, err)
	}
	pretty.WriteByte('\n')

	if err := os.WriteFile(filepath.Join(worktree.Filesystem.Root(), siteFile), pretty.Bytes(), 0o644); err != nil {
		return Publication{}, fmt.Errorf("write %s: %w", siteFile, err)
	}
	if _, err := worktree.Add(siteFile); err != nil {
		return Publication{}, fmt.Errorf("git add %s: %w", siteFile, err)
	}

	if message == "" {
		message = fmt.Sprintf("Publish %d sections", len(rec.Sections))
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: s.signature(author),
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		head, headErr := repo.Head()
		if headErr != nil {
			return Publication{}, fmt.Errorf("resolve head: %w", headErr)
		}
		commitObj, cErr := repo.CommitObject(head.Hash())
		if cErr != nil {
			return Publication{}, fmt.Errorf("read head commit: %w", cErr)
		}
		pub := toPublication(commitObj, nil)
		pub.Unchanged = true
		return pub, nil
	}
	if err != nil {
		return Publication{}, fmt.Errorf("commit %s: %w", siteFile, err)
	}

	commitObj, err := repo.CommitObject(hash)
	if err != nil {
		return Publication{}, fmt.Errorf("read commit object: %w", err)
	}
	return toPublication(commitObj, nil), nil
}

// History lists publications on main, newest first. A project that was never
// published has an empty history.
func (s *Service) History(projectID string, limit int) ([]Publication, error) {
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.open(projectID)
	if errors.Is(err, ErrNotPublished) {
		return []Publication{}, nil
	}
	if err != nil {
		return nil, err
	}

	ref, err := repo.Reference(plumbing.Main, true)
	if err != nil {
		return nil, fmt.Errorf("resolve main: %w", err)
	}
	tags, err := tagsByCommit(repo)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	items := make([]Publication, 0)
	err = iter.ForEach(func(commitObj *object.Commit) error {
		items = append(items, toPublication(commitObj, tags[commitObj.Hash]))
		if limit > 0 && len(items) >= limit {
			return io.EOF
		}
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("iterate log: %w", err)
	}
	return items, nil
}

// GetByHash returns the document as published in the given commit. Short
// hashes and tag names are accepted.
func (s *Service) GetByHash(projectID, hash string) (persist.Record, Publication, error) {
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.open(projectID)
	if err != nil {
		return persist.Record{}, Publication{}, err
	}
	resolved, err := resolveHash(repo, hash)
	if err != nil {
		return persist.Record{}, Publication{}, err
	}
	commitObj, err := repo.CommitObject(resolved)
	if err != nil {
		return persist.Record{}, Publication{}, fmt.Errorf("read commit %s: %w", hash, err)
	}
	rec, err := readSiteFromCommit(projectID, commitObj)
	if err != nil {
		return persist.Record{}, Publication{}, err
	}
	tags, err := tagsByCommit(repo)
	if err != nil {
		return persist.Record{}, Publication{}, err
	}
	return rec, toPublication(commitObj, tags[commitObj.Hash]), nil
}

// Tag names a publication, e.g. "v1" or "launch". Re-tagging with an existing
// name is a no-op.
func (s *Service) Tag(projectID, hash, name string) error {
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.open(projectID)
	if err != nil {
		return err
	}
	resolved, err := resolveHash(repo, hash)
	if err != nil {
		return err
	}
	_, err = repo.CreateTag(name, resolved, &git.CreateTagOptions{
		Tagger:  s.signature("Vitrin"),
		Message: name,
	})
	if err != nil && !errors.Is(err, git.ErrTagExists) {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// repoPath keeps every repository directly under baseDir.
func (s *Service) repoPath(projectID string) (string, error) {
	if projectID == "" || projectID == "." || projectID == ".." || strings.ContainsAny(projectID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProject, projectID)
	}
	return filepath.Join(s.baseDir, projectID), nil
}

func (s *Service) projectLock(projectID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.locks[projectID]
	if ok {
		return lock
	}
	lock = &sync.Mutex{}
	s.locks[projectID] = lock
	return lock
}

func (s *Service) open(projectID string) (*git.Repository, error) {
	path, err := s.repoPath(projectID)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNotPublished
	}
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	return repo, nil
}

func (s *Service) openOrInit(projectID string) (*git.Repository, error) {
	repo, err := s.open(projectID)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, ErrNotPublished) {
		return nil, err
	}
	path, err := s.repoPath(projectID)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create repo dir: %w", err)
	}
	repo, err = git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		return nil, fmt.Errorf("init repo: %w", err)
	}
	return repo, nil
}

func (s *Service) signature(name string) *object.Signature {
	if name == "" {
		name = "Vitrin"
	}
	return &object.Signature{
		Name:  name,
		Email: fmt.Sprintf("%s@vitrin.local", sanitizeEmail(name)),
		When:  s.now(),
	}
}

func tagsByCommit(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer iter.Close()

	out := make(map[plumbing.Hash][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tagObj, err := repo.TagObject(target); err == nil {
			target = tagObj.Target
		}
		out[target] = append(out[target], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return out, nil
}

func readSiteFromCommit(projectID string, commitObj *object.Commit) (persist.Record, error) {
	file, err := commitObj.File(siteFile)
	if err != nil {
		return persist.Record{}, fmt.Errorf("load %s from commit: %w", siteFile, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return persist.Record{}, fmt.Errorf("read %s: %w", siteFile, err)
	}
	return persist.DecodeRecord(projectID, []byte(contents), commitObj.Author.When)
}

func toPublication(commitObj *object.Commit, tags []string) Publication {
	return Publication{
		Hash:        commitObj.Hash.String()[:7],
		Message:     commitObj.Message,
		Author:      commitObj.Author.Name,
		PublishedAt: commitObj.Author.When,
		Tags:        tags,
	}
}

func sanitizeEmail(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
			continue
		}
		if r == ' ' || r == '-' || r == '_' {
			out = append(out, '.')
		}
	}
	if len(out) == 0 {
		return "user"
	}
	return string(out)
}

func resolveHash(repo *git.Repository, hash string) (plumbing.Hash, error) {
	if len(hash) == 40 {
		return plumbing.NewHash(hash), nil
	}
	resolved, err := repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve hash %s: %w", hash, err)
	}
	return *resolved, nil
}
