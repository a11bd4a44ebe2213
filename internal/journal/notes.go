package journal

import (
	"path/filepath"
	"time"
)

// PostFilename renders the timestamped filename used for posts and
// unnamed notes.
func PostFilename(t time.Time) string {
	return t.Format("2006-01-02_15-04-05_-0700") + ".md"
}

// CreatePost creates a timestamped post under dir (default posts/) with the
// given content, run through the template engine. Returns the path.
func (p *Provisioner) CreatePost(dir, content string) (string, error) {
	if dir == "" {
		dir = "posts"
	}
	rel := filepath.Join(dir, PostFilename(p.now()))
	return p.createFile(rel, content)
}

// CreateNote creates notes/<name>.md, or a timestamped note when name is
// empty. An existing note is returned untouched.
func (p *Provisioner) CreateNote(name string) (string, error) {
	filename := PostFilename(p.now())
	if name != "" {
		filename = name + ".md"
	}
	return p.createFile(filepath.Join("notes", filename), "")
}

// createFile writes the expanded content only when the file does not
// already exist.
func (p *Provisioner) createFile(rel, content string) (string, error) {
	if p.store.Exists(rel) {
		return rel, nil
	}
	expanded, err := p.engine.Expand(content)
	if err != nil {
		return "", err
	}
	if err := p.store.Write(rel, []byte(expanded)); err != nil {
		return "", err
	}
	return rel, nil
}
