package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/tmather/daybook/internal/apperr"
	"github.com/tmather/daybook/internal/storage"
	"github.com/tmather/daybook/internal/template"
)

// Anchor selects the date a journal note is resolved for. An explicit Date
// takes precedence over Offset; with neither set the anchor is now.
// Offset shifts now by days (daily), weeks (weekly), or months (monthly).
type Anchor struct {
	Date   *time.Time
	Offset *int
}

// Provisioner returns existing journal notes or creates them from the
// matching template on first access. Creation never overwrites: requesting
// the same (kind, date) again returns the same path untouched.
type Provisioner struct {
	store          storage.Provider
	engine         *template.Engine
	weekendMinimal bool
	now            func() time.Time
}

// NewProvisioner creates a Provisioner. weekendMinimal skips the full daily
// template on Saturday and Sunday in favour of a bare "# {{date}}" heading.
func NewProvisioner(store storage.Provider, engine *template.Engine, weekendMinimal bool) *Provisioner {
	return &Provisioner{
		store:          store,
		engine:         engine,
		weekendMinimal: weekendMinimal,
		now:            time.Now,
	}
}

// WithClock overrides the clock used for anchor resolution. Intended for tests.
func (p *Provisioner) WithClock(now func() time.Time) *Provisioner {
	p.now = now
	return p
}

// GetOrCreate resolves the anchor date, then returns the note's path,
// creating the file from its template if it does not exist yet.
func (p *Provisioner) GetOrCreate(kind Kind, anchor Anchor) (path string, created bool, err error) {
	date := p.anchorDate(kind, anchor)
	rel, err := PathFor(kind, date)
	if err != nil {
		return "", false, err
	}
	if p.store.Exists(rel) {
		return rel, false, nil
	}

	raw, err := p.templateContent(kind, date.UTC())
	if err != nil {
		return "", false, err
	}

	content := strings.ReplaceAll(raw, "{{date}}", dateLabel(kind, date.UTC()))
	expanded, err := p.engine.Expand(content)
	if err != nil {
		return "", false, err
	}
	if err := p.store.Write(rel, []byte(expanded)); err != nil {
		return "", false, err
	}
	return rel, true, nil
}

func (p *Provisioner) anchorDate(kind Kind, anchor Anchor) time.Time {
	if anchor.Date != nil {
		return *anchor.Date
	}
	now := p.now()
	if anchor.Offset != nil {
		switch kind {
		case Daily:
			return now.AddDate(0, 0, *anchor.Offset)
		case Weekly:
			return now.AddDate(0, 0, *anchor.Offset*7)
		case Monthly:
			return now.AddDate(0, *anchor.Offset, 0)
		}
	}
	return now
}

// templateContent selects the kind-specific template on weekdays. On
// weekends (with the minimal policy active) a bare date heading is used
// instead, so a missing template file is only fatal on a weekday. Weekly
// notes resolve to their Monday first, which is never a weekend, so they
// always load the full template.
func (p *Provisioner) templateContent(kind Kind, date time.Time) (string, error) {
	if kind == Weekly {
		date = MondayOf(date)
	}
	if p.weekendMinimal && isWeekend(date) {
		return "# {{date}}", nil
	}
	rel := filepath.Join("templates", string(kind)+"-note-template.md")
	data, err := p.store.Read(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("journal: template %s: %w", rel, apperr.ErrNotFound)
		}
		return "", err
	}
	return string(data), nil
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// dateLabel renders the {{date}} substitution for a freshly created note.
func dateLabel(kind Kind, date time.Time) string {
	switch kind {
	case Weekly:
		return "Week of " + MondayOf(date).Format(template.DateLayout)
	case Monthly:
		return date.Format("January 2006")
	}
	return date.Format(template.DateLayout)
}
