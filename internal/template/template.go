// Package template expands {{date}} and recursive {{> name}} include
// directives within note content, preserving indentation.
package template

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tmather/daybook/internal/apperr"
	"github.com/tmather/daybook/internal/storage"
)

// DateLayout is the long human-readable date form used for {{date}}.
const DateLayout = "Mon Jan 02 2006"

// includeRe matches an include directive together with its leading
// whitespace, e.g. "  {{> checklist }}". The whitespace is re-applied to
// every line of the included content.
var includeRe = regexp.MustCompile(`([ \t]*)\{\{>\s*(.+?)\}\}`)

// Resolver maps a template name to its content. The second return value
// reports whether the name resolved; an unresolved include is left in
// place verbatim.
type Resolver func(name string) (content string, ok bool)

// FileResolver resolves template names to files under templates/<name>.md
// relative to the storage root.
func FileResolver(store storage.Provider) Resolver {
	return func(name string) (string, bool) {
		data, err := store.Read(filepath.Join("templates", name+".md"))
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}

// Engine performs template expansion against a fixed resolver.
type Engine struct {
	resolve Resolver
	now     func() time.Time
}

// New creates an Engine. A nil resolver leaves every include untouched.
func New(resolve Resolver) *Engine {
	return &Engine{resolve: resolve, now: time.Now}
}

// WithClock overrides the clock used for {{date}}. Intended for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Expand substitutes {{date}} with today's date in long form and splices
// included templates recursively. Revisiting a template name within one
// expansion fails with apperr.ErrCyclicInclude.
func (e *Engine) Expand(content string) (string, error) {
	return e.expand(content, map[string]struct{}{})
}

func (e *Engine) expand(content string, visiting map[string]struct{}) (string, error) {
	out := strings.ReplaceAll(content, "{{date}}", e.now().Format(DateLayout))

	var expandErr error
	out = includeRe.ReplaceAllStringFunc(out, func(match string) string {
		if expandErr != nil {
			return match
		}
		sub := includeRe.FindStringSubmatch(match)
		indent, name := sub[1], strings.TrimSpace(sub[2])

		if _, seen := visiting[name]; seen {
			expandErr = fmt.Errorf("template: include %q: %w", name, apperr.ErrCyclicInclude)
			return match
		}
		if e.resolve == nil {
			return match
		}
		body, ok := e.resolve(name)
		if !ok {
			return match
		}

		visiting[name] = struct{}{}
		expanded, err := e.expand(body, visiting)
		delete(visiting, name)
		if err != nil {
			expandErr = err
			return match
		}

		// The captured whitespace is absorbed into the per-line prefix,
		// not duplicated in front of the block.
		lines := strings.Split(expanded, "\n")
		for i := range lines {
			lines[i] = indent + lines[i]
		}
		return strings.Join(lines, "\n")
	})
	if expandErr != nil {
		return "", expandErr
	}
	return out, nil
}
