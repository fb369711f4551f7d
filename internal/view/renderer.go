package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageForm  = "form.html"
	PageChart = "chart.html"
)

// Renderer executes page templates. Each render owns a render context for
// its whole lifetime and gives it back when it returns, whatever the outcome.
type Renderer struct {
	pages  map[string]*template.Template
	pool   sync.Pool
	active atomic.Int64
	log    *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		pool: sync.Pool{
			New: func() any { return new(bytes.Buffer) },
		},
		log: log.With(zap.String("component", "view")),
	}

	for _, page := range []string{PageForm, PageChart} {
		tmpl, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// renderContext is the scratch space a single render draws into
type renderContext struct {
	buf      *bytes.Buffer
	owner    *Renderer
	released atomic.Bool
}

func (r *Renderer) acquire() *renderContext {
	buf := r.pool.Get().(*bytes.Buffer)
	buf.Reset()
	r.active.Add(1)
	return &renderContext{buf: buf, owner: r}
}

// Release returns the context to its renderer. Safe to call more than once.
func (c *renderContext) Release() {
	if !c.released.CompareAndSwap(false, true) {
		return
	}
	c.owner.active.Add(-1)
	c.owner.pool.Put(c.buf)
	c.buf = nil
}

// Active reports how many render contexts are currently held
func (r *Renderer) Active() int64 {
	return r.active.Load()
}

// Render executes page into a private buffer and only writes it out when the
// template succeeded, so a failed render never leaves half a page behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	rc := r.acquire()
	defer rc.Release()

	if err := tmpl.ExecuteTemplate(rc.buf, "layout", data); err != nil {
		r.log.Error("Failed to render page", zap.String("page", page), zap.Error(err))
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := rc.buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", page, err)
	}
	return nil
}
