package imaging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/scanworks/scanvault/constants"
)

// PageImage is one rendered page of a document. Numbers start at 1.
type PageImage struct {
	Number int
	Path   string
}

// Config holds rendering knobs. Zero values fall back to sane defaults.
type Config struct {
	Pdftoppm string // rasterizer binary
	DPI      int
	MaxPages int    // 0 = no cap
	TmpDir   string // "" = system temp dir
}

// Preparer turns a stored document into ordered page images.
type Preparer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewPreparer(cfg Config, runner Runner, logger *slog.Logger) *Preparer {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	return &Preparer{cfg: cfg, runner: runner, logger: logger}
}

// Prepare renders path into page images. The cleanup func removes any
// temporary files and is always safe to call.
func (p *Preparer) Prepare(ctx context.Context, path string, kind constants.FileKind) ([]PageImage, func(), error) {
	noop := func() {}
	switch kind {
	case constants.IMAGE:
		// a standalone image is its own single page
		return []PageImage{{Number: 1, Path: path}}, noop, nil
	case constants.PDF:
		return p.rasterize(ctx, path)
	default:
		return nil, noop, fmt.Errorf("unsupported file kind %q", kind)
	}
}

func (p *Preparer) rasterize(ctx context.Context, path string) ([]PageImage, func(), error) {
	noop := func() {}

	// The count doubles as a structural check: a corrupt PDF fails here
	// before any rendering work.
	total, err := PageCount(path)
	if err != nil {
		return nil, noop, err
	}
	last := total
	if p.cfg.MaxPages > 0 && last > p.cfg.MaxPages {
		last = p.cfg.MaxPages
		p.logger.Warn("capping pdf rendering", "path", path, "pages", total, "rendered", last)
	}

	if p.cfg.TmpDir != "" {
		if err := os.MkdirAll(p.cfg.TmpDir, 0o755); err != nil {
			return nil, noop, err
		}
	}
	tmpDir, err := os.MkdirTemp(p.cfg.TmpDir, "sv-pages-*")
	if err != nil {
		return nil, noop, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			p.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -f 1 -l <last> -png <in.pdf> <tmp/page>
	_, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm,
		"-r", strconv.Itoa(p.cfg.DPI), "-f", "1", "-l", strconv.Itoa(last), "-png", path, prefix)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("rasterize: %w", err)
	}

	// pdftoppm zero-pads page numbers, so a lexical sort yields page order
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		cleanup()
		return nil, noop, fmt.Errorf("no pages rendered: %s", Truncate(string(errb), 512))
	}

	pages := make([]PageImage, len(matches))
	for i, m := range matches {
		pages[i] = PageImage{Number: i + 1, Path: m}
	}
	return pages, cleanup, nil
}
