package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"mcarve/internal/locale"
	"mcarve/internal/stages/generate"
	"mcarve/internal/stages/reproject"
)

// progressRenderer draws per-stage progress bars on interactive terminals.
// On non-terminal output it stays silent; structured logs carry the same
// information there.
type progressRenderer struct {
	out         io.Writer
	interactive bool

	mu    sync.Mutex
	bar   *progressbar.ProgressBar
	total int
}

func newProgressRenderer(out io.Writer) *progressRenderer {
	return &progressRenderer{out: out, interactive: isTerminal(out)}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *progressRenderer) reprojectCallback(catalog locale.Catalog) func(reproject.Progress) {
	label := catalog.Get(locale.KeyReprojecting)
	done := catalog.Get(locale.KeyComplete)
	return func(progress reproject.Progress) {
		p.advance(label, done, progress.Done, progress.Total)
	}
}

func (p *progressRenderer) generateCallback(catalog locale.Catalog) func(generate.Progress) {
	label := catalog.Get(locale.KeyGenerating)
	done := catalog.Get(locale.KeyComplete)
	return func(progress generate.Progress) {
		p.advance(label, done, progress.DoneBatches, progress.TotalBatches)
	}
}

func (p *progressRenderer) advance(label, doneLabel string, done, total int) {
	if !p.interactive || total <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil || p.total != total {
		p.bar = newStageBar(p.out, label, total)
		p.total = total
	}
	_ = p.bar.Set(done)

	if done >= total {
		_ = p.bar.Finish()
		fmt.Fprintf(p.out, "%s %s\n", color.GreenString("✓"), doneLabel)
		p.bar = nil
		p.total = 0
	}
}

func newStageBar(out io.Writer, label string, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(0),
	)
}
