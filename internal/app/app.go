// Package app implements the application layer for pgconfig.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/telemetry"
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/Guardsquare/proguard-sub005/internal/ui/output"
	"github.com/Guardsquare/proguard-sub005/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader        ports.ConfigLoader
	renderer      ports.RecordRenderer
	fingerprinter ports.Fingerprinter
	verifier      ports.FileVerifier
	watcher       ports.Watcher
	tracer        ports.Tracer
	logger        ports.Logger
	out           io.Writer
	provider      *sdktrace.TracerProvider
}

// New creates a new App instance writing results to standard output.
func New(
	loader ports.ConfigLoader,
	renderer ports.RecordRenderer,
	fingerprinter ports.Fingerprinter,
	verifier ports.FileVerifier,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		loader:        loader,
		renderer:      renderer,
		fingerprinter: fingerprinter,
		verifier:      verifier,
		watcher:       watcher,
		tracer:        tracer,
		logger:        log,
		out:           os.Stdout,
	}
}

// WithOutput sets the writer that command results are written to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Settings holds process-wide options applied before any command runs.
type Settings struct {
	// JSONLog switches the logger to JSON output.
	JSONLog bool
	// Timings reports how long each operation took through the logger.
	Timings bool
}

// Configure applies settings. It must be called at most once, before any command.
func (a *App) Configure(s Settings) {
	a.logger.SetJSON(s.JSONLog)
	if s.Timings {
		a.provider = telemetry.Install(a.logger)
	}
}

// Close flushes pending spans and releases the tracer provider installed by Configure.
func (a *App) Close(ctx context.Context) error {
	err := a.tracer.Shutdown(ctx)
	if a.provider != nil {
		err = errors.Join(err, a.provider.Shutdown(ctx))
		a.provider = nil
	}
	return err
}

// Source identifies the task document a command operates on.
type Source struct {
	// Path is the task document to load.
	Path string
	// FollowIncludes loads referenced YAML documents into the same configuration.
	FollowIncludes bool
}

// Show writes the resolved configuration as YAML.
func (a *App) Show(ctx context.Context, src Source) (err error) {
	ctx, span := a.tracer.Start(ctx, "show")
	defer func() { endSpan(span, err) }()

	rec, err := a.load(ctx, src)
	if err != nil {
		return err
	}
	return a.renderer.Render(a.out, rec)
}

// InputsOptions configures the Inputs method.
type InputsOptions struct {
	// Check fails when any listed file does not exist.
	Check bool
}

// Inputs lists every file the configuration reads, one per line.
func (a *App) Inputs(ctx context.Context, src Source, opts InputsOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "inputs", ports.WithAttribute("check", opts.Check))
	defer func() { endSpan(span, err) }()

	rec, err := a.load(ctx, src)
	if err != nil {
		return err
	}

	files := rec.InputFiles()
	span.SetAttribute("files", len(files))
	if err := a.printLines(files); err != nil {
		return err
	}
	if !opts.Check {
		return nil
	}

	missing, err := a.verifier.Missing(files)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return zerr.With(domain.ErrMissingInputs, "missing", strings.Join(missing, ", "))
	}
	return nil
}

// Outputs lists every file the configuration writes, one per line.
func (a *App) Outputs(ctx context.Context, src Source) (err error) {
	ctx, span := a.tracer.Start(ctx, "outputs")
	defer func() { endSpan(span, err) }()

	rec, err := a.load(ctx, src)
	if err != nil {
		return err
	}

	files := rec.OutputFiles()
	span.SetAttribute("files", len(files))
	return a.printLines(files)
}

// FingerprintOptions configures the Fingerprint and Watch methods.
type FingerprintOptions struct {
	// Contents also hashes the contents of every input file.
	Contents bool
}

// Fingerprint writes a stable digest of the resolved configuration.
func (a *App) Fingerprint(ctx context.Context, src Source, opts FingerprintOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "fingerprint", ports.WithAttribute("contents", opts.Contents))
	defer func() { endSpan(span, err) }()

	rec, err := a.load(ctx, src)
	if err != nil {
		return err
	}

	digest, err := a.fingerprint(ctx, rec, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, digest)
	return err
}

// Watch prints the fingerprint of the configuration and reprints it whenever
// one of its task documents changes. It returns when ctx is canceled.
// A document that fails to load is reported and the previous file set stays watched.
func (a *App) Watch(ctx context.Context, src Source, opts FingerprintOptions) error {
	digest, err := a.reload(ctx, src, opts)
	if err != nil {
		return err
	}

	r := output.NewRenderer(a.out)
	a.printDigest(r, digest, len(a.loader.Sources()))

	if err := a.watcher.Start(ctx, a.loader.Sources()); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	for batch := range a.watcher.Events() {
		for _, event := range batch {
			a.printLine(r, style.Change, style.Tilde, style.Muted.Renderer(r).Render(
				fmt.Sprintf("%s (%s)", event.Path, event.Operation),
			))
		}

		next, err := a.reload(ctx, src, opts)
		if err != nil {
			a.printLine(r, style.Failure, style.Cross, "reload failed")
			a.logger.Error(err)
			continue
		}

		if next == digest {
			a.printLine(r, style.Success, style.Check, style.Muted.Renderer(r).Render("unchanged"))
		} else {
			digest = next
			a.printDigest(r, digest, len(a.loader.Sources()))
		}

		if err := a.watcher.SetFiles(a.loader.Sources()); err != nil {
			a.logger.Error(err)
		}
	}
	return nil
}

func (a *App) reload(ctx context.Context, src Source, opts FingerprintOptions) (_ string, err error) {
	ctx, span := a.tracer.Start(ctx, "reload")
	defer func() { endSpan(span, err) }()

	rec, err := a.load(ctx, src)
	if err != nil {
		return "", err
	}
	return a.fingerprint(ctx, rec, opts)
}

func (a *App) load(ctx context.Context, src Source) (_ *domain.Record, err error) {
	ctx, span := a.tracer.Start(ctx, "load", ports.WithAttribute("path", src.Path))
	defer func() { endSpan(span, err) }()

	cfg, err := a.loader.Load(ctx, src.Path, ports.LoadOptions{FollowIncludes: src.FollowIncludes})
	if err != nil {
		return nil, err
	}
	span.SetAttribute("documents", len(a.loader.Sources()))
	return cfg.Freeze(), nil
}

func (a *App) fingerprint(ctx context.Context, rec *domain.Record, opts FingerprintOptions) (string, error) {
	if opts.Contents {
		return a.fingerprinter.FingerprintInputs(ctx, rec)
	}
	return a.fingerprinter.Fingerprint(rec)
}

func (a *App) printLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) printDigest(r *lipgloss.Renderer, digest string, documents int) {
	a.printLine(r, style.Success, style.Check, fmt.Sprintf("%s %s",
		style.Digest.Renderer(r).Render(digest),
		style.Muted.Renderer(r).Render(documentCount(documents)),
	))
}

func documentCount(n int) string {
	if n == 1 {
		return "(1 document)"
	}
	return fmt.Sprintf("(%d documents)", n)
}

func (a *App) printLine(r *lipgloss.Renderer, icon lipgloss.Style, glyph, text string) {
	_, _ = fmt.Fprintf(a.out, "%s %s\n", icon.Renderer(r).Render(glyph), text)
}

func endSpan(span ports.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
