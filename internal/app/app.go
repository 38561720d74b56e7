package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/patrickprogramme/subformat/internal/clipboard"
	"github.com/patrickprogramme/subformat/internal/config"
	"github.com/patrickprogramme/subformat/internal/fetch"
	"github.com/patrickprogramme/subformat/internal/fsutil"
	"github.com/patrickprogramme/subformat/internal/source"
	"github.com/patrickprogramme/subformat/internal/ui"
	"github.com/patrickprogramme/subformat/pkg/formatters"
	"github.com/patrickprogramme/subformat/pkg/model"
)

const (
	// StdinInput désigne l'entrée standard parmi les entrées.
	StdinInput = "-"

	batchBaseName = "transcripts"
)

var (
	ErrNoTranscript = errors.New("aucun transcript à formater")
	// ErrOutPathMultiple : --out ne peut recevoir qu'un seul rendu.
	ErrOutPathMultiple = errors.New("--out demande un seul rendu (utiliser --batch ou une seule entrée)")
)

// RenderOptions contient les informations venant des flags de la commande render.
type RenderOptions struct {
	Inputs    []string // fichiers, URLs ou "-" ; vide -> stdin
	Format    string   // "" -> default_format de la config
	OutPath   string   // fichier de sortie explicite
	Batch     bool     // un seul document pour toutes les entrées
	Clipboard bool     // copie du rendu dans le presse-papier
	Stdout    bool     // force stdout même si save_to_file est actif
	Hint      source.Hint
}

// Output est un rendu prêt à être écrit.
type Output struct {
	BaseName string
	Ext      string
	Content  string
}

// App orchestre les différentes dépendances (UI, lecture, formatters, FS, presse-papier).
type App struct {
	cfg    *config.Config
	ui     ui.Interface
	log    hclog.Logger
	loader formatters.Loader
	clip   clipboard.Writer
	stdin  io.Reader
}

// Option modifie une dépendance par défaut de App (tests surtout).
type Option func(*App)

// WithClipboard remplace le presse-papier système.
func WithClipboard(w clipboard.Writer) Option {
	return func(a *App) { a.clip = w }
}

// WithStdin remplace l'entrée standard.
func WithStdin(r io.Reader) Option {
	return func(a *App) { a.stdin = r }
}

// New construit l'application en initialisant les dépendances par défaut.
func New(cfg *config.Config, uiClient ui.Interface, log hclog.Logger, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	a := &App{
		cfg:    cfg,
		ui:     uiClient,
		log:    log.Named("app"),
		loader: formatters.NewLoader(),
		clip:   clipboard.System{},
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run exécute le flux principal : lecture, rendu, écriture, presse-papier.
func (a *App) Run(ctx context.Context, opts RenderOptions) error {
	ts, err := a.LoadInputs(ctx, opts.Inputs, opts.Hint)
	if err != nil {
		return err
	}

	outputs, err := a.Render(ts, opts)
	if err != nil {
		return err
	}

	if err := a.write(ctx, outputs, opts); err != nil {
		return err
	}

	if opts.Clipboard || a.cfg.CopyToClipboard {
		a.copyToClipboard(ctx, outputs)
	}
	return nil
}

// LoadInputs lit toutes les entrées dans l'ordre donné.
func (a *App) LoadInputs(ctx context.Context, inputs []string, hint source.Hint) ([]model.FetchedTranscript, error) {
	if len(inputs) == 0 {
		inputs = []string{StdinInput}
	}
	reader := source.NewReader(a.log, hint)
	timeout := time.Duration(a.cfg.Fetch.TimeoutSec) * time.Second

	var all []model.FetchedTranscript
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			ts  []model.FetchedTranscript
			err error
		)
		switch {
		case in == StdinInput:
			ts, err = reader.Read(a.stdin)
		case fetch.IsURL(in):
			ts, err = reader.FetchURL(ctx, in, timeout, a.cfg.Fetch.MaxBytes)
		default:
			ts, err = reader.ReadFile(in)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, fmt.Errorf("opération annulée : %w", err)
			}
			return nil, err
		}
		a.log.Debug("entrée lue", "input", in, "transcripts", len(ts))
		all = append(all, ts...)
	}

	if len(all) == 0 {
		return nil, ErrNoTranscript
	}
	return all, nil
}

// Render formate ts selon opts : un rendu par transcript, ou un seul en mode batch.
func (a *App) Render(ts []model.FetchedTranscript, opts RenderOptions) ([]Output, error) {
	if len(ts) == 0 {
		return nil, ErrNoTranscript
	}

	name := opts.Format
	if strings.TrimSpace(name) == "" {
		name = a.cfg.DefaultFormat
	}
	format, err := formatters.ParseName(name)
	if err != nil {
		return nil, err
	}
	f, err := a.loader.LoadFormat(format)
	if err != nil {
		return nil, err
	}
	ext := format.Extension()

	if opts.Batch {
		content, err := f.FormatTranscripts(ts)
		if err != nil {
			return nil, fmt.Errorf("rendu %s : %w", format, err)
		}
		base := batchBaseName
		if len(ts) == 1 {
			base = fsutil.OutputBaseName(ts[0].VideoID, ts[0].LanguageCode)
		}
		return []Output{{BaseName: base, Ext: ext, Content: content}}, nil
	}

	outputs := make([]Output, 0, len(ts))
	for i, t := range ts {
		content, err := f.FormatTranscript(t)
		if err != nil {
			return nil, fmt.Errorf("rendu %s du transcript %d (%s) : %w", format, i, t.VideoID, err)
		}
		outputs = append(outputs, Output{
			BaseName: fsutil.OutputBaseName(t.VideoID, t.LanguageCode),
			Ext:      ext,
			Content:  content,
		})
	}
	a.log.Debug("rendu terminé", "format", format, "outputs", len(outputs))
	return outputs, nil
}

func (a *App) write(ctx context.Context, outputs []Output, opts RenderOptions) error {
	switch {
	case opts.Stdout:
		return a.writeStdout(ctx, outputs)
	case opts.OutPath != "":
		if len(outputs) != 1 {
			return ErrOutPathMultiple
		}
		if err := fsutil.WriteFileAtomic(opts.OutPath, []byte(outputs[0].Content), 0o644); err != nil {
			return fmt.Errorf("écriture de %s : %w", opts.OutPath, err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Rendu écrit dans %s", opts.OutPath))
		return nil
	case a.cfg.SaveToFile:
		return a.saveFiles(ctx, outputs)
	default:
		return a.writeStdout(ctx, outputs)
	}
}

func (a *App) writeStdout(ctx context.Context, outputs []Output) error {
	for i, out := range outputs {
		if i > 0 {
			if err := a.ui.WriteOutput(ctx, formatters.TranscriptSeparator); err != nil {
				return err
			}
		}
		if err := a.ui.WriteOutput(ctx, out.Content); err != nil {
			return err
		}
	}
	// text, json et pretty ne finissent pas par un saut de ligne
	if n := len(outputs); n > 0 && !strings.HasSuffix(outputs[n-1].Content, "\n") {
		return a.ui.WriteOutput(ctx, "\n")
	}
	return nil
}

func (a *App) saveFiles(ctx context.Context, outputs []Output) error {
	for _, out := range outputs {
		dir := a.cfg.OutputDir
		if a.cfg.SaveInSubdir {
			dir = filepath.Join(dir, out.BaseName)
		}
		path, err := fsutil.SaveAtomic(dir, out.BaseName, out.Ext, []byte(out.Content), a.cfg.Overwrite)
		if err != nil {
			return fmt.Errorf("sauvegarde de %s : %w", out.BaseName, err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Rendu écrit dans %s", path))
	}
	return nil
}

// copyToClipboard copie l'ensemble des rendus ; un échec n'est qu'un avertissement.
func (a *App) copyToClipboard(ctx context.Context, outputs []Output) {
	parts := make([]string, len(outputs))
	for i, out := range outputs {
		parts[i] = out.Content
	}
	if err := a.clip.WriteAll(strings.Join(parts, formatters.TranscriptSeparator)); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible : %v", err))
		return
	}
	a.ui.PrintInfo(ctx, "Rendu copié dans le presse-papier.")
}
