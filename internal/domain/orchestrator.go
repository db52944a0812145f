package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/mouse-blink/loccy/internal/adapter"
	"github.com/mouse-blink/loccy/internal/domain/classifier"
	m "github.com/mouse-blink/loccy/internal/model"
)

// sniffLength bounds the head handed to content based language detection.
const sniffLength = 512

// CountOptions tune the per-file gate.
type CountOptions struct {
	// MaxFileSize skips files larger than this many bytes; 0 disables the check.
	MaxFileSize int64
}

// FileResult is the outcome for one candidate file. At most one of Tally and
// Skip is set; neither means the file is not recognized as source code.
// Hash is the content digest of a tallied file.
type FileResult struct {
	Path  m.Path
	Hash  string
	Tally *m.FileTally
	Skip  *m.Skip
}

// Ignored reports whether the file was not recognized at all.
func (r FileResult) Ignored() bool {
	return r.Tally == nil && r.Skip == nil
}

// Orchestrator runs one file through the gate, the classifier and the tally.
type Orchestrator interface {
	CountFile(ctx context.Context, path m.Path, opts CountOptions) (FileResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	decoder   adapter.TextDecoder
	registry  *Registry
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter, text decoder and language registry.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, decoder adapter.TextDecoder, registry *Registry) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		decoder:   decoder,
		registry:  registry,
	}
}

func (o *orchestrator) CountFile(ctx context.Context, path m.Path, opts CountOptions) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}

	result := FileResult{Path: path}

	lang, known := o.registry.Lookup(path)
	if !known && !o.registry.Sniffable(path) {
		return result, nil
	}

	// Until sniffing succeeds an extension-less file is not source code, so
	// gate failures leave it ignored instead of skipped.
	skip := func(reason m.SkipReason, detail string) (FileResult, error) {
		if !known {
			return result, nil
		}

		return o.skip(result, reason, detail), nil
	}

	info, err := o.fsAdapter.FileInfo(path)
	if err != nil {
		return skip(m.SkipUnreadable, err.Error())
	}

	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		return skip(m.SkipTooLarge, fmt.Sprintf("%s exceeds %s",
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(opts.MaxFileSize))))
	}

	raw, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return skip(m.SkipUnreadable, err.Error())
	}

	if !known {
		lang, known = o.registry.Detect(path, head(raw))
		if !known {
			return result, nil
		}
	}

	text, err := o.decoder.Decode(raw)
	if err != nil {
		if errors.Is(err, adapter.ErrBinary) {
			return o.skip(result, m.SkipBinary, ""), nil
		}

		return o.skip(result, m.SkipUndecodable, err.Error()), nil
	}

	cls, err := classifier.New(lang.Family)
	if err != nil {
		return FileResult{}, fmt.Errorf("classify %s as %s: %w", path, lang.Name, err)
	}

	tally := CountLines(text, cls)
	tally.Path = path
	tally.Language = lang.Name

	if cls.Open() {
		slog.Debug("file ends inside an unterminated comment", "path", path, "language", lang.Name)
	}

	result.Tally = &tally
	result.Hash = contentHash(raw)

	return result, nil
}

func (o *orchestrator) skip(result FileResult, reason m.SkipReason, detail string) FileResult {
	slog.Debug("skipping file", "path", result.Path, "reason", reason, "detail", detail)

	result.Skip = &m.Skip{Path: result.Path, Reason: reason, Detail: detail}

	return result
}

func head(raw []byte) []byte {
	if len(raw) > sniffLength {
		return raw[:sniffLength]
	}

	return raw
}

func contentHash(raw []byte) string {
	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:])
}
