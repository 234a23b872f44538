package scanner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner/cache"
	"github.com/stackvity/ftdetect/pkg/scanner/encoding"
	"github.com/stackvity/ftdetect/pkg/scanner/language"
)

// FileProcessor determines the type of a single file.
type FileProcessor struct {
	opts            *Options
	logger          *slog.Logger
	hooks           Hooks
	cacheManager    cache.Manager
	langDetector    language.Detector
	encodingHandler encoding.Handler
	configHash      string
}

// NewFileProcessor creates a new FileProcessor. The dependencies must be non-nil.
func NewFileProcessor(
	opts *Options,
	loggerHandler slog.Handler,
	cacheMgr cache.Manager,
	langDet language.Detector,
	encHandler encoding.Handler,
) *FileProcessor {
	logger := slog.New(loggerHandler).With(slog.String("component", "processor"))

	configHash, err := calculateConfigHash(opts)
	if err != nil {
		logger.Error("Failed to calculate config hash, caching will be ineffective", slog.String("error", err.Error()))
		configHash = ""
	}
	hooks := opts.EventHooks
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	return &FileProcessor{
		opts:            opts,
		logger:          logger,
		hooks:           hooks,
		cacheManager:    cacheMgr,
		langDetector:    langDet,
		encodingHandler: encHandler,
		configHash:      configHash,
	}
}

// ProcessFile runs the pipeline for one file. result is a FileResult,
// SkippedInfo or ErrorInfo. err is non-nil exactly when status is StatusFailed.
func (p *FileProcessor) ProcessFile(ctx context.Context, job FileJob) (result any, status Status, err error) {
	startTime := time.Now()
	relPath := job.RelPath
	logArgs := []any{slog.String("path", relPath)}

	defer func() {
		duration := time.Since(startTime)
		message := ""
		if err != nil {
			status = StatusFailed
			if _, ok := result.(ErrorInfo); !ok {
				result = ErrorInfo{Path: relPath, Error: err.Error(), IsFatal: p.opts.OnErrorMode == OnErrorStop}
			}
			message = err.Error()
		} else if status == "" {
			status = StatusSuccess
		}
		switch r := result.(type) {
		case FileResult:
			r.DurationMs = duration.Milliseconds()
			result = r
			message = r.Type.String()
		case SkippedInfo:
			message = r.Details
		}
		logLevel := slog.LevelDebug
		if status == StatusFailed {
			logLevel = slog.LevelError
		}
		p.logger.Log(ctx, logLevel, "Processor finished file task",
			append(logArgs, slog.String("status", string(status)), slog.Duration("duration", duration), slog.String("message", message))...)
		if hookErr := p.hooks.OnFileStatusUpdate(relPath, status, message, duration); hookErr != nil {
			p.logger.Warn("Event hook OnFileStatusUpdate failed", append(logArgs, slog.String("error", hookErr.Error()))...)
		}
	}()

	if err := ctx.Err(); err != nil {
		return ErrorInfo{Path: relPath, Error: err.Error(), IsFatal: true}, StatusFailed, err
	}
	if hookErr := p.hooks.OnFileStatusUpdate(relPath, StatusProcessing, "", 0); hookErr != nil {
		p.logger.Warn("Event hook OnFileStatusUpdate failed", append(logArgs, slog.String("error", hookErr.Error()))...)
	}

	info, statErr := os.Stat(job.AbsPath)
	if statErr != nil {
		return nil, StatusFailed, fmt.Errorf("%w: %w", ErrStatFailed, statErr)
	}
	modTime := info.ModTime()
	content, readErr := p.readPrefix(job.AbsPath)
	if readErr != nil {
		return nil, StatusFailed, fmt.Errorf("%w: %w", ErrReadFailed, readErr)
	}
	contentHash := cache.HashContent(content)

	cacheStatus := CacheStatusDisabled
	if p.opts.CacheEnabled && p.configHash != "" {
		cacheStatus = CacheStatusMiss
		if !p.opts.IgnoreCacheRead {
			if entry, hit := p.cacheManager.Check(relPath, modTime, contentHash, p.configHash); hit {
				ft, _ := filetype.Parse(entry.Language)
				return FileResult{
					Path:        relPath,
					Type:        ft,
					Confidence:  entry.Confidence,
					Detected:    entry.Confidence > 0,
					SizeBytes:   info.Size(),
					ModTime:     modTime,
					CacheStatus: CacheStatusHit,
				}, StatusCached, nil
			}
		}
	}

	if p.encodingHandler.IsBinary(content) {
		if p.opts.BinaryMode == BinaryError {
			return nil, StatusFailed, fmt.Errorf("%w: %s", ErrBinaryFile, relPath)
		}
		return SkippedInfo{Path: relPath, Reason: SkipReasonBinary, Details: "Binary file detected"}, StatusSkipped, nil
	}

	text, encodingName := p.encodingHandler.Decode(content)
	lang, confidence, detectErr := p.langDetector.Detect([]byte(text), job.AbsPath)
	if detectErr != nil {
		return nil, StatusFailed, fmt.Errorf("%w: %w", ErrDetection, detectErr)
	}
	ft, parseErr := filetype.Parse(lang)
	if parseErr != nil {
		p.logger.Warn("Detector returned an unknown type name, using text", append(logArgs, slog.String("language", lang))...)
		ft, confidence = filetype.Text, 0
	}
	p.logger.Debug("Type detected", append(logArgs,
		slog.String("type", ft.String()), slog.Float64("confidence", confidence), slog.String("encoding", encodingName))...)

	if cacheStatus != CacheStatusDisabled {
		entry := cache.Entry{
			ModTime:     modTime,
			ContentHash: contentHash,
			ConfigHash:  p.configHash,
			Language:    ft.String(),
			Confidence:  confidence,
		}
		if updateErr := p.cacheManager.Update(relPath, entry); updateErr != nil {
			p.logger.Warn("Failed to update cache entry", append(logArgs, slog.String("error", updateErr.Error()))...)
		}
	}

	return FileResult{
		Path:        relPath,
		Type:        ft,
		Confidence:  confidence,
		Detected:    confidence > 0,
		Encoding:    encodingName,
		SizeBytes:   info.Size(),
		ModTime:     modTime,
		CacheStatus: cacheStatus,
	}, StatusSuccess, nil
}

func (p *FileProcessor) readPrefix(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	limit := p.opts.MaxContentBytes
	if limit <= 0 {
		limit = DefaultMaxContentBytes
	}
	return io.ReadAll(io.LimitReader(f, int64(limit)))
}

// calculateConfigHash digests every option that can change a detection
// result, so cache entries written under another configuration miss.
func calculateConfigHash(opts *Options) (string, error) {
	h := xxhash.New()
	add := func(key, value string) {
		_, _ = h.WriteString(key + ":" + value + ";")
	}

	add("Engine", string(opts.Engine))
	add("MaxContentBytes", strconv.Itoa(opts.MaxContentBytes))
	add("DefaultEncoding", opts.DefaultEncoding)
	add("BinaryMode", string(opts.BinaryMode))
	add("AppVersion", opts.AppVersion)

	exts := make([]string, 0, len(opts.LanguageMappings))
	for ext := range opts.LanguageMappings {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	for _, ext := range exts {
		add("Mapping_"+ext, opts.LanguageMappings[ext])
	}

	if opts.RulesetFile != "" {
		data, err := os.ReadFile(opts.RulesetFile)
		if err != nil {
			return "", fmt.Errorf("%w: reading ruleset for config hash: %w", ErrRulesetLoad, err)
		}
		add("Ruleset", strconv.FormatUint(xxhash.Sum64(data), 16))
	}
	return strconv.FormatUint(h.Sum64(), 16), nil
}
