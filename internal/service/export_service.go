package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jcpao-csu/staff-directory-api/internal/directory"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
	"github.com/jcpao-csu/staff-directory-api/pkg/export"
	"github.com/jcpao-csu/staff-directory-api/pkg/storage"
)

const exportDir = "directory"

var exportHeaders = []string{
	"Name", "Job Title", "Position", "Assigned Unit", "Office Location",
	"Work Phone", "Ext.", "Work Email", "Personal Phone", "Birthday",
}

type directoryFilterer interface {
	Filter(ctx context.Context, spec models.FilterSpec) ([]models.DirectoryRow, error)
}

type fileStorage interface {
	Save(name string, data []byte) (string, error)
	Open(name string) (io.ReadSeekCloser, os.FileInfo, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportRequest selects the rows and file format of an export.
type ExportRequest struct {
	Format export.Format
	Filter models.FilterSpec
}

// ExportResult describes a stored export and how to download it.
type ExportResult struct {
	ID        string
	Path      string
	Token     string
	URL       string
	Format    export.Format
	Rows      int
	ExpiresAt time.Time
}

// ExportFile is an open stored export ready to stream.
type ExportFile struct {
	Name        string
	ContentType string
	Content     io.ReadSeekCloser
	ModTime     time.Time
	Size        int64
}

// ExportService renders filtered directory listings to files behind signed download links.
type ExportService struct {
	directory directoryFilterer
	storage   fileStorage
	signer    *storage.SignedURLSigner
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       ExportConfig
	now       func() time.Time
}

func NewExportService(dir directoryFilterer, store fileStorage, signer *storage.SignedURLSigner, metrics *MetricsService, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = time.Hour
	}
	return &ExportService{
		directory: dir,
		storage:   store,
		signer:    signer,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Generate filters the directory, renders it and stores the file.
func (s *ExportService) Generate(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	renderer, err := export.RendererFor(req.Format)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	rows, err := s.directory.Filter(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(Dataset(rows, "JCPAO Staff Directory"))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render export")
	}

	id := uuid.NewString()
	name := path.Join(exportDir, fmt.Sprintf("staff_directory_%s_%s.%s", s.now().UTC().Format("20060102_150405"), id[:8], renderer.Extension()))
	relPath, err := s.storage.Save(name, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store export")
	}

	token, expiresAt, err := s.signer.Generate(id, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign export")
	}

	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	s.metrics.RecordExport(string(req.Format))
	s.logger.Info("directory export stored", zap.String("export_id", id), zap.String("format", string(req.Format)), zap.Int("rows", len(rows)))

	return &ExportResult{
		ID:        id,
		Path:      relPath,
		Token:     token,
		URL:       fmt.Sprintf("%s/export/%s", prefix, token),
		Format:    req.Format,
		Rows:      len(rows),
		ExpiresAt: expiresAt,
	}, nil
}

// Open validates a download token and opens the file it names.
func (s *ExportService) Open(token string) (*ExportFile, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			return nil, appErrors.Clone(appErrors.ErrGone, "download link expired")
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "download link invalid")
	}

	content, info, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrGone, "export no longer available")
	}

	format, _ := export.ParseFormat(strings.TrimPrefix(path.Ext(relPath), "."))
	contentType := "application/octet-stream"
	if renderer, err := export.RendererFor(format); err == nil {
		contentType = renderer.ContentType()
	}

	return &ExportFile{
		Name:        path.Base(relPath),
		ContentType: contentType,
		Content:     content,
		ModTime:     info.ModTime(),
		Size:        info.Size(),
	}, nil
}

// Cleanup removes stored exports older than ttl, or the configured result TTL when ttl <= 0.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

// Dataset lays out directory rows as export columns.
func Dataset(rows []models.DirectoryRow, title string) export.Dataset {
	data := export.Dataset{Title: title, Headers: exportHeaders, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		data.Rows = append(data.Rows, []string{
			directory.DisplayName(row),
			row.JobTitle,
			row.Position.Badge(),
			directory.UnitBadges(row),
			row.OfficeLocation.Badge(),
			directory.FormatPhone(row.WorkPhone),
			directory.PhoneExtension(row.WorkPhone),
			row.WorkEmail,
			directory.FormatPhone(row.PersonalPhone),
			directory.BirthdayLabel(row),
		})
	}
	return data
}
