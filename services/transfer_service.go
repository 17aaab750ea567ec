package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-league/models"
	"github.com/Dosada05/tournament-league/storage"
)

// ExportFile is an encoded snapshot ready for download.
type ExportFile struct {
	FileName string
	Data     []byte
}

func (s *tournamentService) Export(ctx context.Context) (*ExportFile, error) {
	at := s.now()
	data, err := storage.Encode(s.read(), at)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Snapshot exported", slog.Int("bytes", len(data)))
	return &ExportFile{FileName: storage.ExportFileName(at), Data: data}, nil
}

// ArchiveExport uploads a timestamped export to object storage and returns its location.
func (s *tournamentService) ArchiveExport(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrArchiveUnavailable
	}
	at := s.now().UTC()
	data, err := storage.Encode(s.read(), at)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("tournament_%s.json", at.Format("2006-01-02T150405Z"))
	result, err := storage.Archive(ctx, s.uploader, name, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to archive export", slog.String("name", name), slog.Any("error", err))
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}
	s.logger.InfoContext(ctx, "Export archived", slog.String("key", result.Key))
	return result, nil
}

// Import replaces the whole state with the decoded document. Nothing changes when the
// document is rejected.
func (s *tournamentService) Import(ctx context.Context, data []byte) (*TournamentView, error) {
	imported, err := storage.Decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "Rejected import", slog.Any("error", err))
		return nil, err
	}

	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		*next = imported
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Snapshot imported",
		slog.Int("competitors", len(next.Roster)),
		slog.Bool("created", next.Config.Created),
	)
	view := newTournamentView(next)
	s.events.Publish(EventTournamentImported, view)
	return &view, nil
}
