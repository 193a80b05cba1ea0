package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

type historyLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
	GetUserHistory(ctx context.Context, userID string) (*records.UserHistory, error)
}

type uploader interface {
	Upload(ctx context.Context, name string, content []byte) (fileID string, err error)
}

type UserExport struct {
	UserID     string                   `json:"userId"`
	Workouts   []records.WorkoutRecord  `json:"workouts"`
	WeightLogs []records.WeightLogEntry `json:"weightLogs"`
}

type Export struct {
	CreatedAt time.Time    `json:"createdAt"`
	Histories []UserExport `json:"histories"`
}

type Result struct {
	FileName string
	FileID   string
	Users    int
	Failed   int
}

// Service exports every user history into a single dated JSON file.
type Service struct {
	lister         historyLister
	uploader       uploader
	metricsManager *metrics.Manager
}

func NewService(lister historyLister, uploader uploader, metricsManager *metrics.Manager) *Service {
	return &Service{
		lister:         lister,
		uploader:       uploader,
		metricsManager: metricsManager,
	}
}

func FileName(baseTime time.Time) string {
	return fmt.Sprintf("fitlog-histories-%s.json", baseTime.UTC().Format(records.DateLayout))
}

// Collect reads all histories. Users whose history cannot be read are skipped,
// and their errors are returned combined next to the export.
func (s *Service) Collect(ctx context.Context, baseTime time.Time) (*Export, error) {
	userIDs, err := s.lister.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	export := &Export{
		CreatedAt: baseTime.UTC(),
		Histories: make([]UserExport, 0, len(userIDs)),
	}

	var errs error
	for _, userID := range userIDs {
		history, err := s.lister.GetUserHistory(ctx, userID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		export.Histories = append(export.Histories, UserExport{
			UserID:     userID,
			Workouts:   history.Workouts,
			WeightLogs: history.WeightLogs,
		})
	}

	return export, errs
}

func (s *Service) Run(ctx context.Context, baseTime time.Time) (_ *Result, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.histories.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	begin := time.Now()
	defer func() {
		if s.metricsManager != nil {
			s.metricsManager.HistBackupDuration.Observe(time.Since(begin).Seconds())
		}
	}()

	export, collectErr := s.Collect(ctx, baseTime)
	if export == nil {
		return nil, collectErr
	}
	failed := len(multierr.Errors(collectErr))
	for _, e := range multierr.Errors(collectErr) {
		log.Errorf("backup, skipping history: %s", e)
	}

	content, err := json.Marshal(export)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	name := FileName(baseTime)
	fileID, err := s.uploader.Upload(ctx, name, content)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	span.SetAttributes(
		attribute.Int("backup.users", len(export.Histories)),
		attribute.Int("backup.failed", failed),
	)
	if s.metricsManager != nil {
		s.metricsManager.CounterHistoriesBackedUp.Add(float64(len(export.Histories)))
	}

	log.Infof("backup %s saved [%s]: %d histories, %d failed", name, fileID, len(export.Histories), failed)
	return &Result{
		FileName: name,
		FileID:   fileID,
		Users:    len(export.Histories),
		Failed:   failed,
	}, nil
}
