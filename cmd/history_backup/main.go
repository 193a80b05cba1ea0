package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/fitlog/internal/backup"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/logging"
	"github.com/2beens/fitlog/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// exports all user histories into one dated json file on google drive

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	credentialsFile := flag.String("gd-creds", "./drive-credentials.json", "google drive service account credentials json")
	shareWith := flag.String("share-with", "", "email the backups folder is shared with (read only)")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      *logsPath,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitlog-history-backup",
	})

	log.Println("starting history backup ...")

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}
	credentials, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var dbPool *pgxpool.Pool
	if cfg.StorageBackend == config.StorageBackendPostgres {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("FITLOG_DB_PASS"),
		})
		if err != nil {
			log.Fatalf("new db pool: %s", err)
		}
		defer dbPool.Close()
	}

	historyStore, closeStore, err := store.Open(ctx, store.OpenParams{
		Backend:            cfg.StorageBackend,
		DBPool:             dbPool,
		FirestoreProjectID: cfg.FirestoreProjectID,
	})
	if err != nil {
		log.Fatalf("open history store: %s", err)
	}
	defer closeStore()

	uploader, err := backup.NewDriveUploader(ctx, credentials, cfg.BackupDriveFolder, *shareWith)
	if err != nil {
		log.Fatalf("new drive uploader: %s", err)
	}

	res, err := backup.NewService(historyStore, uploader, nil).Run(ctx, time.Now())
	if err != nil {
		log.Errorf("history backup failed: %+v", err)
		return
	}
	log.Printf("history backup done: %s, %d histories, %d failed", res.FileName, res.Users, res.Failed)
}
