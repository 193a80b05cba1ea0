package backup

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	DefaultFolderName = "fitlog-backup"
	folderMimeType    = "application/vnd.google-apps.folder"
)

// DriveUploader stores backup files in one Google Drive folder, optionally
// shared read-only with an account.
type DriveUploader struct {
	service   *drive.Service
	folderID  string
	shareWith string
}

func NewDriveUploader(ctx context.Context, credentialsJSON []byte, folderName, shareWith string) (*DriveUploader, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	u := &DriveUploader{
		service:   driveService,
		shareWith: shareWith,
	}

	if folderName == "" {
		folderName = DefaultFolderName
	}
	if u.folderID, err = u.findOrCreateFolder(ctx, folderName); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *DriveUploader) findOrCreateFolder(ctx context.Context, folderName string) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, escapeQuery(folderName))
	found, err := u.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(found.Files) {
	case 0:
		log.Debugf("backups folder %s not found, creating ...", folderName)
	case 1:
		return found.Files[0].Id, nil
	default:
		log.Warnf("found %d backups folders named %s, will take the first one", len(found.Files), folderName)
		return found.Files[0].Id, nil
	}

	folder, err := u.service.Files.
		Create(&drive.File{Name: folderName, MimeType: folderMimeType}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create backups folder: %w", err)
	}
	if err := u.share(ctx, folder.Id); err != nil {
		return folder.Id, err
	}
	log.Infof("new backups folder created: %s", folder.Id)
	return folder.Id, nil
}

// Upload creates the file in the backups folder. An existing file with the same
// name gets a numbered sibling instead of being overwritten.
func (u *DriveUploader) Upload(ctx context.Context, name string, content []byte) (string, error) {
	existing, err := u.fileNames(ctx)
	if err != nil {
		return "", err
	}
	name = uniqueName(name, existing)

	file, err := u.service.Files.
		Create(&drive.File{
			Name:     name,
			MimeType: "application/json",
			Parents:  []string{u.folderID},
		}).
		Fields("id, parents").
		Media(bytes.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	if err := u.share(ctx, file.Id); err != nil {
		return file.Id, err
	}
	return file.Id, nil
}

func (u *DriveUploader) fileNames(ctx context.Context) (map[string]bool, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", u.folderID, folderMimeType)
	files, err := u.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list backup files: %w", err)
	}

	names := make(map[string]bool, len(files.Files))
	for _, f := range files.Files {
		names[f.Name] = true
	}
	return names, nil
}

func (u *DriveUploader) share(ctx context.Context, fileID string) error {
	if u.shareWith == "" {
		return nil
	}
	_, err := u.service.Permissions.
		Create(fileID, &drive.Permission{
			EmailAddress: u.shareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("share %s: %w", fileID, err)
	}
	return nil
}

// uniqueName appends _2, _3, ... before the extension until name is free.
func uniqueName(name string, taken map[string]bool) string {
	if !taken[name] {
		return name
	}
	base, ext := name, ""
	if i := strings.LastIndex(name, "."); i > 0 {
		base, ext = name[:i], name[i:]
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !taken[candidate] {
			return candidate
		}
	}
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
