package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"crocsdkr/repository"
)

// DriveImageStorage stores catalog images in a Google Drive folder. Public
// paths are the shareable uc?id= URLs.
type DriveImageStorage struct {
	client   *drive.Service
	folderID string
}

// NewDriveImageStorage creates a DriveImageStorage using a Service Account
// credentials file
func NewDriveImageStorage(ctx context.Context, credentialsPath, folderID string) (*DriveImageStorage, error) {
	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveImageStorage{client: client, folderID: folderID}, nil
}

// Ensure DriveImageStorage implements ImageStorageInterface
var _ ImageStorageInterface = (*DriveImageStorage)(nil)

// Save uploads the file into the configured folder and returns its public URL
func (s *DriveImageStorage) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	meta := &drive.File{
		Name:    fileName,
		Parents: []string{s.folderID},
	}

	created, err := s.client.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(data)).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to drive: %w", fileName, err)
	}

	return driveFileURL(created.Id), nil
}

// List returns the public URLs of all images in the folder
func (s *DriveImageStorage) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", s.folderID)

	images := []string{}
	pageToken := ""
	for {
		call := s.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list drive folder: %w", err)
		}

		for _, file := range r.Files {
			if strings.HasPrefix(strings.ToLower(file.MimeType), "image/") {
				images = append(images, driveFileURL(file.Id))
			}
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return images, nil
}

// Delete removes the file whose public URL was given
func (s *DriveImageStorage) Delete(ctx context.Context, publicPath string) error {
	fileID, err := driveFileID(publicPath)
	if err != nil {
		return err
	}

	if err := s.client.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == 404 {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to delete drive file %s: %w", fileID, err)
	}
	return nil
}

// driveFileURL builds the public-facing URL for a Drive file
func driveFileURL(fileID string) string {
	return "https://drive.google.com/uc?id=" + fileID
}

// driveFileID extracts the file id back out of a public Drive URL
func driveFileID(publicPath string) (string, error) {
	u, err := url.Parse(publicPath)
	if err != nil {
		return "", ErrInvalidImagePath
	}
	id := u.Query().Get("id")
	if id == "" || u.Host != "drive.google.com" {
		return "", ErrInvalidImagePath
	}
	return id, nil
}
