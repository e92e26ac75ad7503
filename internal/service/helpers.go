package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	defaultPostingTime = "09:00"
	maxUploadSize      = 25 << 20
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var imageTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {},
}

var portalTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {}, "mp4": {}, "mov": {}, "pdf": {},
}

func requireUUID(value, field string) error {
	if _, err := uuid.Parse(value); err != nil {
		return apperror.BadRequest(fmt.Sprintf("Invalid %s", field))
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validClock(s string) bool {
	return clockPattern.MatchString(s)
}

// scheduleInstant combines a calendar date and HH:MM in loc.
func scheduleInstant(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, loc)
}

// ownedClient loads a client and checks it belongs to userID.
func ownedClient(ctx context.Context, clients repository.ClientRepository, userID, clientID string) (*models.Client, error) {
	if err := requireUUID(clientID, "client_id"); err != nil {
		return nil, err
	}

	client, err := clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load client")
	}
	if client == nil {
		return nil, apperror.NotFound("Client not found")
	}
	if client.UserID != userID {
		return nil, apperror.Forbidden("Access denied")
	}
	return client, nil
}

type upload struct {
	Name string
	Data []byte
	Type types.Type
}

func readUpload(fh *multipart.FileHeader, allowed map[string]struct{}) (*upload, error) {
	if fh == nil {
		return nil, apperror.BadRequest("No file provided")
	}
	if fh.Size > maxUploadSize {
		return nil, apperror.BadRequest("File is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.Wrap(err, "Error opening file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.Wrap(err, "Error reading file content")
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown {
		return nil, apperror.BadRequest("Unsupported file type")
	}
	if _, ok := allowed[kind.Extension]; !ok {
		return nil, apperror.BadRequest(fmt.Sprintf("File type %s is not allowed", kind.Extension))
	}

	return &upload{Name: fh.Filename, Data: data, Type: kind}, nil
}

func objectKey(prefix, ext string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.%s", prefix, id, ext), nil
}
