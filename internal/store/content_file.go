package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
)

var errInvalidAttachmentID = errors.New("invalid attachment id")

// fileContentStore writes attachments under a single directory. Each write
// goes to a temp file first and is renamed into place, so readers never see
// a partial file and redeliveries overwrite atomically.
type fileContentStore struct {
	root   string
	logger *logger.Logger
}

// NewFileContentStore creates root if needed.
func NewFileContentStore(root string, log *logger.Logger) (ContentStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}

	return &fileContentStore{root: root, logger: log}, nil
}

func (s *fileContentStore) Save(ctx context.Context, attachmentID, ext string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name, err := safeFileName(attachmentID, ext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	tmp, err := os.CreateTemp(s.root, "."+name+".*.part")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = io.Copy(tmp, readerWithContext(ctx, body)); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*fileContentStore.Save").Str("file", name).Msg("error writing attachment")
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err = os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return name, nil
}

// safeFileName rejects ids that would escape the content root.
func safeFileName(attachmentID, ext string) (string, error) {
	if attachmentID == "" || ext == "" {
		return "", errInvalidAttachmentID
	}
	name := contentFileName(attachmentID, ext)
	if strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", errInvalidAttachmentID, attachmentID)
	}
	return name, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

// readerWithContext stops a copy once ctx is done.
func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
