package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hray3182/ordering-app/pkg/logger"

	"github.com/google/uuid"
)

// urlPrefix is the route under which the upload dir is served; stored image
// paths are public URLs beneath it, independent of where UPLOAD_DIR points.
const urlPrefix = "/uploads"

// Local stores uploaded menu item images on the local filesystem under
// <root>/menu-items. Save returns the web path (/uploads/menu-items/<name>)
// that gets persisted on the MenuItem and served by the static route.
type Local struct {
	Root string
	Log  *logger.Logger
}

func NewLocal(root string, log *logger.Logger) *Local {
	return &Local{Root: root, Log: log}
}

func (s *Local) Save(file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(s.Root, "menu-items")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// timestamp + random suffix keeps concurrent uploads of the same
	// filename from clobbering each other
	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return path.Join(urlPrefix, "menu-items", name), nil
}

// Remove deletes the file behind a stored web path. Best effort: a failure
// is logged and otherwise ignored so catalog mutations never fail over a
// stale file.
func (s *Local) Remove(webPath string) {
	if webPath == "" {
		return
	}
	rel := strings.TrimPrefix(webPath, urlPrefix+"/")
	full := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		s.Log.Warn("image_delete", "could not delete stored image", "path", webPath, "error", err.Error())
	}
}
