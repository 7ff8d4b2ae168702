package services

import "mime/multipart"

// ImageStore is the file storage collaborator for menu item photos.
// Remove is best effort; implementations log failures instead of
// propagating them.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(path string)
}
