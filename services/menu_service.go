package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/hray3182/ordering-app/entity"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo    *repository.MenuItemRepository
	CatRepo *repository.CategoryRepository
	Images  ImageStore
	Log     *logger.Logger
}

func NewMenuService(
	repo *repository.MenuItemRepository,
	catRepo *repository.CategoryRepository,
	images ImageStore,
	log *logger.Logger,
) *MenuService {
	return &MenuService{Repo: repo, CatRepo: catRepo, Images: images, Log: log}
}

type MenuItemIn struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	Available   bool
}

type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uint
	Available   *bool
}

func (s *MenuService) List(categoryID *uint) ([]entity.MenuItem, error) {
	return s.Repo.FindAll(categoryID)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(in *MenuItemIn, image *multipart.FileHeader) (*entity.MenuItem, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: menu item name is required", ErrInvalidInput)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if err := s.checkCategory(in.CategoryID); err != nil {
		return nil, err
	}

	item := entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Available:   in.Available,
	}
	if image != nil {
		path, err := s.Images.Save(image)
		if err != nil {
			return nil, err
		}
		item.ImagePath = path
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies only the supplied fields. A replacement image is stored
// first, then the previous file is removed best effort.
func (s *MenuService) Update(id uint, in *MenuItemUpdate, image *multipart.FileHeader) (*entity.MenuItem, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: menu item name must not be empty", ErrInvalidInput)
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		fields["price"] = *in.Price
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *in.CategoryID
	}
	if in.Available != nil {
		fields["available"] = *in.Available
	}

	oldImage, newImage := "", ""
	if image != nil {
		path, err := s.Images.Save(image)
		if err != nil {
			return nil, err
		}
		fields["image_path"] = path
		newImage = path
		oldImage = existing.ImagePath
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := s.Repo.Updates(id, fields); err != nil {
		// don't orphan the replacement file when the row keeps the old path
		s.Images.Remove(newImage)
		return nil, err
	}
	if oldImage != "" {
		s.Images.Remove(oldImage)
	}
	return s.Repo.FindByID(id)
}

// Delete removes the item and its stored image. Order items referencing it
// keep their snapshots; the soft reference is allowed to dangle.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Images.Remove(item.ImagePath)
	return nil
}

func (s *MenuService) checkCategory(id uint) error {
	if _, err := s.CatRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrInvalidInput, id)
		}
		return err
	}
	return nil
}
