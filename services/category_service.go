package services

import (
	"errors"
	"fmt"

	"github.com/hray3182/ordering-app/entity"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB       *gorm.DB
	Repo     *repository.CategoryRepository
	MenuRepo *repository.MenuItemRepository
	Images   ImageStore
	Log      *logger.Logger
}

func NewCategoryService(
	db *gorm.DB,
	repo *repository.CategoryRepository,
	menuRepo *repository.MenuItemRepository,
	images ImageStore,
	log *logger.Logger,
) *CategoryService {
	return &CategoryService{DB: db, Repo: repo, MenuRepo: menuRepo, Images: images, Log: log}
}

type CategoryIn struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

type CategoryUpdate struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	cat := entity.Category{Name: in.Name, DisplayOrder: in.DisplayOrder}
	if err := s.Repo.Create(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Update(id uint, in *CategoryUpdate) (*entity.Category, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: category name must not be empty", ErrInvalidInput)
		}
		fields["name"] = *in.Name
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.Repo.Updates(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Delete removes a category and cascades over its menu items in application
// logic (there is no FK doing it for us). Existing order items keep their
// name/price snapshots, so past orders are unaffected. Stored images are
// removed best effort once the rows are gone.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	items, err := s.MenuRepo.FindByCategory(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.MenuRepo.DeleteByCategory(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	for _, it := range items {
		s.Images.Remove(it.ImagePath)
	}
	return nil
}
