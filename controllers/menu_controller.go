package controllers

import (
	"mime/multipart"
	"strconv"

	"github.com/hray3182/ordering-app/pkg/resp"
	"github.com/hray3182/ordering-app/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /menu?categoryId=
func (ctl *MenuController) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "categoryId must be numeric")
			return
		}
		u := uint(id)
		categoryID = &u
	}

	items, err := ctl.Service.List(categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type createMenuItemForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"gte=0"`
	CategoryID  uint    `form:"categoryId" binding:"required"`
	Available   *bool   `form:"available"`
}

// POST /menu (multipart: fields + optional image)
func (ctl *MenuController) Create(c *gin.Context) {
	var form createMenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	available := true
	if form.Available != nil {
		available = *form.Available
	}

	item, err := ctl.Service.Create(&services.MenuItemIn{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		CategoryID:  form.CategoryID,
		Available:   available,
	}, formImage(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

type updateMenuItemForm struct {
	Name        *string  `form:"name"`
	Description *string  `form:"description"`
	Price       *float64 `form:"price"`
	CategoryID  *uint    `form:"categoryId"`
	Available   *bool    `form:"available"`
}

// PATCH /menu/:id (multipart: any subset of fields + optional image)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var form updateMenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Update(uint(id), &services.MenuItemUpdate{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		CategoryID:  form.CategoryID,
		Available:   form.Available,
	}, formImage(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func formImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
