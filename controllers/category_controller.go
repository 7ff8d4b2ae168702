package controllers

import (
	"strconv"

	"github.com/hray3182/ordering-app/pkg/resp"
	"github.com/hray3182/ordering-app/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := ctl.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CategoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := ctl.Service.Update(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
