package controllers

import (
	"strconv"

	"github.com/hray3182/ordering-app/pkg/resp"
	"github.com/hray3182/ordering-app/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Checkout(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders — the staff board polls this; newest first
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.ListOrders()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.GetOrder(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/number/:orderNumber — customer confirmation view
func (ctl *OrderController) DetailByNumber(c *gin.Context) {
	order, err := ctl.Service.GetOrderByNumber(c.Param("orderNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id — status and/or paid, whichever is present
func (ctl *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateOrder(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
