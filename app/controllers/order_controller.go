package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"gorm.io/gorm"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{service: services.NewOrderService(db)}
}

func orderFilter(r *http.Request) repositories.OrderFilter {
	q := r.URL.Query()
	filter := repositories.OrderFilter{Status: q.Get("status")}
	if v, err := strconv.ParseUint(q.Get("product_id"), 10, 32); err == nil {
		filter.ProductID = uint(v)
	}
	if v := q.Get("total_min"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.TotalMin = &d
		}
	}
	if v := q.Get("total_max"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.TotalMax = &d
		}
	}
	if t, err := time.Parse(time.RFC3339, q.Get("created_after")); err == nil {
		filter.CreatedAfter = &t
	}
	if t, err := time.Parse(time.RFC3339, q.Get("created_before")); err == nil {
		filter.CreatedBefore = &t
	}
	return filter
}

// Index lists the caller's orders; staff see everyone's.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	page, limit := pageLimit(r)

	orders, pagination, err := c.service.List(identity, orderFilter(r), page, limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Paginated(w, orders, pagination)
}

// Show returns one order, owner-scoped.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	order, err := c.service.Get(identity, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, order)
}

// Store creates an order owned by the caller.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)

	var in services.OrderCreateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(identity, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Created(w, order)
}

// Update handles both PUT and PATCH with identical field rules.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.OrderUpdateInput
	keys, errs, err := bind.JSONWithKeys(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Update(identity, id, actionFor(r), keys, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, order)
}

// Destroy removes an order, owner-scoped.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.service.Delete(identity, id); err != nil {
		serviceError(w, err)
		return
	}
	response.NoContent(w)
}
