package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"gorm.io/gorm"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{service: services.NewReviewService(db)}
}

func reviewFilter(r *http.Request) repositories.ReviewFilter {
	q := r.URL.Query()
	var filter repositories.ReviewFilter
	if v, err := strconv.ParseUint(q.Get("user_id"), 10, 32); err == nil {
		filter.UserID = uint(v)
	}
	if v, err := strconv.ParseUint(q.Get("product_id"), 10, 32); err == nil {
		filter.ProductID = uint(v)
	}
	if t, err := time.Parse(time.RFC3339, q.Get("created_after")); err == nil {
		filter.CreatedAfter = &t
	}
	if t, err := time.Parse(time.RFC3339, q.Get("created_before")); err == nil {
		filter.CreatedBefore = &t
	}
	return filter
}

// Index lists reviews with the author/product/date filters.
func (c *ReviewController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageLimit(r)
	reviews, pagination, err := c.service.List(reviewFilter(r), page, limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Paginated(w, reviews, pagination)
}

// Show returns one review.
func (c *ReviewController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	review, err := c.service.Get(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, review)
}

// Store creates a review authored by the caller.
func (c *ReviewController) Store(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)

	var in services.ReviewCreateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	review, err := c.service.Create(identity, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Created(w, review)
}

// Update handles both PUT and PATCH; only rating and text may change.
func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.ReviewUpdateInput
	keys, errs, err := bind.JSONWithKeys(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	review, err := c.service.Update(identity, id, actionFor(r), keys, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, review)
}

// Destroy removes a review, author or staff only.
func (c *ReviewController) Destroy(w http.ResponseWriter, r *http.Request) {
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
