package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"gorm.io/gorm"
)

type CollectionController struct {
	service *services.CollectionService
}

func NewCollectionController(db *gorm.DB) *CollectionController {
	return &CollectionController{service: services.NewCollectionService(db)}
}

// Index lists collections with their member products.
func (c *CollectionController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageLimit(r)
	collections, pagination, err := c.service.List(page, limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Paginated(w, collections, pagination)
}

// Show returns one collection.
func (c *CollectionController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	collection, err := c.service.Get(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, collection)
}

// Store creates a collection with its product list.
func (c *CollectionController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CollectionCreateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	collection, err := c.service.Create(in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Created(w, collection)
}

// Update handles both PUT and PATCH; the product list is a patch in either
// case (submitted products merge in, existing members stay).
func (c *CollectionController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.CollectionUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	collection, err := c.service.Update(id, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, collection)
}

// Destroy removes a collection; member products survive.
func (c *CollectionController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.service.Delete(id); err != nil {
		serviceError(w, err)
		return
	}
	response.NoContent(w)
}
