package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"gorm.io/gorm"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{service: services.NewProductService(db)}
}

func productFilter(r *http.Request) repositories.ProductFilter {
	q := r.URL.Query()
	filter := repositories.ProductFilter{
		Name:        q.Get("name"),
		Description: q.Get("description"),
	}
	if v := q.Get("price_min"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.PriceMin = &d
		}
	}
	if v := q.Get("price_max"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.PriceMax = &d
		}
	}
	return filter
}

// Index lists products with the catalog filters.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageLimit(r)
	products, pagination, err := c.service.List(productFilter(r), page, limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Paginated(w, products, pagination)
}

// Show returns one product.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, product)
}

// Store creates a product.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Created(w, product)
}

// Update handles both PUT and PATCH; omitted fields keep their values.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.ProductInput
	keys, errs, err := bind.JSONWithKeys(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		// PATCH may omit required fields; only reject errors on keys
		// the client actually sent.
		submitted := make(map[string]string)
		for field, msg := range errs {
			if _, ok := keys[field]; ok {
				submitted[field] = msg
			}
		}
		if r.Method == http.MethodPut {
			submitted = errs
		}
		if len(submitted) > 0 {
			response.ValidationError(w, submitted)
			return
		}
	}

	product, err := c.service.Update(id, keys, in)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, product)
}

// Destroy removes a product.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
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
