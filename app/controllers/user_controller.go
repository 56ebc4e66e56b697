package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"gorm.io/gorm"
)

type UserController struct {
	service *services.AuthService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{service: services.NewAuthService(db)}
}

// Index lists accounts. Staff only (enforced by rbac on the route).
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageLimit(r)
	users, pagination, err := c.service.ListUsers(page, limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Paginated(w, users, pagination)
}

// Show returns one account. Plain users only see themselves.
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromCtx(r)
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	user, err := c.service.GetUser(identity, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.Success(w, user)
}
