package routes

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/rbac"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// RegisterAPI mounts the shop API under /api/v1.
//
// Every route passes through two gates: the auth middleware resolves the
// caller's identity (required or optional per route) and rbac.Require checks
// the capability table. Ownership of individual orders and reviews is the
// services' concern.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	productController := controllers.NewProductController(db)
	collectionController := controllers.NewCollectionController(db)
	orderController := controllers.NewOrderController(db)
	reviewController := controllers.NewReviewController(db)

	api := r.Group("/api/v1")

	api.Post("/register", "auth.register", authController.Register)
	api.Post("/login", "auth.login", authController.Login)

	users := api.Group("/users", middleware.Auth)
	users.Get("", "users.index", userController.Index, rbac.Require("users", rbac.ActionList))
	users.Get("/{id}", "users.show", userController.Show, rbac.Require("users", rbac.ActionRetrieve))

	// Catalog reads are public; OptionalAuth keeps staff identities visible
	// so rbac and the services can honor the elevated view.
	products := api.Group("/products", middleware.OptionalAuth)
	products.Get("", "products.index", productController.Index, rbac.Require("products", rbac.ActionList))
	products.Get("/{id}", "products.show", productController.Show, rbac.Require("products", rbac.ActionRetrieve))
	products.Post("", "products.store", productController.Store, rbac.Require("products", rbac.ActionCreate))
	products.Put("/{id}", "products.update", productController.Update, rbac.Require("products", rbac.ActionUpdate))
	products.Patch("/{id}", "products.patch", productController.Update, rbac.Require("products", rbac.ActionPartialUpdate))
	products.Delete("/{id}", "products.destroy", productController.Destroy, rbac.Require("products", rbac.ActionDestroy))

	collections := api.Group("/collections", middleware.OptionalAuth)
	collections.Get("", "collections.index", collectionController.Index, rbac.Require("collections", rbac.ActionList))
	collections.Get("/{id}", "collections.show", collectionController.Show, rbac.Require("collections", rbac.ActionRetrieve))
	collections.Post("", "collections.store", collectionController.Store, rbac.Require("collections", rbac.ActionCreate))
	collections.Put("/{id}", "collections.update", collectionController.Update, rbac.Require("collections", rbac.ActionUpdate))
	collections.Patch("/{id}", "collections.patch", collectionController.Update, rbac.Require("collections", rbac.ActionPartialUpdate))
	collections.Delete("/{id}", "collections.destroy", collectionController.Destroy, rbac.Require("collections", rbac.ActionDestroy))

	orders := api.Group("/orders", middleware.Auth)
	orders.Get("", "orders.index", orderController.Index, rbac.Require("orders", rbac.ActionList))
	orders.Get("/{id}", "orders.show", orderController.Show, rbac.Require("orders", rbac.ActionRetrieve))
	orders.Post("", "orders.store", orderController.Store, rbac.Require("orders", rbac.ActionCreate))
	orders.Put("/{id}", "orders.update", orderController.Update, rbac.Require("orders", rbac.ActionUpdate))
	orders.Patch("/{id}", "orders.patch", orderController.Update, rbac.Require("orders", rbac.ActionPartialUpdate))
	orders.Delete("/{id}", "orders.destroy", orderController.Destroy, rbac.Require("orders", rbac.ActionDestroy))

	reviews := api.Group("/reviews", middleware.OptionalAuth)
	reviews.Get("", "reviews.index", reviewController.Index, rbac.Require("reviews", rbac.ActionList))
	reviews.Get("/{id}", "reviews.show", reviewController.Show, rbac.Require("reviews", rbac.ActionRetrieve))
	reviews.Post("", "reviews.store", reviewController.Store, rbac.Require("reviews", rbac.ActionCreate))
	reviews.Put("/{id}", "reviews.update", reviewController.Update, rbac.Require("reviews", rbac.ActionUpdate))
	reviews.Patch("/{id}", "reviews.patch", reviewController.Update, rbac.Require("reviews", rbac.ActionPartialUpdate))
	reviews.Delete("/{id}", "reviews.destroy", reviewController.Destroy, rbac.Require("reviews", rbac.ActionDestroy))
}
