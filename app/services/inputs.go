package services

import "github.com/shopspring/decimal"

// PositionInput is one submitted (product, quantity) pair.
type PositionInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,gte=1"`
}

// OrderCreateInput is the order-create payload.
type OrderCreateInput struct {
	Positions []PositionInput `json:"positions"`
}

// OrderUpdateInput is the order update/partial_update payload. Pointer and
// nil-slice zero values distinguish "omitted" from "submitted empty"; the
// submitted-key set from the binding layer drives the field restrictions.
type OrderUpdateInput struct {
	Positions []PositionInput `json:"positions"`
	Status    *string         `json:"status" validate:"nullable,in=New,In_progress,Done"`
}

// CollectionProductInput is one submitted collection member.
type CollectionProductInput struct {
	ProductID uint `json:"product_id" validate:"required"`
}

// CollectionCreateInput is the collection-create payload.
type CollectionCreateInput struct {
	Name     string                   `json:"name" validate:"required,max=200"`
	Slug     string                   `json:"slug" validate:"nullable,alpha_dash,max=200"`
	Text     string                   `json:"text"`
	Products []CollectionProductInput `json:"products_list"`
}

// CollectionUpdateInput is the collection update payload.
type CollectionUpdateInput struct {
	Name     *string                  `json:"name" validate:"nullable,max=200"`
	Slug     *string                  `json:"slug" validate:"nullable,alpha_dash,max=200"`
	Text     *string                  `json:"text"`
	Products []CollectionProductInput `json:"products_list"`
}

// ReviewCreateInput is the review-create payload. A nil rating takes the
// model default (5).
type ReviewCreateInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Text      string `json:"text"`
	Rating    *int   `json:"rating" validate:"nullable,between=1,5"`
}

// ReviewUpdateInput is the review update payload.
type ReviewUpdateInput struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating" validate:"nullable,between=1,5"`
}

// ProductInput is the staff product create/update payload.
type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Slug        string          `json:"slug" validate:"nullable,alpha_dash,max=200"`
}
