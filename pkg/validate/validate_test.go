package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderInput struct {
	Status   *string `json:"status"   validate:"nullable,in=New,In_progress,Done"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
}

type profileInput struct {
	Name  string `json:"name"  validate:"required,max=10"`
	Email string `json:"email" validate:"required,email"`
	Slug  string `json:"slug"  validate:"nullable,alpha_dash"`
	Bio   string `json:"bio"   validate:"nullable,between=5,20"`
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&profileInput{Email: "a@b.co"})
	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs["name"], "required")
	assert.NotContains(t, errs, "slug")
}

func TestStructEmail(t *testing.T) {
	errs := Struct(&profileInput{Name: "Alice", Email: "not-an-email"})
	assert.Contains(t, errs["email"], "valid email")

	errs = Struct(&profileInput{Name: "Alice", Email: "alice@example.com"})
	assert.False(t, HasErrors(errs))
}

func TestStructAlphaDash(t *testing.T) {
	errs := Struct(&profileInput{Name: "A", Email: "a@b.co", Slug: "my-slug_1"})
	assert.False(t, HasErrors(errs))

	errs = Struct(&profileInput{Name: "A", Email: "a@b.co", Slug: "no spaces!"})
	assert.Contains(t, errs, "slug")
}

func TestStructMaxString(t *testing.T) {
	errs := Struct(&profileInput{Name: "waaaaay too long", Email: "a@b.co"})
	assert.Contains(t, errs["name"], "exceed")
}

func TestStructBetweenStringLength(t *testing.T) {
	errs := Struct(&profileInput{Name: "A", Email: "a@b.co", Bio: "hi"})
	assert.Contains(t, errs, "bio")

	errs = Struct(&profileInput{Name: "A", Email: "a@b.co", Bio: "long enough"})
	assert.False(t, HasErrors(errs))
}

func TestStructInWithMultiValueParam(t *testing.T) {
	// The in= parameter carries commas; the rule splitter must not cut it.
	bad := "Shipped"
	errs := Struct(&orderInput{Status: &bad, Quantity: 1})
	assert.Contains(t, errs["status"], "invalid")

	good := "In_progress"
	errs = Struct(&orderInput{Status: &good, Quantity: 1})
	assert.False(t, HasErrors(errs))
}

func TestStructNullableSkipsRules(t *testing.T) {
	errs := Struct(&orderInput{Quantity: 1})
	assert.False(t, HasErrors(errs))
}

func TestStructGte(t *testing.T) {
	errs := Struct(&orderInput{Quantity: 0})
	assert.Contains(t, errs, "quantity")
}

func TestStructValidatesSliceElements(t *testing.T) {
	type lineItem struct {
		ProductID uint `json:"product_id" validate:"required"`
		Quantity  int  `json:"quantity"   validate:"required,gte=1"`
	}
	type cartInput struct {
		Positions []lineItem `json:"positions"`
	}

	errs := Struct(&cartInput{Positions: []lineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: -3},
		{Quantity: 1},
	}})
	assert.Contains(t, errs["positions.1.quantity"], "greater than or equal to 1")
	assert.Contains(t, errs["positions.2.product_id"], "required")
	assert.NotContains(t, errs, "positions.0.quantity")

	errs = Struct(&cartInput{})
	assert.False(t, HasErrors(errs))
}

func TestJSONNameUsedInMessages(t *testing.T) {
	type in struct {
		FullName string `json:"full_name" validate:"required"`
	}
	errs := Struct(&in{})
	assert.Contains(t, errs, "full_name")
}
