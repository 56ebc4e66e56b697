package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
)

func TestCollectionCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)

	beans := seedProduct(t, db, "Beans", "10.00")
	mug := seedProduct(t, db, "Mug", "5.00")

	created, err := svc.Create(CollectionCreateInput{
		Name: "Starter Kit",
		Slug: "starter-kit",
		Products: []CollectionProductInput{
			{ProductID: beans.ID},
			{ProductID: mug.ID},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Starter Kit", created.Name)
	assert.Len(t, created.Products, 2)
}

func TestCollectionCreateRejectsEmptyProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)

	_, err := svc.Create(CollectionCreateInput{Name: "Empty"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no products specified", verr.Fields["products"])
}

func TestCollectionCreateRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)
	beans := seedProduct(t, db, "Beans", "10.00")

	_, err := svc.Create(CollectionCreateInput{
		Name: "Dups",
		Products: []CollectionProductInput{
			{ProductID: beans.ID},
			{ProductID: beans.ID},
		},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duplicate products in collection", verr.Fields["products"])

	var count int64
	require.NoError(t, db.Model(&models.Collection{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCollectionCreateRejectsUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)

	_, err := svc.Create(CollectionCreateInput{
		Name:     "Ghost",
		Products: []CollectionProductInput{{ProductID: 42}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["products"], "42")
}

func TestCollectionUpdateMergesMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)

	beans := seedProduct(t, db, "Beans", "10.00")
	mug := seedProduct(t, db, "Mug", "5.00")
	kettle := seedProduct(t, db, "Kettle", "40.00")

	created, err := svc.Create(CollectionCreateInput{
		Name:     "Kit",
		Products: []CollectionProductInput{{ProductID: beans.ID}, {ProductID: mug.ID}},
	})
	require.NoError(t, err)

	// Submit one existing and one new member: existing stays single, new
	// one is added, nothing is removed.
	name := "Kit v2"
	updated, err := svc.Update(created.ID, CollectionUpdateInput{
		Name:     &name,
		Products: []CollectionProductInput{{ProductID: mug.ID}, {ProductID: kettle.ID}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Kit v2", updated.Name)
	ids := make(map[uint]bool)
	for _, member := range updated.Products {
		assert.False(t, ids[member.ProductID], "duplicate member %d", member.ProductID)
		ids[member.ProductID] = true
	}
	assert.Equal(t, map[uint]bool{beans.ID: true, mug.ID: true, kettle.ID: true}, ids)
}

func TestCollectionUpdateKeepsOmittedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)
	beans := seedProduct(t, db, "Beans", "10.00")

	created, err := svc.Create(CollectionCreateInput{
		Name:     "Kit",
		Slug:     "kit",
		Text:     "original",
		Products: []CollectionProductInput{{ProductID: beans.ID}},
	})
	require.NoError(t, err)

	text := "updated"
	updated, err := svc.Update(created.ID, CollectionUpdateInput{Text: &text})
	require.NoError(t, err)

	assert.Equal(t, "Kit", updated.Name)
	assert.Equal(t, "kit", updated.Slug)
	assert.Equal(t, "updated", updated.Text)
	assert.Len(t, updated.Products, 1)
}

func TestCollectionDeleteKeepsProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectionService(db)
	beans := seedProduct(t, db, "Beans", "10.00")

	created, err := svc.Create(CollectionCreateInput{
		Name:     "Kit",
		Products: []CollectionProductInput{{ProductID: beans.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var members int64
	require.NoError(t, db.Model(&models.CollectionProduct{}).Count(&members).Error)
	assert.Zero(t, members)

	var product models.Product
	assert.NoError(t, db.First(&product, beans.ID).Error)
}
