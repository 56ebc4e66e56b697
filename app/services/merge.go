package services

import (
	"errors"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"gorm.io/gorm"
)

// mergeOrderPositions reconciles the submitted (product, quantity) pairs
// against the order's persisted positions inside the caller's transaction:
//
//   - a submitted product that already has a position gets its quantity
//     overwritten (full replace, not an increment)
//   - a submitted product without one gets a new position row
//   - persisted positions whose product is not submitted stay untouched
//
// The submission is a patch, never a full replacement set. Duplicate product
// ids within one submission collapse last-wins: each later pair finds the
// row the earlier one created or updated.
func mergeOrderPositions(tx *gorm.DB, orders *repositories.OrderRepository, orderID uint, items []PositionInput) error {
	for _, item := range items {
		pos, err := orders.FindPosition(tx, orderID, item.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pos = models.OrderPosition{OrderID: orderID, ProductID: item.ProductID, Quantity: item.Quantity}
			if err := orders.CreatePositions(tx, []models.OrderPosition{pos}); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		pos.Quantity = item.Quantity
		if err := orders.SavePosition(tx, &pos); err != nil {
			return err
		}
	}
	return nil
}

// mergeCollectionMembers applies the collection variant of the merge: only
// membership matters, so submitted products already in the collection are
// skipped and missing ones are added. Existing members are never removed.
func mergeCollectionMembers(tx *gorm.DB, collections *repositories.CollectionRepository, collectionID uint, items []CollectionProductInput) error {
	existing, err := collections.MemberProductIDs(tx, collectionID)
	if err != nil {
		return err
	}

	seen := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}

	var added []models.CollectionProduct
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		added = append(added, models.CollectionProduct{CollectionID: collectionID, ProductID: item.ProductID})
	}

	return collections.CreateMembers(tx, added)
}
