package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/auth"
)

var (
	anonymous *auth.Identity
	customer  = &auth.Identity{ID: 1}
	staff     = &auth.Identity{ID: 2, IsStaff: true}
)

func TestCanCatalogReadsArePublic(t *testing.T) {
	assert.True(t, Can("products", ActionList, anonymous))
	assert.True(t, Can("collections", ActionRetrieve, anonymous))
	assert.True(t, Can("reviews", ActionList, anonymous))
}

func TestCanCatalogWritesAreStaffOnly(t *testing.T) {
	for _, resource := range []string{"products", "collections"} {
		for _, action := range []string{ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy} {
			assert.False(t, Can(resource, action, anonymous), "%s %s anonymous", resource, action)
			assert.False(t, Can(resource, action, customer), "%s %s customer", resource, action)
			assert.True(t, Can(resource, action, staff), "%s %s staff", resource, action)
		}
	}
}

func TestCanOrdersNeedAuthentication(t *testing.T) {
	assert.False(t, Can("orders", ActionList, anonymous))
	assert.True(t, Can("orders", ActionCreate, customer))
	assert.True(t, Can("orders", ActionDestroy, customer))
}

func TestCanUnknownPairsAreDenied(t *testing.T) {
	assert.False(t, Can("payments", ActionList, staff))
	assert.False(t, Can("orders", "approve", staff))
}

func TestRequireStatusCodes(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Require("products", ActionCreate)(next)

	// Anonymous caller: 401.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
