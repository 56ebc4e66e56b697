// Package rbac maps (resource, action) pairs to required capabilities.
//
// Instead of scattering role checks across controllers, every mutating route
// declares its resource and action once and the table below decides who may
// proceed. Instance-level ownership (may THIS user touch THIS order) is the
// services' concern; rbac only gates the action class.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// Capability decides whether an identity may perform an action.
// identity is nil for anonymous requests.
type Capability func(identity *auth.Identity) bool

// Anyone admits every caller, including anonymous ones.
func Anyone(*auth.Identity) bool { return true }

// Authenticated admits any caller with a valid token.
func Authenticated(identity *auth.Identity) bool { return identity != nil }

// Staff admits only callers with the staff flag.
func Staff(identity *auth.Identity) bool { return identity != nil && identity.IsStaff }

// Action names follow the REST verb mapping used by the routes.
const (
	ActionList          = "list"
	ActionRetrieve      = "retrieve"
	ActionCreate        = "create"
	ActionUpdate        = "update"
	ActionPartialUpdate = "partial_update"
	ActionDestroy       = "destroy"
)

// policy is the capability table. Reads are public everywhere except orders;
// catalog writes are staff-only; orders and reviews are created by any
// authenticated user (ownership enforced downstream).
var policy = map[string]map[string]Capability{
	"users": {
		ActionList:     Staff,
		ActionRetrieve: Authenticated,
	},
	"products": {
		ActionList:          Anyone,
		ActionRetrieve:      Anyone,
		ActionCreate:        Staff,
		ActionUpdate:        Staff,
		ActionPartialUpdate: Staff,
		ActionDestroy:       Staff,
	},
	"collections": {
		ActionList:          Anyone,
		ActionRetrieve:      Anyone,
		ActionCreate:        Staff,
		ActionUpdate:        Staff,
		ActionPartialUpdate: Staff,
		ActionDestroy:       Staff,
	},
	"orders": {
		ActionList:          Authenticated,
		ActionRetrieve:      Authenticated,
		ActionCreate:        Authenticated,
		ActionUpdate:        Authenticated,
		ActionPartialUpdate: Authenticated,
		ActionDestroy:       Authenticated,
	},
	"reviews": {
		ActionList:          Anyone,
		ActionRetrieve:      Anyone,
		ActionCreate:        Authenticated,
		ActionUpdate:        Authenticated,
		ActionPartialUpdate: Authenticated,
		ActionDestroy:       Authenticated,
	},
}

// Can reports whether identity may perform action on resource.
// Unknown (resource, action) pairs are denied.
func Can(resource, action string, identity *auth.Identity) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	capability, ok := actions[action]
	if !ok {
		return false
	}
	return capability(identity)
}

// Require returns middleware enforcing the capability table for one route.
// Anonymous callers hitting an authenticated action get 401; authenticated
// callers without the capability get 403.
func Require(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity *auth.Identity
			if id, ok := middleware.IdentityFromCtx(r); ok {
				identity = &id
			}

			if !Can(resource, action, identity) {
				if identity == nil {
					response.Unauthorized(w)
				} else {
					response.Forbidden(w)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
