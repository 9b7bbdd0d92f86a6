package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Keys set by the auth middleware.
const (
	KeySellerID ContextKey = "seller_id"
	KeyRoles    ContextKey = "roles"
)

// SetSeller records the authenticated seller on echo.Context.
func SetSeller(c echo.Context, sellerID uuid.UUID, roles []string) {
	c.Set(string(KeySellerID), sellerID)
	c.Set(string(KeyRoles), roles)
}

// GetSellerID returns the authenticated seller, if any.
func GetSellerID(c echo.Context) (uuid.UUID, bool) {
	sellerID, ok := c.Get(string(KeySellerID)).(uuid.UUID)
	if !ok || sellerID == uuid.Nil {
		return uuid.Nil, false
	}

	return sellerID, true
}

// GetRoles returns the roles of the authenticated seller.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}
