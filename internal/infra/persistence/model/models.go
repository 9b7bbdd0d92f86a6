// Package model holds the GORM table structs.
package model

// All lists every table model in migration order.
func All() []any {
	return []any{
		&SellerModel{},
		&OfferModel{},
		&RatingModel{},
		&NotificationModel{},
		&SellerDeviceModel{},
	}
}
