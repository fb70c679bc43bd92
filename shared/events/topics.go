package events

// Participant sources
const (
	OrderSource             = "ORDER_SERVICE"
	ProductValidationSource = "PRODUCT_VALIDATION_SERVICE"
	PaymentSource           = "PAYMENT_SERVICE"
	InventorySource         = "INVENTORY_SERVICE"
)

// Bus topics
const (
	ProductValidationSuccessTopic Topic = "product-validation-success"
	ProductValidationFailTopic    Topic = "product-validation-fail"
	PaymentSuccessTopic           Topic = "payment-success"
	PaymentFailTopic              Topic = "payment-fail"
	InventorySuccessTopic         Topic = "inventory-success"
	InventoryFailTopic            Topic = "inventory-fail"
	NotifyEndingTopic             Topic = "notify-ending"
)
