package validator

// 配達員アサインの入力を検証
func ValidateAssignDelivery(deliveryManID int64, orderID int64) FieldErrors {
	errs := FieldErrors{}

	if deliveryManID <= 0 {
		errs.Add("delivery_man_id", "The delivery man id field is required.")
	}
	if orderID <= 0 {
		errs.Add("order_id", "The order id field is required.")
	}

	return errs
}

// アサイン解除の入力を検証
func ValidateUnassignDelivery(orderID int64) FieldErrors {
	errs := FieldErrors{}

	if orderID <= 0 {
		errs.Add("order_id", "The order id field is required.")
	}

	return errs
}
