package controllers

// ErrNoPendingOrders is returned when settlement is attempted for a
// phone with nothing left on its tab.
var ErrNoPendingOrders = &CustomError{"No pending orders found"}

// ErrUnknownPhone maps a foreign-key violation on order insert.
var ErrUnknownPhone = &CustomError{"Unknown phone: no reservation exists for this number"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
