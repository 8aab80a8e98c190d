package model

// Customer represents a guest record as stored in the `customers`
// table.  The name is the business key; customers are created once and
// never modified afterwards.  Reservations reference customers by name
// but do not own them, so a single customer may appear on any number
// of reservations.
//
// Fields:
//  Name          – unique customer name (customers.name).
//  ContactInfo   – free-text contact details such as phone or email.
//  PaymentMethod – free-text payment method shown on the bill.
type Customer struct {
	Name          string `json:"name"`           // customers.name
	ContactInfo   string `json:"contact_info"`   // customers.contact_info
	PaymentMethod string `json:"payment_method"` // customers.payment_method
}
