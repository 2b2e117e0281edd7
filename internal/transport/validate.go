package transport

import (
	"fmt"
	"time"
)

const (
	msgRequired          = "Missing data for required field."
	msgOrderDateRequired = "Order date is required."
	msgOrderDateFormat   = "Invalid date format. Please use MM.DD.YYYY."

	// Layout for the MM.DD.YYYY wire format.
	orderDateLayout = "01.02.2006"
)

// FieldErrors maps a field name to the messages raised against it. A 400
// response serializes it as-is.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func msgTooLong(max int) string {
	return fmt.Sprintf("Longer than maximum length %d.", max)
}

func (r CustomerRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.Name == nil {
		errs.add("name", msgRequired)
	} else if len(*r.Name) > 50 {
		errs.add("name", msgTooLong(50))
	}

	if r.Email == nil {
		errs.add("email", msgRequired)
	} else if len(*r.Email) > 100 {
		errs.add("email", msgTooLong(100))
	}

	if r.Address != nil && len(*r.Address) > 200 {
		errs.add("address", msgTooLong(200))
	}

	return errs
}

func (r ProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.ProductName == nil {
		errs.add("product_name", msgRequired)
	} else if len(*r.ProductName) > 200 {
		errs.add("product_name", msgTooLong(200))
	}

	if r.Price == nil {
		errs.add("price", msgRequired)
	}

	return errs
}

// Validate returns the parsed order date alongside the error map; the date
// is only meaningful when the map is empty.
func (r OrderRequest) Validate() (time.Time, FieldErrors) {
	errs := FieldErrors{}

	var date time.Time
	if r.OrderDate == nil {
		errs.add("order_date", msgOrderDateRequired)
	} else {
		parsed, err := time.Parse(orderDateLayout, *r.OrderDate)
		if err != nil {
			errs.add("order_date", msgOrderDateFormat)
		} else {
			date = parsed
		}
	}

	if r.CustomerID == nil || *r.CustomerID == 0 {
		errs.add("customer_id", msgRequired)
	}

	return date, errs
}
