package service

import "encoding/json"

// Pointer fields distinguish an absent key from a zero value, matching
// the partial-update contract: only keys present in the request change
// anything.

type CreateOrderInput struct {
	Name        string           `json:"name"`
	OrderNumber int              `json:"orderNumber"`
	OrderDate   string           `json:"orderDate"`
	Status      *string          `json:"status"`
	Currency    string           `json:"currency"`
	OrderLines  []OrderLineInput `json:"orderLines" validate:"omitempty,dive"`
}

type OrderLineInput struct {
	Amount      *float64 `json:"amount"      validate:"required"`
	ProductName string   `json:"productName" validate:"required"`
	PickedDate  *string  `json:"pickedDate"`
}

// UpdateOrderInput: a nil OrderLines means the key was absent and the
// existing lines stay. A non-nil one, even pointing at an empty slice,
// replaces every line the order has.
type UpdateOrderInput struct {
	Name        *string           `json:"name"`
	OrderNumber *int              `json:"orderNumber"`
	OrderDate   *string           `json:"orderDate"`
	Status      *string           `json:"status"`
	OrderLines  *[]OrderLineInput `json:"orderLines" validate:"omitempty,dive"`
}

type TaskInput struct {
	Name          string  `json:"name"          validate:"required"`
	Description   *string `json:"description"`
	ExecutionDate string  `json:"executionDate" validate:"required"`
}

// UpdateTaskInput: description and executionDate carry key-present
// semantics. An explicit null clears the field, an absent key leaves it
// untouched.
type UpdateTaskInput struct {
	Name          *string   `json:"name"`
	Description   OptString `json:"description"`
	ExecutionDate OptString `json:"executionDate"`
}

// OptString is a tri-state JSON string: absent, null, or a value.
type OptString struct {
	Set   bool
	Value *string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o OptString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
