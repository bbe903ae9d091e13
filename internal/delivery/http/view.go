package http

import (
	"orders-api/internal/models"
)

// Wire representations. Timestamps go out as "2006-01-02 15:04:05",
// optional ones as null.

type orderResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	OrderNumber int                 `json:"orderNumber"`
	OrderDate   string              `json:"orderDate"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	OrderLines  []orderLineResponse `json:"orderLines"`
	Tasks       []taskResponse      `json:"tasks"`
}

type orderLineResponse struct {
	ID          uint    `json:"id"`
	Amount      float64 `json:"amount"`
	ProductName string  `json:"productName"`
	PickedDate  *string `json:"pickedDate"`
}

type taskResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	ExecutionDate *string `json:"executionDate"`
}

func toOrderResponse(o models.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.OrderLines))
	for _, l := range o.OrderLines {
		lines = append(lines, orderLineResponse{
			ID:          l.ID,
			Amount:      l.Amount,
			ProductName: l.ProductName,
			PickedDate:  models.FormatDateTime(l.PickedDate),
		})
	}

	tasks := make([]taskResponse, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, taskResponse{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			ExecutionDate: models.FormatDateTime(t.ExecutionDate),
		})
	}

	return orderResponse{
		ID:          o.ID,
		Name:        o.Name,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate.Format(models.DateTimeLayout),
		Status:      string(o.Status),
		Currency:    o.Currency,
		OrderLines:  lines,
		Tasks:       tasks,
	}
}

func toOrderResponses(orders []models.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
