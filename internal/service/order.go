package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"

	"orders-api/internal/models"
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func (s *Service) validate(in interface{}) error {
	if err := s.v.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (s *Service) CreateOrder(userID uint, in CreateOrderInput) (models.Order, error) {
	if err := s.validate(in); err != nil {
		return models.Order{}, err
	}
	if in.OrderDate == "" {
		return models.Order{}, fmt.Errorf("%w: orderDate is required", ErrValidation)
	}
	orderDate, err := models.ParseDateTime(in.OrderDate)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := models.StatusPending
	if in.Status != nil {
		status, err = models.ParseStatus(*in.Status)
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	lines, err := buildLines(in.OrderLines)
	if err != nil {
		return models.Order{}, err
	}

	ord := models.Order{
		UserID:      userID,
		Name:        in.Name,
		OrderNumber: in.OrderNumber,
		OrderDate:   orderDate,
		Status:      status,
		Currency:    in.Currency,
		OrderLines:  lines,
	}
	if err := s.OrderPostgres.Create(&ord); err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(userID, ord.ID)
}

func (s *Service) GetOrder(userID, orderID uint) (models.Order, error) {
	ord, err := s.OrderPostgres.Get(orderID, userID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return ord, err
}

func (s *Service) GetAllOrders(userID uint) ([]models.Order, error) {
	return s.OrderPostgres.GetAll(userID)
}

func (s *Service) UpdateOrder(userID, orderID uint, in UpdateOrderInput) (models.Order, error) {
	if err := s.validate(in); err != nil {
		return models.Order{}, err
	}
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}

	if in.Name != nil {
		ord.Name = *in.Name
	}
	if in.OrderNumber != nil {
		ord.OrderNumber = *in.OrderNumber
	}
	if in.OrderDate != nil {
		orderDate, err := models.ParseDateTime(*in.OrderDate)
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		ord.OrderDate = orderDate
	}
	if in.Status != nil {
		status, err := models.ParseStatus(*in.Status)
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		ord.Status = status
	}

	var replacement *[]models.OrderLine
	if in.OrderLines != nil {
		lines, err := buildLines(*in.OrderLines)
		if err != nil {
			return models.Order{}, err
		}
		replacement = &lines
	}

	if err := s.OrderPostgres.Update(&ord, replacement); err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(userID, orderID)
}

func (s *Service) DeleteOrder(userID, orderID uint) error {
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return err
	}
	return s.OrderPostgres.Delete(&ord)
}

func (s *Service) UpdateOrderStatus(userID, orderID uint, status string) (models.Order, error) {
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}
	// The status set is closed: no transition graph, but the value itself
	// must be a known one.
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ord.Status = parsed
	if err := s.OrderPostgres.Update(&ord, nil); err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(userID, orderID)
}

func (s *Service) LinkTasks(userID, orderID uint, in []TaskInput) (models.Order, error) {
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}

	tasks := make([]models.Task, 0, len(in))
	for _, ti := range in {
		if err := s.validate(ti); err != nil {
			return models.Order{}, err
		}
		execDate, err := models.ParseDateTime(ti.ExecutionDate)
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		tasks = append(tasks, models.Task{
			Name:          ti.Name,
			Description:   ti.Description,
			ExecutionDate: &execDate,
		})
	}

	if err := s.OrderPostgres.AddTasks(&ord, tasks); err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(userID, orderID)
}

func (s *Service) UpdateTask(userID, orderID, taskID uint, in UpdateTaskInput) (models.Order, error) {
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}

	task := findTask(ord.Tasks, taskID)
	if task == nil {
		return models.Order{}, ErrTaskNotFound
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Description.Set {
		task.Description = in.Description.Value
	}
	if in.ExecutionDate.Set {
		if in.ExecutionDate.Value == nil {
			task.ExecutionDate = nil
		} else {
			execDate, err := models.ParseDateTime(*in.ExecutionDate.Value)
			if err != nil {
				return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			task.ExecutionDate = &execDate
		}
	}

	if err := s.OrderPostgres.UpdateTask(task); err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(userID, orderID)
}

func (s *Service) DeleteTask(userID, orderID, taskID uint) error {
	ord, err := s.GetOrder(userID, orderID)
	if err != nil {
		return err
	}
	task := findTask(ord.Tasks, taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	return s.OrderPostgres.DeleteTask(task)
}

// findTask looks the task up inside the order's own list only, so a
// task id that lives under another order never matches.
func findTask(tasks []models.Task, taskID uint) *models.Task {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return &tasks[i]
		}
	}
	return nil
}

func buildLines(in []OrderLineInput) ([]models.OrderLine, error) {
	lines := make([]models.OrderLine, 0, len(in))
	for _, li := range in {
		if li.Amount == nil {
			return nil, fmt.Errorf("%w: order line amount is required", ErrValidation)
		}
		if li.ProductName == "" {
			return nil, fmt.Errorf("%w: order line productName is required", ErrValidation)
		}
		line := models.OrderLine{
			Amount:      *li.Amount,
			ProductName: li.ProductName,
		}
		if li.PickedDate != nil {
			picked, err := models.ParseDateTime(*li.PickedDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			line.PickedDate = &picked
		}
		lines = append(lines, line)
	}
	return lines, nil
}
