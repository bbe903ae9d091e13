package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orders-api/internal/service"
)

type linkTasksInput struct {
	Tasks []service.TaskInput `json:"tasks"`
}

// LinkTasks
// @Summary LinkTasks
// @Description Appends tasks to an order, existing tasks are kept
// @Security ApiKeyAuth
// @ID link-tasks
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body linkTasksInput true "tasks to append"
// @Success 200 {object} orderResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/tasks [post]
func (h *Handler) LinkTasks(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in linkTasksInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(in.Tasks) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "Tasks array required")
		return
	}

	ord, err := h.orders.LinkTasks(userID, orderID, in.Tasks)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// UpdateTask
// @Summary UpdateTask
// @Description Partially updates one task, looked up only within the given order
// @Security ApiKeyAuth
// @ID update-task
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param taskId path int true "task id"
// @Param input body service.UpdateTaskInput true "partial task payload"
// @Success 200 {object} orderResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/tasks/{taskId} [put]
func (h *Handler) UpdateTask(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var in service.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := h.orders.UpdateTask(userID, orderID, taskID, in)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// DeleteTask
// @Summary DeleteTask
// @Description Removes one task from an order, siblings stay untouched
// @Security ApiKeyAuth
// @ID delete-task
// @Produce json
// @Param id path int true "order id"
// @Param taskId path int true "task id"
// @Success 200 {object} statusResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/tasks/{taskId} [delete]
func (h *Handler) DeleteTask(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.orders.DeleteTask(userID, orderID, taskID); err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "Task deleted"})
}
