package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"MissionControl/Ledger"
	"MissionControl/Models"
)

// AssignmentController exposes the ledger synchronizer over HTTP.
type AssignmentController struct {
	Ledger *Ledger.Synchronizer
}

func NewAssignmentController(sync *Ledger.Synchronizer) *AssignmentController {
	return &AssignmentController{Ledger: sync}
}

// requestRole resolves the coarse role of the verified session user.
func requestRole(c *fiber.Ctx) string {
	if user, ok := c.Locals("user").(Models.User); ok {
		return user.Role()
	}
	return Models.RoleUser
}

// GetAssignments returns the filtered, sorted ledger view.
func (ctl *AssignmentController) GetAssignments(c *fiber.Ctx) error {
	view := ctl.Ledger.View(
		c.Query("status", Ledger.FilterAll),
		c.Query("assignee", Ledger.FilterAllAgents),
		c.Query("search", ""),
		c.Query("sort", Ledger.SortByDate),
	)
	return c.JSON(view)
}

// GetAssignment returns a single record by task id.
func (ctl *AssignmentController) GetAssignment(c *fiber.Ctx) error {
	record, ok := ctl.Ledger.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}
	return c.JSON(record)
}

// CreateAssignment registers a new ledger record. Admin only.
func (ctl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	var input Models.Assignment
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now().UTC()
	if input.TaskID == "" {
		input.TaskID = Models.NewTaskID(now)
	}
	if input.AssignedDate == "" {
		input.AssignedDate = now.Format("2006-01-02")
	}
	if input.Status == "" {
		input.Status = Models.StatusPending
	}
	input.LastUpdated = now.Format(time.RFC3339)
	input.Updates = []Models.AssignmentUpdate{}
	if input.Difficulties == nil {
		input.Difficulties = []string{}
	}

	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctl.Ledger.Upsert(input, requestRole(c))
	return c.Status(fiber.StatusCreated).JSON(input)
}

// UpdateAssignment applies a full-record edit. Admin only. Creation-time
// fields and the update history are preserved; lastUpdated is bumped.
func (ctl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	record, ok := ctl.Ledger.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}

	var input Models.Assignment
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record.TaskTitle = input.TaskTitle
	record.AssignedTo = input.AssignedTo
	record.Category = input.Category
	record.DueDate = input.DueDate
	record.Notes = input.Notes
	if input.AssignedDate != "" {
		record.AssignedDate = input.AssignedDate
	}
	record.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := record.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctl.Ledger.Upsert(record, requestRole(c))
	return c.JSON(record)
}

type StatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

// UpdateStatus appends a progress log entry and moves the record to the new
// status. Available to every operator.
func (ctl *AssignmentController) UpdateStatus(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if _, ok := ctl.Ledger.Get(taskID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !Models.ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status"})
	}

	ctl.Ledger.AppendStatusUpdate(taskID, req.Status, req.Comment, requestRole(c))
	record, _ := ctl.Ledger.Get(taskID)
	return c.JSON(record)
}

// DeleteAssignment purges a record. Admin only, and the irreversible-action
// confirmation must have been acknowledged by the caller.
func (ctl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if _, ok := ctl.Ledger.Get(taskID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Irreversible action requires confirmation",
		})
	}

	ctl.Ledger.Delete(taskID, requestRole(c), true)
	return c.JSON(fiber.Map{"message": "Record purged"})
}

// ExportCSV streams the full unfiltered ledger as a CSV attachment.
func (ctl *AssignmentController) ExportCSV(c *fiber.Ctx) error {
	data := ctl.Ledger.ExportCSV()
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+Ledger.ExportFileName(time.Now().UTC(), "csv")+`"`)
	return c.Send(data)
}

// ExportXLSX streams the ledger as a spreadsheet attachment.
func (ctl *AssignmentController) ExportXLSX(c *fiber.Ctx) error {
	data, err := ctl.Ledger.ExportXLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Export failed"})
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+Ledger.ExportFileName(time.Now().UTC(), "xlsx")+`"`)
	return c.Send(data)
}

// GetStats returns the HUD counters.
func (ctl *AssignmentController) GetStats(c *fiber.Ctx) error {
	return c.JSON(ctl.Ledger.Stats())
}

// ManualRefresh runs a user-triggered reload with the syncing indicator
// raised, then reports the resulting uplink state.
func (ctl *AssignmentController) ManualRefresh(c *fiber.Ctx) error {
	ctl.Ledger.Refresh(c.UserContext(), false)
	status, syncing, count := ctl.Ledger.Status()
	return c.JSON(fiber.Map{
		"syncStatus": status,
		"isSyncing":  syncing,
		"records":    count,
	})
}

// GetSyncStatus reports the uplink state shown in the status bar.
func (ctl *AssignmentController) GetSyncStatus(c *fiber.Ctx) error {
	status, syncing, count := ctl.Ledger.Status()
	return c.JSON(fiber.Map{
		"syncStatus": status,
		"isSyncing":  syncing,
		"records":    count,
	})
}
