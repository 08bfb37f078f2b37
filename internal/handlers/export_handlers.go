package handlers

import (
	"net/http"

	"gym_crm_backend/internal/export"
	"gym_crm_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams .xlsx snapshots of the stored data.
type ExportHandler struct {
	clients  services.ClientService
	periods  services.PeriodService
	groups   services.GroupService
	payments services.PaymentService
	freeze   services.FreezeSettingsService
}

func NewExportHandler(
	cs services.ClientService,
	ps services.PeriodService,
	gs services.GroupService,
	pms services.PaymentService,
	fs services.FreezeSettingsService,
) *ExportHandler {
	return &ExportHandler{clients: cs, periods: ps, groups: gs, payments: pms, freeze: fs}
}

// ExportClients returns every client as clients.xlsx.
func (h *ExportHandler) ExportClients(c *gin.Context) {
	clients, err := h.clients.GetClients(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "ExportClients: Error from clientService.GetClients", "Failed to export clients.")
		return
	}
	h.sendWorkbook(c, "clients.xlsx", export.ClientsSheet(clients))
}

// ExportReferences returns periods, groups, payment methods and freeze settings as references.xlsx.
func (h *ExportHandler) ExportReferences(c *gin.Context) {
	ctx := c.Request.Context()
	periods, err := h.periods.GetPeriods(ctx)
	if err != nil {
		respondInternal(c, err, "ExportReferences: Error from periodService.GetPeriods", "Failed to export references.")
		return
	}
	groups, err := h.groups.GetGroups(ctx)
	if err != nil {
		respondInternal(c, err, "ExportReferences: Error from groupService.GetGroups", "Failed to export references.")
		return
	}
	payments, err := h.payments.GetPayments(ctx)
	if err != nil {
		respondInternal(c, err, "ExportReferences: Error from paymentService.GetPayments", "Failed to export references.")
		return
	}
	freeze, err := h.freeze.GetFreezeSettings(ctx)
	if err != nil {
		respondInternal(c, err, "ExportReferences: Error from settingsService.GetFreezeSettings", "Failed to export references.")
		return
	}
	h.sendWorkbook(c, "references.xlsx", export.ReferenceSheets(periods, groups, payments, freeze)...)
}

func (h *ExportHandler) sendWorkbook(c *gin.Context, filename string, sheets ...export.Sheet) {
	data, err := export.Render(sheets...)
	if err != nil {
		respondInternal(c, err, "sendWorkbook: Failed to render "+filename, "Failed to build spreadsheet.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
