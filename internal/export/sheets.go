package export

import (
	"strconv"
	"strings"

	"gym_crm_backend/internal/models"
)

const listSeparator = ", "

// ClientsSheet lays out every client column, one client per row.
func ClientsSheet(clients []models.Client) Sheet {
	s := Sheet{
		Title: "Clients",
		Header: []string{
			"ID", "Contract", "Name", "Surname", "Phone", "Address", "Birth date",
			"Start date", "End date", "Period", "Amount", "Payment method", "Group",
			"Trainer", "Status", "Paid", "Sessions", "Discount", "Discount reason",
			"Deleted", "Comment",
		},
	}
	for _, c := range clients {
		s.Rows = append(s.Rows, []string{
			strconv.FormatInt(c.ID, 10),
			str(c.ContractNumber),
			c.Name,
			c.Surname,
			c.Phone,
			str(c.Address),
			str(c.BirthDate),
			str(c.StartDate),
			str(c.EndDate),
			str(c.SubscriptionPeriod),
			str(c.PaymentAmount),
			str(c.PaymentMethod),
			str(c.Group),
			str(c.Trainer),
			c.Status,
			yesNo(c.Paid),
			strconv.Itoa(c.TotalSessions),
			yesNo(c.HasDiscount),
			str(c.DiscountReason),
			yesNo(c.Deleted),
			str(c.Comment),
		})
	}
	return s
}

// ReferenceSheets renders the lookup tables the client form draws from.
func ReferenceSheets(periods []models.Period, groups []models.Group, payments []models.Payment, freeze []models.FreezeSettings) []Sheet {
	periodSheet := Sheet{Title: "Periods", Header: []string{"ID", "Label", "Value", "Months", "Price", "Trainings"}}
	for _, p := range periods {
		periodSheet.Rows = append(periodSheet.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Label,
			p.Value,
			strconv.Itoa(p.Months),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Trainings),
		})
	}

	groupSheet := Sheet{Title: "Groups", Header: []string{"ID", "Name", "Days", "Start", "End", "Comment"}}
	for _, g := range groups {
		groupSheet.Rows = append(groupSheet.Rows, []string{
			strconv.FormatInt(g.ID, 10),
			g.Name,
			str(g.Days),
			str(g.TimeStart),
			str(g.TimeEnd),
			str(g.Comment),
		})
	}

	paymentSheet := Sheet{Title: "Payments", Header: []string{"ID", "Label", "Value", "Type", "Banks"}}
	for _, p := range payments {
		paymentSheet.Rows = append(paymentSheet.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Label,
			p.Value,
			str(p.Type),
			strings.Join(p.Banks, listSeparator),
		})
	}

	freezeSheet := Sheet{Title: "Freeze", Header: []string{"ID", "Max days", "Reasons", "Require confirm"}}
	for _, f := range freeze {
		freezeSheet.Rows = append(freezeSheet.Rows, []string{
			strconv.FormatInt(f.ID, 10),
			strconv.Itoa(f.MaxDays),
			strings.Join(f.Reasons, listSeparator),
			yesNo(f.RequireConfirm),
		})
	}

	return []Sheet{periodSheet, groupSheet, paymentSheet, freezeSheet}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
