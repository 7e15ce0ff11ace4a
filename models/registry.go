package models

// BrowsableTables is the allowlist for the admin table browser, export and
// dashboard endpoints. The generic CRUD engine refuses any name outside it.
var BrowsableTables = []string{
	"users",
	"otp_challenges",
	"companies",
	"contact_submissions",
	"inquiries",
	"job_postings",
	"job_applications",
	"support_tickets",
	"innovation_lab_applications",
	"scheduled_calls",
	"visitor_logs",
	"email_logs",
	"page_contents",
}

func IsBrowsableTable(name string) bool {
	for _, t := range BrowsableTables {
		if t == name {
			return true
		}
	}
	return false
}
