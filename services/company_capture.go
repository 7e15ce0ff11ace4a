package services

import (
	"errors"
	"strings"

	"github.com/arvotech/corporate-app/models"
	"gorm.io/gorm"
)

// DeriveCompanyName picks the company name from the explicit company field,
// then the organization field, then the submitter's email domain label,
// title-cased. Returns the name and its source, or empty strings when
// nothing usable exists.
func DeriveCompanyName(company, organization, email string) (string, string) {
	if strings.TrimSpace(company) != "" {
		return strings.TrimSpace(company), "company_field"
	}
	if strings.TrimSpace(organization) != "" {
		return strings.TrimSpace(organization), "organization_field"
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", ""
	}
	domain := email[at+1:]
	label := strings.Split(domain, ".")[0]
	if label == "" {
		return "", ""
	}

	// Title-case by rune; domain labels are not always ASCII.
	runes := []rune(label)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:])), "email_domain"
}

// CaptureCompany upserts a company row keyed by the normalized name.
// Callers treat any error as non-fatal enrichment failure.
func CaptureCompany(db *gorm.DB, company, organization, email string) error {
	name, source := DeriveCompanyName(company, organization, email)
	if name == "" {
		return errors.New("no company name could be derived")
	}

	normalized := strings.ToLower(strings.Join(strings.Fields(name), " "))

	record := models.Company{
		Name:           name,
		NormalizedName: normalized,
		Source:         source,
	}
	return db.Where(models.Company{NormalizedName: normalized}).
		FirstOrCreate(&record).Error
}
