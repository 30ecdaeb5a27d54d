package prospector

import "github.com/xavierca1/ligue-crm/internal/entity"

type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// CompanyPage é a página de empresas salvas já mapeada para o formato do
// CRM.
type CompanyPage struct {
	Companies []entity.Company `json:"companies"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	Limit     int              `json:"limit"`
	HasMore   bool             `json:"hasMore"`
}

type bookmarksRequest struct {
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
	Type  string `json:"type"`
}

type bookmarkRecord struct {
	OrganizationID     string   `json:"organization_id"`
	OrganizationName   string   `json:"organization_name"`
	Name               string   `json:"name"`
	Domain             string   `json:"domain"`
	Industry           string   `json:"industry"`
	EmployeeCount      int      `json:"employee_count"`
	EmployeeCountRange string   `json:"employee_count_range"`
	RevenueRange       string   `json:"revenue_range"`
	LogoURL            string   `json:"logo_url"`
	LinkedinURL        string   `json:"linkedin_url"`
	FoundedYear        int      `json:"founded_year"`
	HQAddress          string   `json:"hq_address"`
	Countries          []string `json:"countries"`
	Website            string   `json:"website"`
	Phone              string   `json:"phone"`
}

type bookmarksResponse struct {
	Bookmarks  []bookmarkRecord `json:"bookmarks"`
	Pagination struct {
		TotalEntries int `json:"total_entries"`
		TotalPages   int `json:"total_pages"`
	} `json:"pagination"`
}
