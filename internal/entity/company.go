package entity

// Company é o registro vindo do provedor de dados de empresas. Só transita
// pelo proxy, nunca é persistido localmente.
type Company struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Domain             string   `json:"domain,omitempty"`
	Industry           string   `json:"industry,omitempty"`
	EmployeeCount      int      `json:"employeeCount,omitempty"`
	EmployeeCountRange string   `json:"employeeCountRange,omitempty"`
	RevenueRange       string   `json:"revenueRange,omitempty"`
	LogoURL            string   `json:"logoUrl,omitempty"`
	LinkedinURL        string   `json:"linkedinUrl,omitempty"`
	FoundedYear        int      `json:"foundedYear,omitempty"`
	HQAddress          string   `json:"hqAddress,omitempty"`
	Countries          []string `json:"countries,omitempty"`
	Website            string   `json:"website,omitempty"`
	Phone              string   `json:"phone,omitempty"`
}
