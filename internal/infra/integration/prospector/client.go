package prospector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// Client busca as empresas salvas (bookmarks) no provedor de dados de
// empresas. Só leitura, uma requisição por página.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchSavedCompanies pagina os bookmarks de organização. 404 do provedor
// significa "nenhuma empresa salva" e vira página vazia; qualquer outro
// erro sobe com o status original para o handler repassar.
func (c *Client) FetchSavedCompanies(limit, page int) (*CompanyPage, error) {
	url := fmt.Sprintf("%s/bookmarks", c.baseURL)

	payload := bookmarksRequest{
		Limit: limit,
		Page:  page,
		Type:  "organization",
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal bookmarks: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request prospector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &CompanyPage{
			Companies: []entity.Company{},
			Page:      page,
			Limit:     limit,
		}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ Erro prospector (status %d): %s", resp.StatusCode, string(body))
		return nil, &ProviderError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("falha ao buscar empresas salvas (status %d)", resp.StatusCode),
		}
	}

	var parsed bookmarksResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("erro decode prospector: %w", err)
	}

	companies := make([]entity.Company, 0, len(parsed.Bookmarks))
	for _, b := range parsed.Bookmarks {
		if b.OrganizationID == "" {
			continue
		}
		name := b.OrganizationName
		if name == "" {
			name = b.Name
		}
		companies = append(companies, entity.Company{
			ID:                 b.OrganizationID,
			Name:               name,
			Domain:             b.Domain,
			Industry:           b.Industry,
			EmployeeCount:      b.EmployeeCount,
			EmployeeCountRange: b.EmployeeCountRange,
			RevenueRange:       b.RevenueRange,
			LogoURL:            b.LogoURL,
			LinkedinURL:        b.LinkedinURL,
			FoundedYear:        b.FoundedYear,
			HQAddress:          b.HQAddress,
			Countries:          b.Countries,
			Website:            b.Website,
			Phone:              b.Phone,
		})
	}

	total := parsed.Pagination.TotalEntries
	if total == 0 {
		total = len(companies)
	}

	return &CompanyPage{
		Companies: companies,
		Total:     total,
		Page:      page,
		Limit:     limit,
		HasMore:   parsed.Pagination.TotalPages > 0 && page < parsed.Pagination.TotalPages,
	}, nil
}
