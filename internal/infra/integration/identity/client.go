package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fala com o provedor de identidade (API estilo GoTrue). Uma ida e
// volta por operação: sem retry, sem refresh automático.
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

// SignIn: password grant. Credencial inválida volta como ProviderError com
// o status do provedor (tipicamente 400/401).
func (c *Client) SignIn(email, password string) (*AuthResult, error) {
	url := fmt.Sprintf("%s/token?grant_type=password", c.baseURL)

	body, err := c.post(url, credentialsRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("erro decode identity: %w", err)
	}

	return &AuthResult{User: token.User, Session: body}, nil
}

// SignUp cria o usuário. A sessão pode vir nula quando o provedor exige
// confirmação de email. Repassamos o que vier.
func (c *Client) SignUp(email, password string) (*AuthResult, error) {
	url := fmt.Sprintf("%s/signup", c.baseURL)

	body, err := c.post(url, credentialsRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("erro decode identity: %w", err)
	}

	user := token.User
	var session json.RawMessage
	if token.AccessToken != "" {
		session = body
	}
	if user == nil {
		// Resposta sem envelope de sessão: o corpo é o próprio usuário.
		user = body
	}

	return &AuthResult{User: user, Session: session}, nil
}

// GetUser valida o token e devolve o usuário cru.
func (c *Client) GetUser(accessToken string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/user", c.baseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request identity: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providerError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) SignOut(accessToken string) error {
	url := fmt.Sprintf("%s/logout", c.baseURL)

	_, err := c.post(url, struct{}{}, accessToken)
	return err
}

func (c *Client) post(url string, payload any, accessToken string) (json.RawMessage, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request identity: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providerError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func providerError(status int, body []byte) *ProviderError {
	var parsed providerErrorResponse
	message := ""
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.ErrorDescription != "":
			message = parsed.ErrorDescription
		case parsed.Message != "":
			message = parsed.Message
		case parsed.Error != "":
			message = parsed.Error
		}
	}
	if message == "" {
		message = fmt.Sprintf("identity provider error (status %d)", status)
	}
	return &ProviderError{Status: status, Message: message}
}
