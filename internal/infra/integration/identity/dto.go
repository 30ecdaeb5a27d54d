package identity

import "encoding/json"

// ProviderError carrega o status e a mensagem devolvidos pelo provedor de
// identidade. O handler repassa sem mascarar nem retentar.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// AuthResult é o par user/session repassado cru para o cliente. O provedor
// é colaborador opaco: não interpretamos os campos, só o contrato.
type AuthResult struct {
	User    json.RawMessage `json:"user"`
	Session json.RawMessage `json:"session"`
}

type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
}

type providerErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
