package api

type BusinessResponse struct {
	UUID         string  `json:"uuid" readonly:"true"`
	Name         string  `json:"name"`
	Subdomain    string  `json:"subdomain"`
	CustomDomain *string `json:"custom_domain"`
	DomainStatus string  `json:"domain_status"`
	Status       string  `json:"status"`
	Template     string  `json:"template"`
}

type SignupRequest struct {
	Name           string `json:"name"`
	Subdomain      string `json:"subdomain"`
	Template       string `json:"template"`
	InvitationCode string `json:"invitation_code"`
}

// SignupResponse carries the api key exactly once; only a digest is stored.
type SignupResponse struct {
	Business BusinessResponse `json:"business"`
	ApiKey   string           `json:"api_key"`
}

type LoginRequest struct {
	Subdomain string `json:"subdomain"`
	ApiKey    string `json:"api_key"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type BusinessUpdateRequest struct {
	Name     *string `json:"name"`
	Template *string `json:"template"`
}

type BusinessCollectionResponse struct {
	Data  []BusinessResponse `json:"data"`
	Meta  ResponseMetadata   `json:"meta"`
	Links Links              `json:"links"`
}

func (b *BusinessCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	b.Meta = meta
	b.Links = links
}

// ResolveResponse is what the storefront renderer gets back for a host
// lookup: either the platform marker or the matched business. Redirect is
// set when the requested path is not served on the platform domain.
type ResolveResponse struct {
	Platform bool              `json:"platform"`
	Business *BusinessResponse `json:"business,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}
