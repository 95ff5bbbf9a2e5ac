package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProvider encapsula el flujo OAuth2 con Google: URL de autorización,
// intercambio del code y lectura del userinfo. El resto de la aplicación solo
// ve dto.GoogleProfile.
type GoogleProvider struct {
	cfg *oauth2.Config
}

// NewGoogleProvider construye el proveedor con las credenciales de la app.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL devuelve la URL de autorización de Google para el state dado.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange intercambia el authorization code por un token y obtiene el perfil
// del endpoint de userinfo.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*dto.GoogleProfile, error) {
	if code == "" {
		return nil, fmt.Errorf("oauth: authorization code vacío")
	}
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchange: %w", err)
	}

	client := p.cfg.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("oauth: userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("oauth: userinfo status %d: %s", resp.StatusCode, string(body))
	}

	var profile dto.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("oauth: decode userinfo: %w", err)
	}
	return &profile, nil
}
