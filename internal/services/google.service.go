package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"driftline/config"

	logger "github.com/Bparsons0904/goLogger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the profile payload Google's userinfo endpoint returns
// for an access token.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleService drives both halves of the Google sign-in flow: the browser
// redirect (consent URL plus code exchange) and the direct token path where
// a client already holds an access token.
type GoogleService struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	userInfoURL string
	log         logger.Logger
}

func NewGoogleService(config config.Config) *GoogleService {
	return &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     config.GoogleClientID,
			ClientSecret: config.GoogleClientSecret,
			RedirectURL:  config.GoogleRedirectURL,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		userInfoURL: googleUserInfoURL,
		log:         logger.New("googleService"),
	}
}

// AuthCodeURL returns the Google consent page URL for the browser flow.
func (s *GoogleService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code from the browser flow for an
// OAuth2 token.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	log := s.log.Function("ExchangeCode")

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, log.Err("failed to exchange authorization code", err)
	}

	return token, nil
}

// GetUserInfo fetches the Google profile behind an access token. A rejected
// token or a profile without an email both fail.
func (s *GoogleService) GetUserInfo(
	ctx context.Context,
	accessToken string,
) (*GoogleUserInfo, error) {
	log := s.log.Function("GetUserInfo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, log.Err("failed to build userinfo request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, log.Err("failed to reach userinfo endpoint", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, log.Err(
			"userinfo request rejected",
			fmt.Errorf("userinfo returned status %d", resp.StatusCode),
		)
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, log.Err("failed to decode userinfo response", err)
	}

	if userInfo.Email == "" {
		return nil, log.ErrMsg("userinfo response has no email")
	}

	return &userInfo, nil
}
