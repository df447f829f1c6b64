package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const maxResponseSize = 1 << 20

type Client struct {
	endpoint *url.URL
	client   *http.Client
}

type signInRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callbackUrl"`
}

type signInResponse struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
	URL   string `json:"url"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignIn implements Authenticator.
func (c *Client) SignIn(ctx context.Context, credentials Credentials) (*SignInResult, error) {
	body, err := json.Marshal(signInRequest{
		Email:       credentials.Email,
		Password:    credentials.Password,
		CallbackURL: credentials.CallbackURL,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := c.endpoint.JoinPath("signin", "credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach identity service")
	}

	defer res.Body.Close()

	succeeded := res.StatusCode >= 200 && res.StatusCode < 300

	var payload signInResponse

	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseSize)).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		if succeeded {
			return nil, errors.Wrap(err, "could not decode identity service response")
		}
	}

	result := &SignInResult{
		Status: res.StatusCode,
		Error:  payload.Error,
		URL:    payload.URL,
		Token:  payload.Token,
		User:   payload.User,
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized:
	case !succeeded && result.Error == "":
		result.Error = http.StatusText(res.StatusCode)
	case succeeded && payload.OK != nil && !*payload.OK && result.Error == "":
		result.Error = ErrorCredentialsSignin
	}

	result.OK = succeeded && result.Error == ""

	if result.OK && result.Token != "" {
		claims, err := ParseTokenClaims(result.Token)
		if err == nil {
			result.ExpiresAt = claims.ExpiresAt

			if result.User.ID == "" {
				result.User.ID = claims.Subject
			}

			if result.User.Email == "" {
				result.User.Email = claims.Email
			}
		}
	}

	return result, nil
}

// SignOut implements Authenticator.
func (c *Client) SignOut(ctx context.Context, token string) error {
	endpoint := c.endpoint.JoinPath("signout")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach identity service")
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.Errorf("unexpected identity service response status '%d'", res.StatusCode)
	}

	return nil
}

func NewClient(endpoint string, funcs ...OptionFunc) (*Client, error) {
	opts := NewOptions(funcs...)

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse identity service endpoint '%s'", endpoint)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("identity service endpoint '%s' must be an absolute url", endpoint)
	}

	client := opts.HTTPClient
	if opts.Timeout > 0 {
		cloned := *client
		cloned.Timeout = opts.Timeout
		client = &cloned
	}

	return &Client{
		endpoint: parsed,
		client:   client,
	}, nil
}

var _ Authenticator = &Client{}
