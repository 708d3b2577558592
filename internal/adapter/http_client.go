package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/promptkeep/promptkeep/internal/config"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/models"
)

type userDirectory struct {
	client *resty.Client

	logger *logger.Logger
}

// NewUserDirectory builds a [UserDirectory] talking to the identity service
// configured in cfg. The secret key is attached as a bearer token to every
// request.
func NewUserDirectory(cfg config.Seed, logger *logger.Logger) UserDirectory {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.IdentityURL, "/")).
		SetAuthToken(cfg.SecretKey).
		SetTimeout(timeout)

	return &userDirectory{client: cli, logger: logger}
}

// createdUserResponse is the subset of the identity service's user record the
// seed job needs.
type createdUserResponse struct {
	ID string `json:"id"`
}

func (u *userDirectory) CreateUser(ctx context.Context, user models.DemoUser) (string, error) {
	var created createdUserResponse

	resp, err := u.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post("/v1/users")
	if err != nil {
		return "", fmt.Errorf("%w: create user request: %w", ErrUserServiceFailure, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return "", fmt.Errorf("%w: http %d: %s", ErrUserServiceFailure, resp.StatusCode(), body)
	}

	if created.ID == "" {
		return "", fmt.Errorf("%w: response carries no user id", ErrUserServiceFailure)
	}

	u.logger.Debug().
		Str("func", "*userDirectory.CreateUser").
		Str("user_id", created.ID).
		Msg("demo user created")

	return created.ID, nil
}
