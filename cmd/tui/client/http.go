package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Varun5711/promokit/internal/models"
	usermodel "github.com/Varun5711/promokit/internal/models/user"
)

// Client talks JSON over HTTP to the auth and planner services.
type Client struct {
	authURL    string
	plannerURL string
	httpClient *http.Client

	token string
}

func New(authURL, plannerURL string) *Client {
	return &Client{
		authURL:    authURL,
		plannerURL: plannerURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Signup(email, password, name string) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return c.post(c.authURL+"/signup", usermodel.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, &resp)
}

func (c *Client) Login(email, password string) (*usermodel.LoginResponse, error) {
	var resp usermodel.LoginResponse
	err := c.post(c.authURL+"/login", usermodel.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GeneratePlan(req models.PlanRequest) (*models.MarketingPlan, error) {
	var plan models.MarketingPlan
	if err := c.post(c.plannerURL+"/generate-plan", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) post(url string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
