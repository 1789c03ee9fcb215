package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	http_request "github.com/xhd2015/go-http-request"
	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

// ServerResponse wraps all server responses
type ServerResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

const codeNotFound = 404

type Client struct {
	serverAddr      string
	serverAuthToken string
}

func NewClient(serverAddr string, serverAuthToken string) *Client {
	return &Client{
		serverAddr:      serverAddr,
		serverAuthToken: serverAuthToken,
	}
}

// makeRequest makes an HTTP request and unwraps the server response
func (c *Client) makeRequest(url string, reqData any, respData any) error {
	req := http_request.New()
	if c.serverAuthToken != "" {
		req = req.Header("Authorization", "Bearer "+c.serverAuthToken)
	}

	var serverResp ServerResponse
	err := req.PostJSON(context.Background(), c.serverAddr+url, reqData, &serverResp)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if serverResp.Code != 0 {
		if serverResp.Code == codeNotFound {
			return storage.ErrProfileNotFound
		}
		return fmt.Errorf("server error (code %d): %s", serverResp.Code, serverResp.Msg)
	}

	if respData != nil && len(serverResp.Data) > 0 {
		err = json.Unmarshal(serverResp.Data, respData)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

// ProfileHttpService implements storage.ProfileService against a
// remote profile server.
type ProfileHttpService struct {
	client *Client
}

func NewProfileService(client *Client) storage.ProfileService {
	return &ProfileHttpService{client: client}
}

func (s *ProfileHttpService) List(options storage.ProfileListOptions) ([]models.Profile, int64, error) {
	var response struct {
		Profiles []models.Profile `json:"profiles"`
		Total    int64            `json:"total"`
	}

	err := s.client.makeRequest("/profiles/list", options, &response)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	return response.Profiles, response.Total, nil
}

func (s *ProfileHttpService) Get(name string) (*models.Profile, error) {
	params := struct {
		Name string `json:"name"`
	}{Name: name}

	var profile models.Profile
	err := s.client.makeRequest("/profiles/get", params, &profile)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			return nil, storage.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileHttpService) Add(profile models.Profile) (int64, error) {
	var response struct {
		ID int64 `json:"id"`
	}

	err := s.client.makeRequest("/profiles/add", profile, &response)
	if err != nil {
		return 0, fmt.Errorf("failed to add profile: %w", err)
	}

	return response.ID, nil
}

func (s *ProfileHttpService) Update(name string, update models.ProfileOptional) error {
	params := struct {
		Name   string                 `json:"name"`
		Update models.ProfileOptional `json:"update"`
	}{Name: name, Update: update}

	err := s.client.makeRequest("/profiles/update", params, nil)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			return storage.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (s *ProfileHttpService) Delete(name string) error {
	params := struct {
		Name string `json:"name"`
	}{Name: name}

	err := s.client.makeRequest("/profiles/delete", params, nil)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			return storage.ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
