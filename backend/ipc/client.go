package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
)

var (
	ErrPingFail         = errors.New("ping failed")
	errMethodNotAllowed = errors.New("method not allowed")
)

type Client struct {
	httpC   http.Client
	baseURL string
}

// Connect attempts to connect to the IPC socket as client.
func Connect() (*Client, error) {
	conn, err := Dial()
	if err != nil {
		return nil, err
	}
	conn.Close()
	client := NewClient(func(context.Context) (net.Conn, error) {
		return Dial()
	})
	if err := client.Ping(); err != nil {
		log.Println("ping error")
		return nil, err
	}
	return client, nil
}

// NewClient returns a client that sends requests over connections made by dial.
func NewClient(dial func(context.Context) (net.Conn, error)) *Client {
	return &Client{
		baseURL: "http://lapwatch",
		httpC: http.Client{
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					return dial(ctx)
				},
			},
		},
	}
}

func (c *Client) Ping() error {
	if c.makeSimpleRequest(http.MethodGet, PingPath) != nil {
		return ErrPingFail
	}
	return nil
}

func (c *Client) Start() error {
	return c.makeSimpleRequest(http.MethodPost, StartPath)
}

func (c *Client) Pause() error {
	return c.makeSimpleRequest(http.MethodPost, PausePath)
}

func (c *Client) StartPause() error {
	return c.makeSimpleRequest(http.MethodPost, StartPausePath)
}

func (c *Client) Lap() error {
	return c.makeSimpleRequest(http.MethodPost, LapPath)
}

func (c *Client) Reset() error {
	return c.makeSimpleRequest(http.MethodPost, ResetPath)
}

func (c *Client) ToggleTheme() error {
	return c.makeSimpleRequest(http.MethodPost, ToggleThemePath)
}

func (c *Client) Show() error {
	return c.makeSimpleRequest(http.MethodPost, ShowPath)
}

func (c *Client) Quit() error {
	return c.makeSimpleRequest(http.MethodPost, QuitPath)
}

func (c *Client) Status() (*Status, error) {
	resp, err := c.httpC.Get(c.baseURL + StatusPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var s Status
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) makeSimpleRequest(method string, path string) error {
	var resp *http.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = c.httpC.Get(c.baseURL + path)
	case http.MethodPost:
		resp, err = c.httpC.Post(c.baseURL+path, "application/json", nil)
	}

	if err != nil {
		log.Printf("http err: %v\n", err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil || r.Error == "" {
		return errors.New(resp.Status)
	}
	return errors.New(r.Error)
}
