package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseHubSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHubSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HubAddr == "" {
		s.T().Skip("HUB_ADDR not set, skipping end to end scenarios")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Step prints a colorized header for a scenario step
func (s *BaseHubSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends a JSON request and decodes the response into out when not nil.
// It returns the status code.
func (s *BaseHubSuite) Call(method, path string, headers map[string]string, body, out any) int {
	var reader io.Reader
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	r, err := http.NewRequest(method, "http://"+s.Config.HubAddr+path, reader)
	s.Require().NoError(err)
	r.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		r.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := s.client.Do(r)
	s.Require().NoError(err, "Failed to reach hub at "+s.Config.HubAddr)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.T().Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		s.T().Logf("REQUEST:\n%s\nRESPONSE:\n%s", raw, payload)
	}
	if out != nil && len(payload) > 0 && resp.StatusCode < 300 {
		s.Require().NoError(json.Unmarshal(payload, out))
	}
	return resp.StatusCode
}

// Subscribe opens a websocket to the campaign stream.
func (s *BaseHubSuite) Subscribe(campaignID string) *websocket.Conn {
	u := url.URL{Scheme: "ws", Host: s.Config.HubAddr, Path: "/campaigns/" + campaignID + "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	s.Require().NoError(err)
	return conn
}

// NextFrame reads one frame and returns its decoded body.
func (s *BaseHubSuite) NextFrame(conn *websocket.Conn) map[string]any {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	_, payload, err := conn.ReadMessage()
	s.Require().NoError(err)
	if s.Config.DebugJSON {
		s.T().Logf("FRAME:\n%s", payload)
	}
	var frame map[string]any
	s.Require().NoError(json.Unmarshal(payload, &frame))
	return frame
}
