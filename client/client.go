package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"othello/game"
	"othello/server"

	"github.com/pkg/errors"
)

type Option func(p *RemotePlayer)

func WithHTTPClient(c *http.Client) Option {
	return func(p *RemotePlayer) {
		if c != nil {
			p.client = c
		}
	}
}

// RemotePlayer plays through an agent hosted by an agent server.
type RemotePlayer struct {
	serverURL string
	id        string
	client    *http.Client
}

// NewRemotePlayer opens a game session on the server at serverURL.
func NewRemotePlayer(serverURL string, side game.Side, policy string, options ...Option) (*RemotePlayer, error) {
	p := &RemotePlayer{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		client:    &http.Client{Timeout: time.Minute},
	}
	for _, option := range options {
		option(p)
	}

	var response server.NewGameResponse
	err := p.do(http.MethodPost, "/games", server.NewGameRequest{Side: side.String(), Policy: policy}, &response)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open game session")
	}
	p.id = response.ID
	return p, nil
}

func (p *RemotePlayer) ID() string {
	return p.id
}

func (p *RemotePlayer) ChooseMove(opponentMove game.Move, msLeft int) (game.Move, error) {
	var response server.MoveResponse
	request := server.MoveRequest{Opponent: server.FromMove(opponentMove), MsLeft: msLeft}
	err := p.do(http.MethodPost, "/games/"+p.id+"/moves", request, &response)
	if err != nil {
		return game.Pass, errors.Wrapf(err, "game %s", p.id)
	}
	move, err := response.Move.Move()
	if err != nil {
		return game.Pass, errors.Wrapf(err, "game %s", p.id)
	}
	return move, nil
}

// Close ends the game session on the server. A session the server already
// dropped, because its game finished or expired, is not an error.
func (p *RemotePlayer) Close() error {
	err := p.do(http.MethodDelete, "/games/"+p.id, nil, nil)
	var failure *statusError
	if errors.As(err, &failure) && failure.code == http.StatusNotFound {
		return nil
	}
	return err
}

type statusError struct {
	method  string
	path    string
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.method, e.path, e.code, e.message)
}

func (p *RemotePlayer) do(method, path string, payload, out any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
	}
	req, err := http.NewRequest(method, p.serverURL+path, &body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure server.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &statusError{method: method, path: path, code: resp.StatusCode, message: failure.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
