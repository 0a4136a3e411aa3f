// Package e2e drives a whole game, store to status API, from the outside.
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/battlesnakeio/snake/rules"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) getJSON(path string, v interface{}) error {
	resp, err := c.client.Get(fmt.Sprintf("%s%s", c.apiURL, path))
	if err != nil {
		return err
	}
	err = json.NewDecoder(resp.Body).Decode(v)
	if cErr := resp.Body.Close(); err == nil {
		err = cErr
	}
	if err == nil && resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return err
}

func (c *client) gameStatus() (rules.GameState, error) {
	st := rules.GameState{}
	err := c.getJSON("/status", &st)
	return st, err
}

func (c *client) highScore() (int, error) {
	res := struct {
		HighScore int `json:"highScore"`
	}{}
	err := c.getJSON("/highscore", &res)
	return res.HighScore, err
}
