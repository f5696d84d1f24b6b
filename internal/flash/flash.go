// Package flash keeps one-shot notices between a redirect and the page
// rendered after it.
package flash

import (
	"encoding/json"
	"net/http"
)

// Message kinds, matching the alert styles of the templates.
const (
	KindSuccess = "success"
	KindDanger  = "danger"
	KindWarning = "warning"
)

// Message is a single flash notice.
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Store saves a message for the next request and hands it out once.
type Store interface {
	Set(w http.ResponseWriter, r *http.Request, msg Message) error
	Pop(w http.ResponseWriter, r *http.Request) (*Message, error)
}

func encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

func decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
