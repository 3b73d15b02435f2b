package models

import "encoding/json"

type NotifyRequest struct {
	Kind string          `json:"kind" binding:"required"`
	Data json.RawMessage `json:"data"`
}
