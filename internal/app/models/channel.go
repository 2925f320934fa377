package models

import (
	"time"
)

type Channel struct {
	ID      uint64    `json:"id,omitempty" db:"id"`
	Name    string    `json:"name" db:"name"`
	Created time.Time `json:"created,omitempty" db:"created"`
}

type ChannelList []Channel

type SubscriptionStatus struct {
	Subscribed bool `json:"subscribed"`
}
