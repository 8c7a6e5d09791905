package domain

import "time"

type PlayerProfile struct {
	Username  string    `json:"username"`
	Title     *string   `json:"title,omitempty"`
	Country   *string   `json:"country,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
}
