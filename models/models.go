package models

import (
	"time"
)

// Profile is a saved animation configuration, addressed by its unique
// name.
type Profile struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	Preset     string    `json:"preset"`
	By         string    `json:"by"`
	Delay      float64   `json:"delay"`
	ExitDelay  float64   `json:"exit_delay"`
	Duration   float64   `json:"duration"`
	Stagger    float64   `json:"stagger"`
	Once       bool      `json:"once"`
	Loop       bool      `json:"loop"`
	FPS        float64   `json:"fps"`
	Color      string    `json:"color"`
	Background string    `json:"background"`
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}

type ProfileOptional struct {
	ID         *int64     `json:"id"`
	Name       *string    `json:"name"`
	Text       *string    `json:"text"`
	Preset     *string    `json:"preset"`
	By         *string    `json:"by"`
	Delay      *float64   `json:"delay"`
	ExitDelay  *float64   `json:"exit_delay"`
	Duration   *float64   `json:"duration"`
	Stagger    *float64   `json:"stagger"`
	Once       *bool      `json:"once"`
	Loop       *bool      `json:"loop"`
	FPS        *float64   `json:"fps"`
	Color      *string    `json:"color"`
	Background *string    `json:"background"`
	CreateTime *time.Time `json:"create_time"`
	UpdateTime *time.Time `json:"update_time"`
}

func (p *Profile) Update(optional *ProfileOptional) {
	if optional == nil {
		return
	}
	if optional.ID != nil {
		p.ID = *optional.ID
	}
	if optional.Name != nil {
		p.Name = *optional.Name
	}
	if optional.Text != nil {
		p.Text = *optional.Text
	}
	if optional.Preset != nil {
		p.Preset = *optional.Preset
	}
	if optional.By != nil {
		p.By = *optional.By
	}
	if optional.Delay != nil {
		p.Delay = *optional.Delay
	}
	if optional.ExitDelay != nil {
		p.ExitDelay = *optional.ExitDelay
	}
	if optional.Duration != nil {
		p.Duration = *optional.Duration
	}
	if optional.Stagger != nil {
		p.Stagger = *optional.Stagger
	}
	if optional.Once != nil {
		p.Once = *optional.Once
	}
	if optional.Loop != nil {
		p.Loop = *optional.Loop
	}
	if optional.FPS != nil {
		p.FPS = *optional.FPS
	}
	if optional.Color != nil {
		p.Color = *optional.Color
	}
	if optional.Background != nil {
		p.Background = *optional.Background
	}
	if optional.CreateTime != nil {
		p.CreateTime = *optional.CreateTime
	}
	if optional.UpdateTime != nil {
		p.UpdateTime = *optional.UpdateTime
	}
}

// Config is the persisted tool configuration.
type Config struct {
	StorageType string `json:"storage_type"`
	ServerAddr  string `json:"server_addr"`
	ServerToken string `json:"server_token"`
	LastProfile string `json:"last_profile"`
	RunningPID  int    `json:"running_pid"`
}
