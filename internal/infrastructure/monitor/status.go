package monitor

import "time"

type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	Redis      bool      `json:"redis"`
	LocalStore bool      `json:"local_store"`
	LocalKeys  int       `json:"local_keys"`
	LastCheck  time.Time `json:"last_check"`
}
