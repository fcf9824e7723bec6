package bus

import "time"

// PanelClicked is published when a press and release on a panel did not
// resize it.
type PanelClicked struct {
	ID    string    `json:"id"`
	Index int       `json:"index"`
	Time  time.Time `json:"time"`
}
