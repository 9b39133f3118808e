// Package domain contains core business entities and interfaces.
package domain

// Calendar groups events under a title and a display color.
// Deleting a calendar cascades to its events.
type Calendar struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"` // hex, e.g. "#2563eb"
}

// TaskGroup groups tasks under a title and a display color.
// Deleting a group cascades to its tasks.
type TaskGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}
