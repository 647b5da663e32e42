// Package calendar holds the date-keyed task store behind the calendar API.
package calendar

// Task is a single to-do item attached to one date.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Day groups the tasks stored under one date key, in insertion order.
type Day struct {
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}

// Month is the snapshot returned by Store.ListAll.
type Month struct {
	Days []Day `json:"days"`
}
