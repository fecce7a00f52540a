package models

type Table struct {
	ID       int  `json:"id"`
	Capacity int  `json:"capacity"`
	Occupied bool `json:"occupied"`
}
