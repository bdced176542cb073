package model

type ConvertResponse struct {
	BPM    float64    `json:"bpm"`
	Tracks [][]string `json:"tracks"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
