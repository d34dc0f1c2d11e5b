package dto

// ShiftRequest represents the API request for moving a time of day
type ShiftRequest struct {
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	Direction string `json:"direction" binding:"required,oneof=forward backward"`
}

// GapRequest represents the API request for the distance between two times of day
type GapRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CompareRequest represents the API request for ordering two times of day
type CompareRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// CombineRequest represents the API request for adding or subtracting durations
type CombineRequest struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Operation string `json:"operation" binding:"required,oneof=plus minus"`
}

// TimeResponse carries a time of day as HH:MM:SS
type TimeResponse struct {
	Time string `json:"time"`
}

// DurationResponse carries a duration as H:MM:SS
type DurationResponse struct {
	Duration string `json:"duration"`
}

// CompareResponse carries the ordering of two times: -1, 0 or 1
type CompareResponse struct {
	Result int `json:"result"`
}
