package models

// FAQItem is one question/answer pair. Its only identity is its position
// in the loaded collection.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}
