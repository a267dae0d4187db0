package models

type Review struct {
	ID      int     `json:"id"`
	Text    string  `json:"text"`
	Rating  float64 `json:"rating"`
	MovieID int     `json:"movie_id"`
	UserID  int     `json:"user_id"`
}
