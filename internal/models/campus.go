package models

type Campus struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Address         string `json:"address"`
	EstablishedYear int    `json:"established_year"`
	Website         string `json:"website"`
	Image           string `json:"image,omitempty"`
	HeadName        string `json:"head_name"`
	HeadEmail       string `json:"head_email"`
	HeadPhone       string `json:"head_phone"`
}
