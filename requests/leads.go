package requests

type CreateLeadsRequest struct {
	Name      string `json:"name" binding:"required"`
	Contact   string `json:"contact" binding:"required"`
	Place     string `json:"place" binding:"required"`
	Price     int64  `json:"price"`
	Franchise int64  `json:"franchise"`
}
