package catalog

type VenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	CityID   int64  `json:"city_id"`
	Capacity int    `json:"capacity"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CityRequest struct {
	Name  string `json:"name" binding:"required"`
	State string `json:"state"`
}
