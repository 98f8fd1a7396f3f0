package request

type ForecastRequest struct {
	Location  string   `json:"location" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	BasePrice *float64 `json:"base_price" binding:"required,gte=0"`
}
