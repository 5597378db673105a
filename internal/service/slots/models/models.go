package models

// SlotAvailabilityResponse моментальный снимок доступности слота.
// Используется клиентом для перепроверки перед оплатой
type SlotAvailabilityResponse struct {
	SlotID         int64 `json:"slotId"`
	Available      bool  `json:"available"`
	AvailableSpots int   `json:"availableSpots"`
	TotalSpots     int   `json:"totalSpots"`
}
