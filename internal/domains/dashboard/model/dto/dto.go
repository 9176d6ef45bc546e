package dto

type DashboardStatsResponse struct {
	TotalBookings   int `json:"total_bookings"`
	PendingBookings int `json:"pending_bookings"`
	TotalMenuItems  int `json:"total_menu_items"`
}
