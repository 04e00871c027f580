package models

// MessageResponse is the generic JSON body returned by endpoints that have
// nothing to report beyond a human-readable outcome, and by every error
// response of the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /api/login call.
type LoginResponse struct {
	// Token is the compact signed session token the client must present
	// in the Authorization header of subsequent requests.
	Token string `json:"token"`

	// Role is the authenticated account's role, returned so the client
	// can choose which views to render without decoding the token.
	Role string `json:"role"`
}

// DashboardRow aggregates one employee's attendance for the admin dashboard.
type DashboardRow struct {
	// Username identifies the employee the row describes.
	Username string `json:"username"`

	// PresentDays is the total number of attendance records of the employee.
	PresentDays int `json:"presentDays"`

	// AttendancePercentage is PresentDays divided by the number of days in
	// the current calendar month, times 100, formatted with two decimal
	// places (e.g. "10.00"). The denominator is the full month length, not
	// the days elapsed so far.
	AttendancePercentage string `json:"attendancePercentage"`

	// Records holds the employee's attendance records verbatim for audit
	// display, in ascending date order.
	Records []AttendanceRecord `json:"records"`
}
