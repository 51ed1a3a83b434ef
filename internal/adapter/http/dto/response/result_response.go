package response

type SuccessResponse struct {
	Success bool `json:"success"`
}

// MoveResponse answers archive/restore. Moved is false when the index addressed nothing.
type MoveResponse struct {
	Success bool `json:"success"`
	Moved   bool `json:"moved"`
}

type OrderCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type PaymentLinkResponse struct {
	Success     bool   `json:"success"`
	PaymentLink string `json:"paymentLink"`
}

type ScanResponse struct {
	Success bool `json:"success"`
	Checked int  `json:"checked"`
	Sent    int  `json:"sent"`
}
