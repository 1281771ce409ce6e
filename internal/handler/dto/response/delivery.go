package response

type PincodeCheckResponse struct {
	Pincode     string `json:"pincode"`
	Serviceable bool   `json:"serviceable"`
	City        string `json:"city,omitempty"`
	Message     string `json:"message,omitempty"`
}
