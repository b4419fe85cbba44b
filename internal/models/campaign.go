package models

// Campaign records live entirely client-side; the services never persist
// them. The shapes exist so the wizard and the planner agree on field names.
type Campaign struct {
	Type    string          `json:"type"` // "product" or "service"
	Name    string          `json:"name"`
	Target  string          `json:"target"`
	Budget  string          `json:"budget"`
	Product *ProductDetails `json:"product,omitempty"`
	Service *ServiceDetails `json:"service,omitempty"`
}

type ProductDetails struct {
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	ProductDesc  string `json:"productDesc"`
}

type ServiceDetails struct {
	ServiceName     string `json:"serviceName"`
	ServiceDesc     string `json:"serviceDesc"`
	ServiceAudience string `json:"serviceAudience"`
}
