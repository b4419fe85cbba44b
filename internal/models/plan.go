package models

// PlanRequest is the input to the plan generator, taken from the campaign
// wizard's details step.
type PlanRequest struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	Goal         string `json:"goal"`
}

// MarketingPlan is the shape the model is instructed to return.
type MarketingPlan struct {
	SocialPosts []string `json:"socialPosts"`
	DayPlan     []string `json:"dayPlan"`
}
