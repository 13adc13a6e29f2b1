package models

import "time"

// --- Core Models ---
//
// Each struct maps to one MongoDB collection of the same lowercase name.
// Records are insert-only: nothing in the API updates or deletes them, and
// the _id assigned at insert time is returned to clients as a hex string.

// Profile represents a business profile.
// Collection name: "profile"
type Profile struct {
	OwnerName    string  `json:"owner_name" bson:"owner_name"`
	BusinessName string  `json:"business_name" bson:"business_name"`
	Email        *string `json:"email" bson:"email"`
	Phone        *string `json:"phone" bson:"phone"`
	Address      *string `json:"address" bson:"address"`
	Industry     *string `json:"industry" bson:"industry"`
}

// Metric represents one observed period of business numbers. Multiple
// metrics for the same period are allowed; no uniqueness is enforced.
// Collection name: "metric"
type Metric struct {
	Period         time.Time `json:"period" bson:"period"`
	Sales          float64   `json:"sales" bson:"sales"`
	Orders         int       `json:"orders" bson:"orders"`
	MarketingSpend float64   `json:"marketing_spend" bson:"marketing_spend"`
}

// Prediction stores both the inputs and the computed outputs of one
// prediction call, as an audit record.
// Collection name: "prediction"
type Prediction struct {
	Period          time.Time `json:"period" bson:"period"`
	Sales           float64   `json:"sales" bson:"sales"`
	Orders          int       `json:"orders" bson:"orders"`
	MarketingSpend  float64   `json:"marketing_spend" bson:"marketing_spend"`
	PredictedSales  float64   `json:"predicted_sales" bson:"predicted_sales"`
	PredictedOrders int       `json:"predicted_orders" bson:"predicted_orders"`
}

// Report represents a monitoring report entry. Status is free-form; "open"
// is the default, "in_progress" and "done" are the conventional values.
// Collection name: "report"
type Report struct {
	Title  string  `json:"title" bson:"title"`
	Notes  *string `json:"notes" bson:"notes"`
	Status string  `json:"status" bson:"status"`
}
