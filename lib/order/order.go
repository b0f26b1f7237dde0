// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package order

// Order is a single service order as the dashboard sees it. Orders are
// passed by value; stores hand out copies so a caller can never mutate
// shared state behind the store's back.
type Order struct {
	// ID is the store-assigned numeric identity.
	ID int `yaml:"id"`

	// OrderNo is the customer-facing order number, and WorkOrderNo
	// the internal dispatch ticket it maps to.
	OrderNo     string `yaml:"order_no"`
	WorkOrderNo string `yaml:"work_order_no"`

	// Contact and location.
	Mobile       string `yaml:"mobile"`
	CustomerName string `yaml:"customer_name"`
	Region       string `yaml:"region"`
	RegionPeople int    `yaml:"region_people"`
	Address      string `yaml:"address"`

	// What was ordered.
	ServiceItem  string `yaml:"service_item"`
	ServiceRatio string `yaml:"service_ratio"`
	Details      string `yaml:"details"`

	// Lifecycle timestamps, preformatted for display. Empty when the
	// stage has not been reached.
	RecordTime     string `yaml:"record_time"`
	DispatchTime   string `yaml:"dispatch_time"`
	ServiceTime    string `yaml:"service_time"`
	CompletionTime string `yaml:"completion_time"`
	PaymentTime    string `yaml:"payment_time"`

	// Provenance and handling metadata.
	Source          string `yaml:"source"`
	SuggestedMethod string `yaml:"suggested_method"`
	WarrantyPeriod  string `yaml:"warranty_period"`
	WorkPhone       string `yaml:"work_phone"`
	DispatcherName  string `yaml:"dispatcher_name"`
	RecorderName    string `yaml:"recorder_name"`
	MasterName      string `yaml:"master_name"`

	Status Status `yaml:"status"`

	// Money. TotalAmount is the quoted price; ActualPaid is what the
	// completion confirmation recorded. Revenue is TotalAmount minus
	// Cost.
	TotalAmount          float64 `yaml:"total_amount"`
	Cost                 float64 `yaml:"cost"`
	Revenue              float64 `yaml:"revenue"`
	ActualPaid           float64 `yaml:"actual_paid"`
	AdvancePaymentAmount float64 `yaml:"advance_payment_amount"`
	OtherReceipt         float64 `yaml:"other_receipt"`
	CompletionIncome     float64 `yaml:"completion_income"`
	TotalReceipt         float64 `yaml:"total_receipt"`
	GuidePrice           float64 `yaml:"guide_price"`
	DepositAmount        float64 `yaml:"deposit_amount"`
	WeightedCoefficient  float64 `yaml:"weighted_coefficient"`
	HistoricalPrice      string  `yaml:"historical_price"`
	HasAdvancePayment    bool    `yaml:"has_advance_payment"`

	// Dispatcher workflow flags. IsReminded flips exactly once, when
	// a reminder for a pending order has been copied out.
	IsRead           bool `yaml:"is_read"`
	IsCalled         bool `yaml:"is_called"`
	IsReminded       bool `yaml:"is_reminded"`
	HasCoupon        bool `yaml:"has_coupon"`
	IsCouponVerified bool `yaml:"is_coupon_verified"`

	// Free-text annotations from cancellation and review flows.
	VoidedByAndReason      string `yaml:"voided_by_and_reason"`
	VoidDetails            string `yaml:"void_details"`
	CancelReasonAndDetails string `yaml:"cancel_reason_and_details"`
	FavoriteRemark         string `yaml:"favorite_remark"`
}
