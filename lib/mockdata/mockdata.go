// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package mockdata generates a deterministic set of service orders
// for demos and tests. The same seed, clock, and count always yield
// the same orders, so UI tests can assert against exact rows.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fieldops/orderdesk/lib/clock"
	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
)

// DefaultCount is the standard demo data set size.
const DefaultCount = 128

// maxPending caps how many generated orders start pending, so the
// dashboard's attention-first sort has a realistic head.
const maxPending = 10

const timeLayout = "2006-01-02 15:04"

var serviceItems = []string{
	"Water heater install",
	"Drain cleaning",
	"AC maintenance",
	"Lock replacement",
	"Washing machine repair",
	"Ceiling light fitting",
	"Range hood deep clean",
	"Pipe leak fix",
}

var regions = []string{
	"Chaoyang", "Haidian", "Dongcheng", "Xicheng",
	"Fengtai", "Shijingshan", "Tongzhou", "Daxing",
}

var sources = []string{"phone", "app", "walk-in", "referral"}

var returnReasons = []string{
	"Customer rescheduled",
	"Master unavailable",
	"No access to premises",
}

var errorDetails = []string{
	"Customer unreachable",
	"Address could not be located",
	"Required part out of stock",
}

var customerSurnames = []string{
	"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Zhao", "Huang",
}

var staffNames = []string{
	"A. Sun", "B. Qian", "C. Zhou", "D. Wu", "E. Zheng", "F. Feng",
}

// Generate produces count orders seeded deterministically. Roughly
// every tenth order is pending (capped at ten), and a rotating slice
// of the rest is void, returned, or errored; everything else is
// completed.
func Generate(clk clock.Clock, seed int64, count int) []order.Order {
	rng := rand.New(rand.NewSource(seed))
	now := clk.Now()

	orders := make([]order.Order, 0, count)
	pendingCount := 0
	for i := 0; i < count; i++ {
		id := i + 1
		amount := float64(150 + (i%20)*20)
		costRatio := 0.6
		if i%2 == 1 {
			costRatio = 0.7
		}
		cost := float64(int(amount * costRatio))

		recorded := now.Add(-time.Duration(i*97+rng.Intn(180)) * time.Minute)
		dispatched := recorded.Add(time.Duration(20+rng.Intn(90)) * time.Minute)

		o := order.Order{
			ID:           id,
			OrderNo:      fmt.Sprintf("ORD-20231027-%04d", id),
			WorkOrderNo:  fmt.Sprintf("WO-%d", 9980+id),
			Mobile:       fmt.Sprintf("138%08d", rng.Intn(100000000)),
			CustomerName: fmt.Sprintf("%s %c.", customerSurnames[i%len(customerSurnames)], 'A'+rune(i%26)),
			Region:       regions[i%len(regions)],
			RegionPeople: 2 + i%5,
			Address: fmt.Sprintf("%d %s Rd, Building %d",
				10+i%90, regions[i%len(regions)], 1+i%12),
			ServiceItem:  serviceItems[i%len(serviceItems)],
			ServiceRatio: fmt.Sprintf("%d%%", 60+(i%2)*10),
			Details: fmt.Sprintf("%s for unit %d, customer prefers %s visit",
				serviceItems[i%len(serviceItems)], 100+i, []string{"morning", "afternoon", "evening"}[i%3]),
			RecordTime:      recorded.Format(timeLayout),
			DispatchTime:    dispatched.Format(timeLayout),
			Source:          sources[i%len(sources)],
			SuggestedMethod: []string{"on-site", "pickup"}[i%2],
			WarrantyPeriod:  []string{"30 days", "90 days", "1 year"}[i%3],
			WorkPhone:       fmt.Sprintf("010-%04d", 5000+i),
			DispatcherName:  staffNames[i%len(staffNames)],
			RecorderName:    staffNames[(i+2)%len(staffNames)],
			MasterName:      staffNames[(i+4)%len(staffNames)],
			Status:          order.Completed(),
			TotalAmount:     amount,
			Cost:            cost,
			Revenue:         amount - cost,
			GuidePrice:      amount + 20,
			HistoricalPrice: fmt.Sprintf("%.0f / %.0f", amount-10, amount+10),

			WeightedCoefficient: 1.0 + float64(i%4)*0.05,
			IsRead:              i%4 != 0,
			IsCalled:            i%3 == 0,
			HasCoupon:           i%6 == 0,
			IsCouponVerified:    i%12 == 0,
		}

		switch {
		case i%10 == 0 && pendingCount < maxPending:
			o.Status = order.Pending()
			o.DispatchTime = ""
			pendingCount++
		case i%15 == 1:
			o.Status = order.Voided()
			o.VoidDetails = "Duplicate booking"
			o.VoidedByAndReason = fmt.Sprintf("%s: duplicate booking", staffNames[i%len(staffNames)])
		case i%15 == 2:
			o.Status, _ = order.Returned(returnReasons[i%len(returnReasons)])
		case i%15 == 3:
			o.Status, _ = order.Errored(errorDetails[i%len(errorDetails)])
		}

		if o.Status.Code == order.CodeCompleted {
			serviced := dispatched.Add(time.Duration(1+rng.Intn(6)) * time.Hour)
			o.ServiceTime = serviced.Format(timeLayout)
			o.CompletionTime = serviced.Add(time.Duration(30+rng.Intn(120)) * time.Minute).Format(timeLayout)
			o.PaymentTime = o.CompletionTime
			o.ActualPaid = amount
			o.CompletionIncome = amount
			o.TotalReceipt = amount
		}

		if o.HasCoupon {
			o.OtherReceipt = 20
		}
		if i%9 == 0 {
			o.HasAdvancePayment = true
			o.AdvancePaymentAmount = 50
			o.DepositAmount = 50
		}

		orders = append(orders, o)
	}
	return orders
}

// Fill generates count orders and loads them into a fresh index.
func Fill(clk clock.Clock, seed int64, count int) (*orderindex.Index, error) {
	index := orderindex.NewIndex()
	for _, o := range Generate(clk, seed, count) {
		if err := index.Put(o); err != nil {
			return nil, err
		}
	}
	return index, nil
}
