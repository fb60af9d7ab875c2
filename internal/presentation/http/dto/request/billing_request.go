package request

import (
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/pkg/numeric"
)

// BillingEntryRequest represents a billing submission. Numbers may arrive as
// JSON numbers or numeric strings. Unknown keys are ignored.
type BillingEntryRequest struct {
	DoctorID           *string        `json:"doctorId"`
	DoctorName         *string        `json:"doctorName"`
	DoctorDegree       *string        `json:"doctorDegree"`
	DoctorLocation     *string        `json:"doctorLocation"`
	SampleUnits        *numeric.Field `json:"sampleUnits"`
	TotalOrderAmount   *numeric.Field `json:"totalOrderAmount"`
	DiscountPercentage *numeric.Field `json:"discountPercentage"`
	NetAmount          *numeric.Field `json:"netAmount"`
	TotalAmount        *numeric.Field `json:"totalAmount"`
	AmountToPay        *numeric.Field `json:"amountToPay"`
	MRAmount           *numeric.Field `json:"mrAmount"`
}

// ToInput converts the request into service input
func (r *BillingEntryRequest) ToInput() *service.BillingInput {
	return &service.BillingInput{
		DoctorID:           r.DoctorID,
		DoctorName:         r.DoctorName,
		DoctorDegree:       r.DoctorDegree,
		DoctorLocation:     r.DoctorLocation,
		SampleUnits:        r.SampleUnits,
		TotalOrderAmount:   r.TotalOrderAmount,
		DiscountPercentage: r.DiscountPercentage,
		NetAmount:          r.NetAmount,
		TotalAmount:        r.TotalAmount,
		AmountToPay:        r.AmountToPay,
		MRAmount:           r.MRAmount,
	}
}

// ReportQuery represents the report query parameters
type ReportQuery struct {
	Period string `form:"period"`
	Format string `form:"format"`
}
